package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/medianest/internal/client/client"
	"github.com/dmitrijs2005/medianest/internal/client/gallery"
	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/dmitrijs2005/medianest/internal/logging"
)

type fakeClient struct {
	client.Client

	mu sync.Mutex

	// presets
	ListItems []models.MediaItem
	ListErr   error
	UploadErr error
	DeleteErr error

	// hooks run inside the call, before it returns
	OnUpload func()
	OnList   func()

	// recorded
	ListCalls    int
	UploadAssets []models.LocalAsset
	DeleteIDs    []string
}

func (f *fakeClient) List(ctx context.Context) ([]models.MediaItem, error) {
	f.mu.Lock()
	f.ListCalls++
	hook := f.OnList
	items, err := f.ListItems, f.ListErr
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return items, err
}

func (f *fakeClient) Upload(ctx context.Context, asset models.LocalAsset) error {
	f.mu.Lock()
	f.UploadAssets = append(f.UploadAssets, asset)
	hook := f.OnUpload
	err := f.UploadErr
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	return err
}

func (f *fakeClient) Delete(ctx context.Context, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteIDs = append(f.DeleteIDs, fileID)
	return f.DeleteErr
}

type notice struct {
	ok    bool
	title string
	msg   string
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []notice
}

func (r *recordingNotifier) Success(_ context.Context, title, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{ok: true, title: title, msg: msg})
}

func (r *recordingNotifier) Failure(_ context.Context, title, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, notice{ok: false, title: title, msg: msg})
}

func (r *recordingNotifier) all() []notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notice(nil), r.notices...)
}

func newSync(fc *fakeClient) (*SyncService, *gallery.Store, *recordingNotifier) {
	store := gallery.NewStore()
	n := &recordingNotifier{}
	return NewSyncService(fc, store, n, logging.Nop()), store, n
}

func mediaItems(ids ...string) []models.MediaItem {
	out := make([]models.MediaItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.MediaItem{ID: id, URL: "http://x/" + id + ".jpg", Name: id + ".jpg"})
	}
	return out
}
