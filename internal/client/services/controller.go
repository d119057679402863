package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/medianest/internal/client/gallery"
	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/dmitrijs2005/medianest/internal/common"
)

// Controller turns presentation intents into sync operations. It never
// changes gallery state itself.
type Controller struct {
	sync   *SyncService
	guard  *DeletionGuard
	store  *gallery.Store
	notify Notifier
}

func NewController(sync *SyncService, guard *DeletionGuard, store *gallery.Store, n Notifier) *Controller {
	return &Controller{sync: sync, guard: guard, store: store, notify: n}
}

// State returns a read-only snapshot for rendering.
func (c *Controller) State() gallery.State {
	return c.store.Snapshot()
}

// RequestFetch loads the gallery, also used for "retry".
func (c *Controller) RequestFetch(ctx context.Context) error {
	return c.sync.FetchList(ctx)
}

// RequestRefresh is the pull-to-refresh intent.
func (c *Controller) RequestRefresh(ctx context.Context) error {
	return c.sync.Refresh(ctx)
}

// RequestUpload uploads asset unless another upload is in flight.
func (c *Controller) RequestUpload(ctx context.Context, asset models.LocalAsset) error {
	err := c.sync.UploadImage(ctx, asset)
	if errors.Is(err, common.ErrUploadInFlight) {
		c.notify.Failure(ctx, "Upload Error", "An upload is already in progress.")
	}
	return err
}

// RequestDelete opens the PIN confirmation for fileID.
func (c *Controller) RequestDelete(fileID string) error {
	if fileID == "" {
		return errors.New("delete: empty file id")
	}
	c.guard.RequestDeletion(fileID)
	return nil
}

// PendingDelete reports the id awaiting a PIN.
func (c *Controller) PendingDelete() (string, bool) {
	return c.guard.Pending()
}

// CancelDelete dismisses the PIN confirmation.
func (c *Controller) CancelDelete() {
	c.guard.Cancel()
}

// SubmitPin confirms the pending deletion. A wrong PIN issues no delete
// request and keeps the deletion pending. A correct PIN issues one delete
// followed by one gallery fetch when the delete succeeds.
func (c *Controller) SubmitPin(ctx context.Context, candidate string) error {
	fileID, err := c.guard.Confirm(candidate)
	if err != nil {
		if errors.Is(err, common.ErrGuardRejection) {
			c.notify.Failure(ctx, "Incorrect PIN", "The PIN you entered is incorrect.")
		}
		return err
	}
	return c.sync.DeleteImage(ctx, fileID, c.sync.FetchList)
}
