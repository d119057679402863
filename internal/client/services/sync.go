// Package services contains the gallery application services: the sync
// operations against the media store, the PIN deletion guard, and the
// controller that turns user intents into those operations.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/medianest/internal/client/client"
	"github.com/dmitrijs2005/medianest/internal/client/gallery"
	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/dmitrijs2005/medianest/internal/common"
	"github.com/dmitrijs2005/medianest/internal/logging"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// SyncService runs the three store exchanges and applies their outcome to
// the gallery store. Each call is independent: concurrent fetches are not
// coalesced, nothing is retried and no call is cancelled by the service.
type SyncService struct {
	client client.Client
	store  *gallery.Store
	notify Notifier
	log    logging.Logger
}

func NewSyncService(c client.Client, store *gallery.Store, n Notifier, log logging.Logger) *SyncService {
	return &SyncService{client: c, store: store, notify: n, log: log}
}

func (s *SyncService) opLogger(op string) logging.Logger {
	return s.log.With("op", op, "op_id", uuid.NewString())
}

// FetchList reloads the whole collection. On success the items are replaced
// with the store's sequence; on failure the state moves to StatusError and
// the previous items stay.
func (s *SyncService) FetchList(ctx context.Context) error {
	log := s.opLogger("fetch")
	start := time.Now()

	s.store.Apply(gallery.FetchStarted())
	log.Debug(ctx, "fetching images")

	items, err := s.client.List(ctx)
	if err != nil {
		s.store.Apply(gallery.FetchFailed(err.Error()))
		log.Error(ctx, "fetch images failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("fetch images: %w", err)
	}

	s.store.Apply(gallery.FetchSucceeded(items))
	log.Info(ctx, "images fetched", "count", len(items), "duration", time.Since(start))
	return nil
}

// Refresh is a user-initiated FetchList that raises the refreshing flag
// until the fetch resolves.
func (s *SyncService) Refresh(ctx context.Context) error {
	s.store.Apply(gallery.RefreshStarted())
	return s.FetchList(ctx)
}

// UploadImage sends one local image. Only one upload may be in flight; a
// second call while one is outstanding returns common.ErrUploadInFlight
// without contacting the store. The in-flight flag is released on every
// path. A successful upload is followed by a FetchList.
func (s *SyncService) UploadImage(ctx context.Context, asset models.LocalAsset) error {
	if !s.store.BeginUpload() {
		return common.ErrUploadInFlight
	}
	defer s.store.Apply(gallery.UploadFinished())

	name := asset.FileName()
	log := s.opLogger("upload").With("file", name, "source", string(asset.Source))
	start := time.Now()

	if err := s.client.Upload(ctx, asset); err != nil {
		log.Error(ctx, "upload failed", "error", err, "duration", time.Since(start))
		if errors.Is(err, common.ErrPermissionDenied) {
			s.notify.Failure(ctx, "Permission Required", fmt.Sprintf("Cannot read %s: permission denied.", name))
		} else {
			s.notify.Failure(ctx, "Upload Error", "Failed to upload image. Please try again.")
		}
		return fmt.Errorf("upload %s: %w", name, err)
	}

	args := []any{"duration", time.Since(start)}
	if fi, err := os.Stat(asset.Path); err == nil {
		args = append(args, "size", humanize.Bytes(uint64(fi.Size())))
	}
	log.Info(ctx, "image uploaded", args...)

	if err := s.FetchList(ctx); err != nil {
		log.Warn(ctx, "gallery refresh after upload failed", "error", err)
	}
	s.notify.Success(ctx, "Success", "Image uploaded successfully!")
	return nil
}

// DeleteImage removes fileID from the store. It performs no confirmation of
// its own; callers gate it with DeletionGuard. On success refresh is called
// exactly once. Failures leave the gallery state untouched.
func (s *SyncService) DeleteImage(ctx context.Context, fileID string, refresh RefreshFunc) error {
	log := s.opLogger("delete").With("file_id", fileID)
	start := time.Now()

	if err := s.client.Delete(ctx, fileID); err != nil {
		log.Error(ctx, "delete failed", "error", err, "duration", time.Since(start))
		if errors.Is(err, common.ErrStoreRejection) {
			s.notify.Failure(ctx, "Error", "Failed to delete image")
		} else {
			s.notify.Failure(ctx, "Error", "An error occurred while deleting image")
		}
		return fmt.Errorf("delete %s: %w", fileID, err)
	}

	log.Info(ctx, "image deleted", "duration", time.Since(start))
	s.notify.Success(ctx, "Success", "Image deleted successfully")

	if refresh != nil {
		if err := refresh(ctx); err != nil {
			log.Warn(ctx, "gallery refresh after delete failed", "error", err)
		}
	}
	return nil
}
