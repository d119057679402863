package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"

	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/dmitrijs2005/medianest/internal/common"
	"github.com/dmitrijs2005/medianest/internal/filex"
	"github.com/dmitrijs2005/medianest/internal/netx"
	"github.com/dustin/go-humanize"
)

// maxPinAttempts bounds how often the PIN prompt is repeated after a
// mismatch before the deletion is cancelled.
const maxPinAttempts = 3

// Load fetches the gallery. A failure is recorded in the gallery state.
func (a *App) Load(ctx context.Context) error {
	return a.ctrl.RequestFetch(ctx)
}

// List renders the current gallery without contacting the store.
func (a *App) List(ctx context.Context) error {
	renderGallery(a.out, a.ctrl.State(), a.now())
	return nil
}

// Refresh reloads the gallery and renders it.
func (a *App) Refresh(ctx context.Context) error {
	err := a.ctrl.RequestRefresh(ctx)
	_ = a.List(ctx)
	return err
}

// Retry repeats a failed load.
func (a *App) Retry(ctx context.Context) error {
	err := a.ctrl.RequestFetch(ctx)
	_ = a.List(ctx)
	return err
}

// Upload sends the image at path.
func (a *App) Upload(ctx context.Context, path string) error {
	fi, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrPermission):
		a.notifier.Failure(ctx, "Permission Required", "Sorry, we need file access permissions to make this work!")
		return fmt.Errorf("%w: %w", common.ErrPermissionDenied, err)
	case err != nil:
		a.notifier.Failure(ctx, "Error", "Failed to pick image. Please try again.")
		return err
	case fi.IsDir():
		a.notifier.Failure(ctx, "Error", "Failed to pick image. Please try again.")
		return fmt.Errorf("%s is a directory", path)
	}

	return a.ctrl.RequestUpload(ctx, models.NewLocalAsset(path))
}

// Capture takes a photo with the configured camera and uploads it. The
// captured file is removed afterwards.
func (a *App) Capture(ctx context.Context) error {
	asset, err := a.camera.Capture(ctx)
	if err != nil {
		a.log.Error(ctx, "camera capture failed", "error", err)
		if errors.Is(err, common.ErrPermissionDenied) {
			a.notifier.Failure(ctx, "Permission Required", "Camera permission is required to take photos.")
		} else {
			a.notifier.Failure(ctx, "Error", "Failed to take photo. Please try again.")
		}
		return err
	}
	defer func() {
		if err := os.Remove(asset.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			a.log.Warn(ctx, "remove captured photo", "path", asset.Path, "error", err)
		}
	}()

	return a.ctrl.RequestUpload(ctx, asset)
}

func (a *App) findItem(id string) (models.MediaItem, error) {
	for _, it := range a.store.Snapshot().Items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.MediaItem{}, fmt.Errorf("image %q: %w", id, common.ErrNotFound)
}

// Show prints the details of one image.
func (a *App) Show(ctx context.Context, id string) error {
	it, err := a.findItem(id)
	if err != nil {
		a.println("No image with id", id)
		return err
	}
	renderItem(a.out, it, a.now())
	return nil
}

// Download saves the full resolution image into the download directory.
func (a *App) Download(ctx context.Context, id string) (retErr error) {
	it, err := a.findItem(id)
	if err != nil {
		a.println("No image with id", id)
		return err
	}

	dir, err := filex.EnsureDir(a.config.DownloadDir)
	if err != nil {
		return err
	}
	name := it.Name
	if strings.TrimSpace(name) == "" {
		name = it.ID
	}
	path, err := filex.UniquePath(dir, name)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = err
		}
		if retErr != nil {
			_ = os.Remove(path)
		}
	}()

	n, err := netx.Download(ctx, a.http, it.URL, f)
	if err != nil {
		a.log.Error(ctx, "download failed", "file_id", id, "error", err)
		a.notifier.Failure(ctx, "Error", "Failed to download image")
		return err
	}

	a.log.Info(ctx, "image downloaded", "file_id", id, "path", path, "size", n)
	a.printf("Saved %s (%s)\n", path, humanize.Bytes(uint64(n)))
	return nil
}

// Delete asks for confirmation and the delete PIN, then removes the image.
// A wrong PIN may be retried; an empty PIN cancels.
func (a *App) Delete(ctx context.Context, id string) error {
	if _, err := a.findItem(id); err != nil {
		a.println("No image with id", id)
		return err
	}
	if !a.config.DeletionEnabled() {
		a.println("Deletion is disabled: no delete PIN is configured. Type 'support' to request one.")
		return common.ErrGuardRejection
	}

	if !a.assumeYes {
		ok, err := confirm(a.reader, "Are you sure you want to delete this image?", a.out)
		if err != nil {
			return err
		}
		if !ok {
			a.println("Cancelled.")
			return nil
		}
	}

	if err := a.ctrl.RequestDelete(id); err != nil {
		return err
	}
	defer a.ctrl.CancelDelete()

	for attempt := 1; ; attempt++ {
		pin, err := GetPIN(a.reader, a.out)
		if err != nil {
			return err
		}
		if strings.TrimSpace(pin) == "" {
			a.println("Cancelled.")
			return nil
		}

		err = a.ctrl.SubmitPin(ctx, pin)
		if errors.Is(err, common.ErrGuardRejection) && attempt < maxPinAttempts {
			continue
		}
		if err != nil {
			return err
		}
		return a.List(ctx)
	}
}

// Support prints how to reach the developer for the delete PIN.
func (a *App) Support(ctx context.Context) error {
	a.println("Need to delete an image? Contact the developer")

	email := strings.TrimSpace(a.config.SupportEmail)
	if email == "" {
		a.println("No support contact is configured.")
		return nil
	}
	a.println(supportLink(email))
	return nil
}

func supportLink(email string) string {
	q := url.Values{}
	q.Set("subject", "Request for Delete PIN")
	q.Set("body", "Hi,\r\n\r\nI need assistance with deleting an image on Media Nest.\r\n\r\nThanks!")
	return "mailto:" + email + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
