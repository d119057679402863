package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/dmitrijs2005/medianest/internal/common"
)

// outPlaceholder is replaced with the capture path in the camera command.
const outPlaceholder = "{out}"

type camera interface {
	Capture(ctx context.Context) (models.LocalAsset, error)
}

// commandCamera takes a photo by running an external command such as
// "libcamera-still -o {out}" or "fswebcam {out}".
type commandCamera struct {
	command string
	dir     string
}

func (c commandCamera) Capture(ctx context.Context) (models.LocalAsset, error) {
	args := strings.Fields(c.command)
	if len(args) == 0 {
		return models.LocalAsset{}, fmt.Errorf("%w: camera access is not available", common.ErrPermissionDenied)
	}

	// Reserve a unique path; captures may run concurrently.
	f, err := os.CreateTemp(c.dir, "photo-*.jpg")
	if err != nil {
		return models.LocalAsset{}, fmt.Errorf("reserve capture file: %w", err)
	}
	out := f.Name()
	name := filepath.Base(out)
	if err := f.Close(); err != nil {
		_ = os.Remove(out)
		return models.LocalAsset{}, fmt.Errorf("reserve capture file: %w", err)
	}

	substituted := false
	for i, arg := range args {
		if strings.Contains(arg, outPlaceholder) {
			args[i] = strings.ReplaceAll(arg, outPlaceholder, out)
			substituted = true
		}
	}
	if !substituted {
		args = append(args, out)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(out)
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrPermission) {
			return models.LocalAsset{}, fmt.Errorf("%w: %w", common.ErrPermissionDenied, err)
		}
		return models.LocalAsset{}, fmt.Errorf("camera command: %w: %s", err, strings.TrimSpace(string(output)))
	}

	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		_ = os.Remove(out)
		return models.LocalAsset{}, errors.New("camera produced no image")
	}
	return models.LocalAsset{Path: out, Name: name, Source: models.SourceCamera}, nil
}
