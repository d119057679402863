package client

import (
	"context"

	"github.com/dmitrijs2005/medianest/internal/client/models"
)

// Client is the remote media store contract.
type Client interface {
	List(ctx context.Context) ([]models.MediaItem, error)
	Upload(ctx context.Context, asset models.LocalAsset) error
	Delete(ctx context.Context, fileID string) error
}
