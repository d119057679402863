package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/dmitrijs2005/medianest/internal/client/gallery"
	"github.com/dmitrijs2005/medianest/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

var renderNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestImageCount(t *testing.T) {
	assert.Equal(t, "0 images", imageCount(0))
	assert.Equal(t, "1 image", imageCount(1))
	assert.Equal(t, "2 images", imageCount(2))
}

func TestRenderGallery(t *testing.T) {
	items := []models.MediaItem{
		{ID: "a1", Name: "cat.jpg", Width: intPtr(640), Height: intPtr(480), CreatedAt: "2025-03-01T09:00:00Z"},
		{ID: "b22", Name: "dog.png"},
	}

	tests := []struct {
		name     string
		state    gallery.State
		contains []string
		absent   []string
	}{
		{
			name:     "loading",
			state:    gallery.State{Status: gallery.StatusLoading},
			contains: []string{"0 images", "Loading images..."},
		},
		{
			name:     "refreshing keeps items visible",
			state:    gallery.State{Status: gallery.StatusLoading, Refreshing: true, Items: items},
			contains: []string{"2 images", "cat.jpg"},
			absent:   []string{"Loading images..."},
		},
		{
			name:     "error",
			state:    gallery.State{Status: gallery.StatusError, Err: "list failed: HTTP status 500"},
			contains: []string{"Something went wrong", "list failed: HTTP status 500", "retry"},
		},
		{
			name:     "empty",
			state:    gallery.State{Status: gallery.StatusReady, Items: []models.MediaItem{}},
			contains: []string{"0 images", "No Images Yet"},
		},
		{
			name:  "items",
			state: gallery.State{Status: gallery.StatusReady, Items: items},
			contains: []string{
				"2 images",
				"a1   cat.jpg  640x480    3 hours ago",
				"b22  dog.png  -",
			},
			absent: []string{"Uploading..."},
		},
		{
			name:     "single item and upload marker",
			state:    gallery.State{Status: gallery.StatusReady, Items: items[:1], UploadInFlight: true},
			contains: []string{"1 image\n", "Uploading..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			renderGallery(&buf, tt.state, renderNow)
			out := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderItem(t *testing.T) {
	var buf bytes.Buffer
	renderItem(&buf, models.MediaItem{
		ID:           "a1",
		Name:         "cat.jpg",
		URL:          "https://cdn.example.com/cat.jpg",
		ThumbnailURL: "https://cdn.example.com/cat_t.jpg",
		Width:        intPtr(10),
		Height:       intPtr(20),
		CreatedAt:    "2025-02-27T12:00:00Z",
	}, renderNow)

	out := buf.String()
	assert.Contains(t, out, "ID:        a1\n")
	assert.Contains(t, out, "Thumbnail: https://cdn.example.com/cat_t.jpg\n")
	assert.Contains(t, out, "Size:      10x20\n")
	assert.Contains(t, out, "Created:   2025-02-27T12:00:00Z (2 days ago)\n")
}
