// Package models defines the gallery data types shared by the client layers.
package models

import "time"

// MediaItem is one image held by the remote media store.
//
// Optional metadata is left zero (empty string or nil) when the store omits
// it. The ID is unique within a single fetched collection.
type MediaItem struct {
	ID           string `json:"fileId"`
	URL          string `json:"url"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Width        *int   `json:"width,omitempty"`
	Height       *int   `json:"height,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// Created parses CreatedAt as RFC 3339. The second result is false when the
// value is absent or malformed.
func (m MediaItem) Created() (time.Time, bool) {
	if m.CreatedAt == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, m.CreatedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Dimensions reports width and height when both are known.
func (m MediaItem) Dimensions() (int, int, bool) {
	if m.Width == nil || m.Height == nil {
		return 0, 0, false
	}
	return *m.Width, *m.Height, true
}

// ListResponse is the body of a successful list request.
type ListResponse struct {
	Files []MediaItem `json:"files"`
}

// DeleteRequest is the body of a delete request.
type DeleteRequest struct {
	FileID string `json:"fileId"`
}
