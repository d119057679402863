package models

import "path/filepath"

// AssetSource tells where a local image came from.
type AssetSource string

const (
	SourceLibrary AssetSource = "library"
	SourceCamera  AssetSource = "camera"
)

// LocalAsset is a local image file selected or captured for upload.
type LocalAsset struct {
	Path   string
	Name   string
	Source AssetSource
}

// NewLocalAsset builds a library asset named after the last path element.
func NewLocalAsset(path string) LocalAsset {
	return LocalAsset{Path: path, Name: filepath.Base(path), Source: SourceLibrary}
}

// FileName returns Name, or the base of Path when Name is empty.
func (a LocalAsset) FileName() string {
	if a.Name != "" {
		return a.Name
	}
	return filepath.Base(a.Path)
}
