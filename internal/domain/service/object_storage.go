package service

import (
	"context"
	"io"
)

// ImagePreset describes the transformation requested for a stored image.
// The parameters are passed through to the store; nothing is computed here.
type ImagePreset struct {
	Name    string
	Width   int
	Height  int
	Crop    string // "fill" or "fit"
	Gravity string // "face" for portrait crops, empty otherwise
}

// StoredObject is the stable (url, remoteId) pair a successful upload
// produces. RemoteID is the handle for later deletion.
type StoredObject struct {
	URL      string
	RemoteID string
}

// ObjectStorage is the remote object store consumed by the upload pipeline.
// UploadImage sends a raster image through the transformation path with the
// given preset; UploadRaw stores the payload untouched (vector assets).
type ObjectStorage interface {
	UploadImage(ctx context.Context, file io.Reader, contentType string, preset ImagePreset) (*StoredObject, error)
	UploadRaw(ctx context.Context, file io.Reader, contentType, filename string) (*StoredObject, error)
	Delete(ctx context.Context, remoteID string) error
	Close() error
}
