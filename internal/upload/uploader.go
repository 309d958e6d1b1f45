package upload

import (
	"bytes"
	"context"
	"io"
	"strings"

	"arunika/internal/domain/entity"
	domainservice "arunika/internal/domain/service"
	"arunika/pkg/errors"
)

// Uploader turns a Request into a stored asset. A Direct payload is already
// remote and costs no network call; a Buffered payload is uploaded here.
// On failure nothing is kept: callers must never treat a failed call as
// having produced an asset.
type Uploader struct {
	store domainservice.ObjectStorage
}

func NewUploader(store domainservice.ObjectStorage) *Uploader {
	return &Uploader{
		store: store,
	}
}

func (u *Uploader) Upload(ctx context.Context, req Request) (entity.Asset, error) {
	switch payload := req.Payload.(type) {
	case Direct:
		return payload.Asset, nil
	case Buffered:
		return u.push(ctx, bytes.NewReader(payload.Bytes), payload.ContentType, req.Filename, req.Preset)
	default:
		return entity.Asset{}, errors.Internal("Unknown upload payload", nil)
	}
}

// push performs the single remote upload call. Vector images skip the
// transformation path and land on the generic-asset path.
func (u *Uploader) push(ctx context.Context, file io.Reader, contentType, filename string, preset domainservice.ImagePreset) (entity.Asset, error) {
	var obj *domainservice.StoredObject
	var err error

	if isVector(contentType, filename) {
		obj, err = u.store.UploadRaw(ctx, file, contentType, filename)
	} else {
		obj, err = u.store.UploadImage(ctx, file, contentType, preset)
	}

	if err != nil {
		return entity.Asset{}, errors.UploadFailed("Failed to store "+filename, err)
	}

	return entity.Asset{
		URL:      obj.URL,
		RemoteID: obj.RemoteID,
	}, nil
}

func isVector(contentType, filename string) bool {
	if contentType == "image/svg+xml" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".svg")
}
