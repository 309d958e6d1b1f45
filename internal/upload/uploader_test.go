package upload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arunika/internal/domain/entity"
	"arunika/pkg/errors"
)

func TestUploadDirectPayloadSkipsStore(t *testing.T) {
	store := newFakeStore()
	uploader := NewUploader(store)

	preloaded := entity.Asset{URL: "https://cdn.example.com/objects/7", RemoteID: "objects/7"}
	asset, err := uploader.Upload(context.Background(), Request{
		Filename: "hero.jpg",
		Payload:  Direct{Asset: preloaded},
	})

	require.NoError(t, err)
	assert.Equal(t, preloaded, asset)
	assert.Empty(t, store.uploads)
}

func TestUploadBufferedPayloadUsesPreset(t *testing.T) {
	store := newFakeStore()
	uploader := NewUploader(store)

	asset, err := uploader.Upload(context.Background(), Request{
		Filename: "portrait.jpg",
		Preset:   PresetTeamPortrait,
		Payload:  Buffered{Bytes: []byte("jpeg-bytes"), ContentType: "image/jpeg"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, asset.RemoteID)
	assert.NotEmpty(t, asset.URL)

	require.Len(t, store.uploads, 1)
	assert.False(t, store.uploads[0].raw)
	assert.Equal(t, PresetTeamPortrait, store.uploads[0].preset)
	assert.Equal(t, "image/jpeg", store.uploads[0].contentType)
}

func TestUploadVectorBypassesTransformation(t *testing.T) {
	store := newFakeStore()
	uploader := NewUploader(store)

	_, err := uploader.Upload(context.Background(), Request{
		Filename: "logo.svg",
		Preset:   PresetIcon,
		Payload:  Buffered{Bytes: []byte("<svg/>"), ContentType: "image/svg+xml"},
	})

	require.NoError(t, err)
	require.Len(t, store.uploads, 1)
	assert.True(t, store.uploads[0].raw)
}

func TestUploadVectorDetectedByExtension(t *testing.T) {
	store := newFakeStore()
	uploader := NewUploader(store)

	_, err := uploader.Upload(context.Background(), Request{
		Filename: "Diagram.SVG",
		Payload:  Buffered{Bytes: []byte("<svg/>"), ContentType: "application/octet-stream"},
	})

	require.NoError(t, err)
	require.Len(t, store.uploads, 1)
	assert.True(t, store.uploads[0].raw)
}

func TestUploadFailureYieldsNoAsset(t *testing.T) {
	store := newFakeStore()
	store.failUploadAfter = 1
	uploader := NewUploader(store)

	asset, err := uploader.Upload(context.Background(), Request{
		Filename: "broken.png",
		Payload:  Buffered{Bytes: []byte("png-bytes"), ContentType: "image/png"},
	})

	require.Error(t, err)
	assert.Empty(t, asset.RemoteID)

	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, "UPLOAD_FAILED", appErr.Code)
}
