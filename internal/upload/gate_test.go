package upload

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, bytes.Repeat([]byte{0x00}, 64)...)

type formFile struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

func buildForm(t *testing.T, files ...formFile) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.filename))
		if file.contentType != "" {
			header.Set("Content-Type", file.contentType)
		}
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func newTestGate(store *fakeStore, direct bool) *Gate {
	return NewGate(NewUploader(store), NewCompensator(store), Capability{DirectUpload: direct})
}

func TestParseNilForm(t *testing.T) {
	gate := newTestGate(newFakeStore(), false)

	requests, err := gate.Parse(context.Background(), nil, ProjectForm)

	require.NoError(t, err)
	assert.Nil(t, requests)
}

func TestParseBuffersFilesWithoutDirectUpload(t *testing.T) {
	store := newFakeStore()
	gate := newTestGate(store, false)

	form := buildForm(t,
		formFile{field: "icon", filename: "icon.png", contentType: "image/png", data: pngBytes},
		formFile{field: "image", filename: "banner.jpg", contentType: "image/jpeg", data: []byte("jpeg-bytes")},
	)

	requests, err := gate.Parse(context.Background(), form, ServiceForm)

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Empty(t, store.uploads, "nothing may reach the store during parsing in buffered mode")

	icon, ok := requests[0].Payload.(Buffered)
	require.True(t, ok)
	assert.Equal(t, pngBytes, icon.Bytes)
	assert.Equal(t, "image/png", icon.ContentType)
	assert.Equal(t, RoleIcon, requests[0].Role)

	image, ok := requests[1].Payload.(Buffered)
	require.True(t, ok)
	assert.Equal(t, []byte("jpeg-bytes"), image.Bytes)
	assert.Equal(t, RoleImage, requests[1].Role)
}

func TestParseStreamsFilesWithDirectUpload(t *testing.T) {
	store := newFakeStore()
	gate := newTestGate(store, true)

	form := buildForm(t,
		formFile{field: "images", filename: "one.png", contentType: "image/png", data: pngBytes},
		formFile{field: "images", filename: "two.png", contentType: "image/png", data: pngBytes},
	)

	requests, err := gate.Parse(context.Background(), form, ProjectForm)

	require.NoError(t, err)
	require.Len(t, requests, 2)
	require.Len(t, store.uploads, 2)
	assert.Equal(t, len(pngBytes), store.uploads[0].size, "the streamed object must carry the full file")

	for _, request := range requests {
		direct, ok := request.Payload.(Direct)
		require.True(t, ok)
		assert.NotEmpty(t, direct.Asset.RemoteID)
		assert.Equal(t, RoleGalleryItem, request.Role)
	}
}

func TestParseSniffsMissingContentType(t *testing.T) {
	store := newFakeStore()
	gate := newTestGate(store, false)

	form := buildForm(t, formFile{field: "image", filename: "portrait", data: pngBytes})

	requests, err := gate.Parse(context.Background(), form, TeamMemberForm)

	require.NoError(t, err)
	require.Len(t, requests, 1)
	buffered := requests[0].Payload.(Buffered)
	assert.Equal(t, "image/png", buffered.ContentType)
}

func TestParseRejectsNonImage(t *testing.T) {
	store := newFakeStore()
	gate := newTestGate(store, false)

	form := buildForm(t, formFile{field: "image", filename: "resume.pdf", contentType: "application/pdf", data: []byte("%PDF-1.4")})

	_, err := gate.Parse(context.Background(), form, TeamMemberForm)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
}

func TestParseRejectsOversizedFile(t *testing.T) {
	store := newFakeStore()
	gate := newTestGate(store, true)
	gate.maxFileSize = 16

	form := buildForm(t, formFile{field: "image", filename: "huge.png", contentType: "image/png", data: pngBytes})

	_, err := gate.Parse(context.Background(), form, TeamMemberForm)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
	assert.Empty(t, store.uploads, "an oversized file must be rejected before any upload")
}

func TestParseRejectsTooManyFiles(t *testing.T) {
	store := newFakeStore()
	gate := newTestGate(store, false)

	form := buildForm(t,
		formFile{field: "icon", filename: "a.png", contentType: "image/png", data: pngBytes},
		formFile{field: "icon", filename: "b.png", contentType: "image/png", data: pngBytes},
	)

	_, err := gate.Parse(context.Background(), form, ServiceForm)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR")
}

func TestParseDirectModeCompensatesOnLaterRejection(t *testing.T) {
	store := newFakeStore()
	gate := newTestGate(store, true)

	form := buildForm(t,
		formFile{field: "images", filename: "good.png", contentType: "image/png", data: pngBytes},
		formFile{field: "images", filename: "notes.txt", contentType: "text/plain", data: []byte("not an image")},
	)

	_, err := gate.Parse(context.Background(), form, ProjectForm)

	require.Error(t, err)
	require.Len(t, store.uploads, 1, "only the accepted file reaches the store")
	assert.Equal(t, []string{store.uploads[0].remoteID}, store.deleted, "the already streamed object must be deleted")
}
