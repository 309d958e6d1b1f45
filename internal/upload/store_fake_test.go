package upload

import (
	"context"
	"fmt"
	"io"

	domainservice "arunika/internal/domain/service"
)

// fakeStore records every call so tests can assert on upload routing and
// compensation order without touching a real bucket.
type fakeStore struct {
	uploads []fakeUpload
	deleted []string

	failUploadAfter int // fail the n-th upload onwards; 0 disables
	failDelete      map[string]error
}

type fakeUpload struct {
	remoteID    string
	contentType string
	preset      domainservice.ImagePreset
	raw         bool
	size        int
}

func newFakeStore() *fakeStore {
	return &fakeStore{failDelete: map[string]error{}}
}

func (s *fakeStore) nextID() string {
	return fmt.Sprintf("objects/%d", len(s.uploads)+1)
}

func (s *fakeStore) UploadImage(ctx context.Context, file io.Reader, contentType string, preset domainservice.ImagePreset) (*domainservice.StoredObject, error) {
	return s.record(file, contentType, preset, false)
}

func (s *fakeStore) UploadRaw(ctx context.Context, file io.Reader, contentType, filename string) (*domainservice.StoredObject, error) {
	return s.record(file, contentType, domainservice.ImagePreset{}, true)
}

func (s *fakeStore) record(file io.Reader, contentType string, preset domainservice.ImagePreset, raw bool) (*domainservice.StoredObject, error) {
	if s.failUploadAfter > 0 && len(s.uploads)+1 >= s.failUploadAfter {
		return nil, fmt.Errorf("storage unavailable")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	id := s.nextID()
	s.uploads = append(s.uploads, fakeUpload{
		remoteID:    id,
		contentType: contentType,
		preset:      preset,
		raw:         raw,
		size:        len(data),
	})
	return &domainservice.StoredObject{
		URL:      "https://cdn.example.com/" + id,
		RemoteID: id,
	}, nil
}

func (s *fakeStore) Delete(ctx context.Context, remoteID string) error {
	if err, ok := s.failDelete[remoteID]; ok {
		return err
	}
	s.deleted = append(s.deleted, remoteID)
	return nil
}

func (s *fakeStore) Close() error {
	return nil
}
