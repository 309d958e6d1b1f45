package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arunika/internal/domain/entity"
	"arunika/internal/upload"
)

func newServiceFixture() (*ServiceUseCase, *fakeServiceRepo, *fakeStore, *recorder) {
	rec := &recorder{}
	store := newFakeStore(rec)
	repo := newFakeServiceRepo(rec)
	uc := NewServiceUseCase(repo, upload.NewUploader(store), upload.NewCompensator(store))
	return uc, repo, store, rec
}

func TestCreateServiceUploadsBufferedSlots(t *testing.T) {
	uc, repo, store, _ := newServiceFixture()

	service, err := uc.CreateService(context.Background(), CreateServiceInput{
		Title: "Brand Strategy",
	}, []upload.Request{
		bufferedRequest("icon", "icon.svg"),
		bufferedRequest("image", "banner.jpg"),
	})

	require.NoError(t, err)
	assert.Len(t, store.uploads, 2, "buffered payloads are uploaded at persistence time")
	require.NotNil(t, service.Icon)
	require.NotNil(t, service.Image)
	assert.NotEqual(t, service.Icon.RemoteID, service.Image.RemoteID)
	assert.Equal(t, "brand-strategy", service.Slug)
	assert.Equal(t, "active", service.Status)
	assert.Len(t, repo.services, 1)
}

func TestCreateServiceWithoutFiles(t *testing.T) {
	uc, _, store, _ := newServiceFixture()

	service, err := uc.CreateService(context.Background(), CreateServiceInput{
		Title: "Consulting",
	}, nil)

	require.NoError(t, err)
	assert.Nil(t, service.Icon)
	assert.Nil(t, service.Image)
	assert.Empty(t, store.uploads)
}

func TestUpdateServiceReplacementWinsOverRemoveFlag(t *testing.T) {
	uc, repo, store, _ := newServiceFixture()
	require.NoError(t, repo.Create(context.Background(), &entity.Service{
		Title: "Brand Strategy",
		Slug:  "brand-strategy",
		Icon:  &entity.Asset{RemoteID: "objects/old-icon"},
	}))

	service, err := uc.UpdateService(context.Background(), "service-1", UpdateServiceInput{
		Title:      "Brand Strategy",
		RemoveIcon: true,
	}, []upload.Request{bufferedRequest("icon", "new-icon.png")})

	require.NoError(t, err)
	require.NotNil(t, service.Icon, "the replacement wins over the removal flag")
	assert.Equal(t, "objects/1", service.Icon.RemoteID)
	assert.Equal(t, []string{"objects/old-icon"}, store.deleted)
}

func TestUpdateServiceSlotsAreIndependent(t *testing.T) {
	uc, repo, _, rec := newServiceFixture()
	require.NoError(t, repo.Create(context.Background(), &entity.Service{
		Title: "Brand Strategy",
		Slug:  "brand-strategy",
		Icon:  &entity.Asset{RemoteID: "objects/old-icon"},
		Image: &entity.Asset{RemoteID: "objects/old-image"},
	}))
	rec.events = nil

	service, err := uc.UpdateService(context.Background(), "service-1", UpdateServiceInput{
		Title:      "Brand Strategy",
		RemoveIcon: true,
	}, nil)

	require.NoError(t, err)
	assert.Nil(t, service.Icon)
	require.NotNil(t, service.Image, "removing the icon must not touch the image slot")
	assert.Equal(t, "objects/old-image", service.Image.RemoteID)
	assert.Equal(t, []string{"update:service-1", "delete:objects/old-icon"}, rec.events)
}

func TestUpdateServiceRemoveFlagOnEmptySlotIsNoop(t *testing.T) {
	uc, repo, store, _ := newServiceFixture()
	require.NoError(t, repo.Create(context.Background(), &entity.Service{
		Title: "Brand Strategy",
		Slug:  "brand-strategy",
	}))

	service, err := uc.UpdateService(context.Background(), "service-1", UpdateServiceInput{
		Title:       "Brand Strategy",
		RemoveIcon:  true,
		RemoveImage: true,
	}, nil)

	require.NoError(t, err)
	assert.Nil(t, service.Icon)
	assert.Nil(t, service.Image)
	assert.Empty(t, store.deleted)
}

func TestDeleteServiceReleasesBothSlots(t *testing.T) {
	uc, repo, store, _ := newServiceFixture()
	require.NoError(t, repo.Create(context.Background(), &entity.Service{
		Title: "Brand Strategy",
		Slug:  "brand-strategy",
		Icon:  &entity.Asset{RemoteID: "objects/old-icon"},
		Image: &entity.Asset{RemoteID: "objects/old-image"},
	}))

	err := uc.DeleteService(context.Background(), "service-1")

	require.NoError(t, err)
	assert.Empty(t, repo.services)
	assert.ElementsMatch(t, []string{"objects/old-icon", "objects/old-image"}, store.deleted)
}
