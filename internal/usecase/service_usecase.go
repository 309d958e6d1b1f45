package usecase

import (
	"context"
	"time"

	"arunika/internal/domain/entity"
	"arunika/internal/domain/repository"
	"arunika/internal/upload"
	"arunika/pkg/errors"
)

type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
	uploader    *upload.Uploader
	compensator *upload.Compensator
}

func NewServiceUseCase(serviceRepo repository.ServiceRepository, uploader *upload.Uploader, compensator *upload.Compensator) *ServiceUseCase {
	return &ServiceUseCase{
		serviceRepo: serviceRepo,
		uploader:    uploader,
		compensator: compensator,
	}
}

type CreateServiceInput struct {
	Title        string
	Summary      string
	Description  string
	DisplayOrder int
	Status       string
}

type UpdateServiceInput struct {
	Title        string
	Summary      string
	Description  string
	DisplayOrder int
	Status       string

	// Explicit-deletion flags. A flag whose slot is already empty is a
	// no-op; a flag alongside a replacement file is ignored, the
	// replacement wins.
	RemoveIcon  bool
	RemoveImage bool
}

// slotAssets splits the uploaded assets back into their slots by field name.
func slotAssets(files []upload.Request, uploaded []entity.Asset) (icon, image *entity.Asset) {
	for i, file := range files {
		asset := uploaded[i]
		switch file.Field {
		case "icon":
			icon = &asset
		case "image":
			image = &asset
		}
	}
	return icon, image
}

func (uc *ServiceUseCase) CreateService(ctx context.Context, input CreateServiceInput, files []upload.Request) (*entity.Service, error) {
	slug := slugify(input.Title)
	if existing, err := uc.serviceRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		discardPreloaded(ctx, uc.compensator, files)
		return nil, errors.Conflict("Service with this title already exists")
	}

	uploaded, err := uploadAll(ctx, uc.uploader, uc.compensator, files)
	if err != nil {
		return nil, err
	}
	icon, image := slotAssets(files, uploaded)

	status := input.Status
	if status == "" {
		status = "active"
	}

	now := time.Now()
	service := &entity.Service{
		Title:        input.Title,
		Slug:         slug,
		Summary:      input.Summary,
		Description:  input.Description,
		Icon:         icon,
		Image:        image,
		DisplayOrder: input.DisplayOrder,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.serviceRepo.Create(ctx, service); err != nil {
		uc.compensator.Compensate(ctx, uploaded)
		return nil, err
	}

	return service, nil
}

func (uc *ServiceUseCase) GetServiceByID(ctx context.Context, id string) (*entity.Service, error) {
	return uc.serviceRepo.GetByID(ctx, id)
}

func (uc *ServiceUseCase) ListServices(ctx context.Context, status string, page, limit int) ([]*entity.Service, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.serviceRepo.List(ctx, filter, limit, offset)
}

func (uc *ServiceUseCase) UpdateService(ctx context.Context, id string, input UpdateServiceInput, files []upload.Request) (*entity.Service, error) {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		discardPreloaded(ctx, uc.compensator, files)
		return nil, err
	}

	slug := service.Slug
	if input.Title != service.Title {
		slug = slugify(input.Title)
		if other, err := uc.serviceRepo.GetBySlug(ctx, slug); err == nil && other != nil && other.ID != id {
			discardPreloaded(ctx, uc.compensator, files)
			return nil, errors.Conflict("Service with this title already exists")
		}
	}

	uploaded, err := uploadAll(ctx, uc.uploader, uc.compensator, files)
	if err != nil {
		return nil, err
	}
	newIcon, newImage := slotAssets(files, uploaded)

	// Each slot changes independently of the other.
	var stale []entity.Asset
	switch {
	case newIcon != nil:
		if service.Icon != nil {
			stale = append(stale, *service.Icon)
		}
		service.Icon = newIcon
	case input.RemoveIcon && service.Icon != nil:
		stale = append(stale, *service.Icon)
		service.Icon = nil
	}
	switch {
	case newImage != nil:
		if service.Image != nil {
			stale = append(stale, *service.Image)
		}
		service.Image = newImage
	case input.RemoveImage && service.Image != nil:
		stale = append(stale, *service.Image)
		service.Image = nil
	}

	service.Title = input.Title
	service.Slug = slug
	service.Summary = input.Summary
	service.Description = input.Description
	service.DisplayOrder = input.DisplayOrder
	if input.Status != "" {
		service.Status = input.Status
	}
	service.UpdatedAt = time.Now()

	if err := uc.serviceRepo.Update(ctx, service); err != nil {
		uc.compensator.Compensate(ctx, uploaded)
		return nil, err
	}

	uc.compensator.Release(ctx, stale)

	return service, nil
}

func (uc *ServiceUseCase) DeleteService(ctx context.Context, id string) error {
	service, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.serviceRepo.Delete(ctx, id); err != nil {
		return err
	}

	var assets []entity.Asset
	if service.Icon != nil {
		assets = append(assets, *service.Icon)
	}
	if service.Image != nil {
		assets = append(assets, *service.Image)
	}
	uc.compensator.Release(ctx, assets)

	return nil
}
