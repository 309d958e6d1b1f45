package usecase

import (
	"context"
	"time"

	"arunika/internal/domain/entity"
	"arunika/internal/domain/repository"
	"arunika/internal/upload"
	"arunika/pkg/errors"
)

const maxGallerySize = 10

type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	uploader    *upload.Uploader
	compensator *upload.Compensator
}

func NewProjectUseCase(projectRepo repository.ProjectRepository, uploader *upload.Uploader, compensator *upload.Compensator) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		uploader:    uploader,
		compensator: compensator,
	}
}

type CreateProjectInput struct {
	Title       string
	Client      string
	Category    string
	Year        int
	Summary     string
	Description string
	Status      string
}

type UpdateProjectInput struct {
	Title       string
	Client      string
	Category    string
	Year        int
	Summary     string
	Description string
	Status      string

	// RemoveImages lists remote ids to drop from the gallery. Their remote
	// deletion is deferred until after the entity write commits.
	RemoveImages []string
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, input CreateProjectInput, files []upload.Request) (*entity.Project, error) {
	slug := slugify(input.Title)
	if existing, err := uc.projectRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		discardPreloaded(ctx, uc.compensator, files)
		return nil, errors.Conflict("Project with this title already exists")
	}

	uploaded, err := uploadAll(ctx, uc.uploader, uc.compensator, files)
	if err != nil {
		return nil, err
	}
	ensureSinglePrimary(uploaded)

	status := input.Status
	if status == "" {
		status = "published"
	}

	now := time.Now()
	project := &entity.Project{
		Title:       input.Title,
		Slug:        slug,
		Client:      input.Client,
		Category:    input.Category,
		Year:        input.Year,
		Summary:     input.Summary,
		Description: input.Description,
		Gallery:     uploaded,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		uc.compensator.Compensate(ctx, uploaded)
		return nil, err
	}

	return project, nil
}

func (uc *ProjectUseCase) GetProjectByID(ctx context.Context, id string) (*entity.Project, error) {
	return uc.projectRepo.GetByID(ctx, id)
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context, status, category string, page, limit int) ([]*entity.Project, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}
	if category != "" {
		filter["category"] = category
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.projectRepo.List(ctx, filter, limit, offset)
}

func (uc *ProjectUseCase) UpdateProject(ctx context.Context, id string, input UpdateProjectInput, files []upload.Request) (*entity.Project, error) {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		discardPreloaded(ctx, uc.compensator, files)
		return nil, err
	}

	slug := project.Slug
	if input.Title != project.Title {
		slug = slugify(input.Title)
		if other, err := uc.projectRepo.GetBySlug(ctx, slug); err == nil && other != nil && other.ID != id {
			discardPreloaded(ctx, uc.compensator, files)
			return nil, errors.Conflict("Project with this title already exists")
		}
	}

	removed := make(map[string]bool, len(input.RemoveImages))
	for _, remoteID := range input.RemoveImages {
		removed[remoteID] = true
	}

	kept := make([]entity.Asset, 0, len(project.Gallery))
	var stale []entity.Asset
	for _, asset := range project.Gallery {
		if removed[asset.RemoteID] {
			stale = append(stale, asset)
		} else {
			kept = append(kept, asset)
		}
	}

	if len(kept)+len(files) > maxGallerySize {
		discardPreloaded(ctx, uc.compensator, files)
		return nil, errors.Validation("Gallery cannot hold more than 10 images")
	}

	uploaded, err := uploadAll(ctx, uc.uploader, uc.compensator, files)
	if err != nil {
		return nil, err
	}

	gallery := append(kept, uploaded...)
	ensureSinglePrimary(gallery)

	project.Title = input.Title
	project.Slug = slug
	project.Client = input.Client
	project.Category = input.Category
	project.Year = input.Year
	project.Summary = input.Summary
	project.Description = input.Description
	if input.Status != "" {
		project.Status = input.Status
	}
	project.Gallery = gallery
	project.UpdatedAt = time.Now()

	if err := uc.projectRepo.Update(ctx, project); err != nil {
		uc.compensator.Compensate(ctx, uploaded)
		return nil, err
	}

	// The record no longer references these; remote deletion is cleanup.
	uc.compensator.Release(ctx, stale)

	return project, nil
}

func (uc *ProjectUseCase) DeleteProject(ctx context.Context, id string) error {
	project, err := uc.projectRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.compensator.Release(ctx, project.Gallery)

	return nil
}
