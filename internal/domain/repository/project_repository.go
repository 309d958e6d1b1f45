package repository

import (
	"context"

	"arunika/internal/domain/entity"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Project, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Project, int64, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
}
