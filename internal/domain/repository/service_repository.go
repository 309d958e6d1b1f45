package repository

import (
	"context"

	"arunika/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Service, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Service, int64, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id string) error
}
