package repository

import (
	"context"

	"arunika/internal/domain/entity"
)

type MilestoneRepository interface {
	Create(ctx context.Context, milestone *entity.Milestone) error
	GetByID(ctx context.Context, id string) (*entity.Milestone, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Milestone, int64, error)
	Update(ctx context.Context, milestone *entity.Milestone) error
	Delete(ctx context.Context, id string) error
}
