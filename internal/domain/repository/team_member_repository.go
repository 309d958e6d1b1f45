package repository

import (
	"context"

	"arunika/internal/domain/entity"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	GetByID(ctx context.Context, id string) (*entity.TeamMember, error)
	List(ctx context.Context, limit, offset int) ([]*entity.TeamMember, int64, error)
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id string) error
}
