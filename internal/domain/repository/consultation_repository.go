package repository

import (
	"context"

	"arunika/internal/domain/entity"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	GetByID(ctx context.Context, id string) (*entity.Consultation, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Consultation, int64, error)
	Update(ctx context.Context, consultation *entity.Consultation) error
	Delete(ctx context.Context, id string) error
}
