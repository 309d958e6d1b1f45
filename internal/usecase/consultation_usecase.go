package usecase

import (
	"context"
	"time"

	"arunika/internal/domain/entity"
	"arunika/internal/domain/repository"
	"arunika/pkg/errors"
)

type ConsultationUseCase struct {
	consultationRepo repository.ConsultationRepository
}

func NewConsultationUseCase(consultationRepo repository.ConsultationRepository) *ConsultationUseCase {
	return &ConsultationUseCase{
		consultationRepo: consultationRepo,
	}
}

type SubmitConsultationInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

// SubmitConsultation records a visitor request from the public site.
func (uc *ConsultationUseCase) SubmitConsultation(ctx context.Context, input SubmitConsultationInput) (*entity.Consultation, error) {
	now := time.Now()
	consultation := &entity.Consultation{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Company:   input.Company,
		Message:   input.Message,
		Status:    entity.ConsultationStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.consultationRepo.Create(ctx, consultation); err != nil {
		return nil, err
	}

	return consultation, nil
}

func (uc *ConsultationUseCase) GetConsultationByID(ctx context.Context, id string) (*entity.Consultation, error) {
	return uc.consultationRepo.GetByID(ctx, id)
}

func (uc *ConsultationUseCase) ListConsultations(ctx context.Context, status string, page, limit int) ([]*entity.Consultation, int64, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}

	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.consultationRepo.List(ctx, filter, limit, offset)
}

func (uc *ConsultationUseCase) UpdateConsultationStatus(ctx context.Context, id, status string) (*entity.Consultation, error) {
	switch status {
	case entity.ConsultationStatusNew, entity.ConsultationStatusReviewed, entity.ConsultationStatusArchived:
	default:
		return nil, errors.Validation("status must be one of: new, reviewed, archived")
	}

	consultation, err := uc.consultationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	consultation.Status = status
	consultation.UpdatedAt = time.Now()

	if err := uc.consultationRepo.Update(ctx, consultation); err != nil {
		return nil, err
	}

	return consultation, nil
}

func (uc *ConsultationUseCase) DeleteConsultation(ctx context.Context, id string) error {
	if _, err := uc.consultationRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.consultationRepo.Delete(ctx, id)
}
