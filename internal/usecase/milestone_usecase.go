package usecase

import (
	"context"
	"time"

	"arunika/internal/domain/entity"
	"arunika/internal/domain/repository"
)

type MilestoneUseCase struct {
	milestoneRepo repository.MilestoneRepository
}

func NewMilestoneUseCase(milestoneRepo repository.MilestoneRepository) *MilestoneUseCase {
	return &MilestoneUseCase{
		milestoneRepo: milestoneRepo,
	}
}

type MilestoneInput struct {
	Title        string
	Description  string
	Year         int
	DisplayOrder int
}

func (uc *MilestoneUseCase) CreateMilestone(ctx context.Context, input MilestoneInput) (*entity.Milestone, error) {
	now := time.Now()
	milestone := &entity.Milestone{
		Title:        input.Title,
		Description:  input.Description,
		Year:         input.Year,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.milestoneRepo.Create(ctx, milestone); err != nil {
		return nil, err
	}

	return milestone, nil
}

func (uc *MilestoneUseCase) GetMilestoneByID(ctx context.Context, id string) (*entity.Milestone, error) {
	return uc.milestoneRepo.GetByID(ctx, id)
}

func (uc *MilestoneUseCase) ListMilestones(ctx context.Context, page, limit int) ([]*entity.Milestone, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.milestoneRepo.List(ctx, limit, offset)
}

func (uc *MilestoneUseCase) UpdateMilestone(ctx context.Context, id string, input MilestoneInput) (*entity.Milestone, error) {
	milestone, err := uc.milestoneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	milestone.Title = input.Title
	milestone.Description = input.Description
	milestone.Year = input.Year
	milestone.DisplayOrder = input.DisplayOrder
	milestone.UpdatedAt = time.Now()

	if err := uc.milestoneRepo.Update(ctx, milestone); err != nil {
		return nil, err
	}

	return milestone, nil
}

func (uc *MilestoneUseCase) DeleteMilestone(ctx context.Context, id string) error {
	if _, err := uc.milestoneRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.milestoneRepo.Delete(ctx, id)
}
