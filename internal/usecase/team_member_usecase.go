package usecase

import (
	"context"
	"time"

	"arunika/internal/domain/entity"
	"arunika/internal/domain/repository"
	"arunika/internal/upload"
	"arunika/pkg/errors"
)

type TeamMemberUseCase struct {
	memberRepo  repository.TeamMemberRepository
	uploader    *upload.Uploader
	compensator *upload.Compensator
}

func NewTeamMemberUseCase(memberRepo repository.TeamMemberRepository, uploader *upload.Uploader, compensator *upload.Compensator) *TeamMemberUseCase {
	return &TeamMemberUseCase{
		memberRepo:  memberRepo,
		uploader:    uploader,
		compensator: compensator,
	}
}

type TeamMemberInput struct {
	Name         string
	Position     string
	Bio          string
	LinkedinURL  string
	DisplayOrder int
}

// CreateTeamMember requires exactly one portrait file; a member record is
// never persisted without one.
func (uc *TeamMemberUseCase) CreateTeamMember(ctx context.Context, input TeamMemberInput, files []upload.Request) (*entity.TeamMember, error) {
	if len(files) == 0 {
		return nil, errors.Validation("image is required")
	}

	uploaded, err := uploadAll(ctx, uc.uploader, uc.compensator, files)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	member := &entity.TeamMember{
		Name:         input.Name,
		Position:     input.Position,
		Bio:          input.Bio,
		Image:        uploaded[0],
		LinkedinURL:  input.LinkedinURL,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		uc.compensator.Compensate(ctx, uploaded)
		return nil, err
	}

	return member, nil
}

func (uc *TeamMemberUseCase) GetTeamMemberByID(ctx context.Context, id string) (*entity.TeamMember, error) {
	return uc.memberRepo.GetByID(ctx, id)
}

func (uc *TeamMemberUseCase) ListTeamMembers(ctx context.Context, page, limit int) ([]*entity.TeamMember, int64, error) {
	offset := (page - 1) * limit
	if offset < 0 {
		offset = 0
	}

	return uc.memberRepo.List(ctx, limit, offset)
}

func (uc *TeamMemberUseCase) UpdateTeamMember(ctx context.Context, id string, input TeamMemberInput, files []upload.Request) (*entity.TeamMember, error) {
	member, err := uc.memberRepo.GetByID(ctx, id)
	if err != nil {
		discardPreloaded(ctx, uc.compensator, files)
		return nil, err
	}

	uploaded, err := uploadAll(ctx, uc.uploader, uc.compensator, files)
	if err != nil {
		return nil, err
	}

	var stale []entity.Asset
	if len(uploaded) > 0 {
		stale = append(stale, member.Image)
		member.Image = uploaded[0]
	}

	member.Name = input.Name
	member.Position = input.Position
	member.Bio = input.Bio
	member.LinkedinURL = input.LinkedinURL
	member.DisplayOrder = input.DisplayOrder
	member.UpdatedAt = time.Now()

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		uc.compensator.Compensate(ctx, uploaded)
		return nil, err
	}

	// Old portrait goes away only after the record stopped referencing it.
	uc.compensator.Release(ctx, stale)

	return member, nil
}

func (uc *TeamMemberUseCase) DeleteTeamMember(ctx context.Context, id string) error {
	member, err := uc.memberRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.memberRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.compensator.Release(ctx, []entity.Asset{member.Image})

	return nil
}
