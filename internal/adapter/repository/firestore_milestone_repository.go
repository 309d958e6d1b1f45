package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"arunika/internal/domain/entity"
	"arunika/internal/domain/repository"
	"arunika/pkg/errors"
)

type firestoreMilestoneRepository struct {
	client *firestore.Client
}

func NewFirestoreMilestoneRepository(client *firestore.Client) repository.MilestoneRepository {
	return &firestoreMilestoneRepository{
		client: client,
	}
}

func (r *firestoreMilestoneRepository) Create(ctx context.Context, milestone *entity.Milestone) error {
	if milestone.ID == "" {
		doc := r.client.Collection("milestones").NewDoc()
		milestone.ID = doc.ID
	}

	now := time.Now()
	if milestone.CreatedAt.IsZero() {
		milestone.CreatedAt = now
	}
	milestone.UpdatedAt = now

	_, err := r.client.Collection("milestones").Doc(milestone.ID).Set(ctx, milestone)
	if err != nil {
		return errors.Internal("Failed to create milestone", err)
	}

	return nil
}

func (r *firestoreMilestoneRepository) GetByID(ctx context.Context, id string) (*entity.Milestone, error) {
	doc, err := r.client.Collection("milestones").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Milestone", err)
		}
		return nil, errors.Internal("Failed to get milestone", err)
	}

	var milestone entity.Milestone
	if err := doc.DataTo(&milestone); err != nil {
		return nil, errors.Internal("Failed to parse milestone data", err)
	}

	return &milestone, nil
}

func (r *firestoreMilestoneRepository) List(ctx context.Context, limit, offset int) ([]*entity.Milestone, int64, error) {
	query := r.client.Collection("milestones").OrderBy("year", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count milestones", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var milestones []*entity.Milestone

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate milestones", err)
		}

		var milestone entity.Milestone
		if err := doc.DataTo(&milestone); err != nil {
			return nil, 0, errors.Internal("Failed to parse milestone data", err)
		}
		milestones = append(milestones, &milestone)
	}

	return milestones, total, nil
}

func (r *firestoreMilestoneRepository) Update(ctx context.Context, milestone *entity.Milestone) error {
	milestone.UpdatedAt = time.Now()

	_, err := r.client.Collection("milestones").Doc(milestone.ID).Set(ctx, milestone)
	if err != nil {
		return errors.Internal("Failed to update milestone", err)
	}

	return nil
}

func (r *firestoreMilestoneRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("milestones").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete milestone", err)
	}

	return nil
}
