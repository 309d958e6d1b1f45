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

type firestoreTeamMemberRepository struct {
	client *firestore.Client
}

func NewFirestoreTeamMemberRepository(client *firestore.Client) repository.TeamMemberRepository {
	return &firestoreTeamMemberRepository{
		client: client,
	}
}

func (r *firestoreTeamMemberRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	if member.ID == "" {
		doc := r.client.Collection("team_members").NewDoc()
		member.ID = doc.ID
	}

	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	_, err := r.client.Collection("team_members").Doc(member.ID).Set(ctx, member)
	if err != nil {
		return errors.Internal("Failed to create team member", err)
	}

	return nil
}

func (r *firestoreTeamMemberRepository) GetByID(ctx context.Context, id string) (*entity.TeamMember, error) {
	doc, err := r.client.Collection("team_members").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Team member", err)
		}
		return nil, errors.Internal("Failed to get team member", err)
	}

	var member entity.TeamMember
	if err := doc.DataTo(&member); err != nil {
		return nil, errors.Internal("Failed to parse team member data", err)
	}

	return &member, nil
}

func (r *firestoreTeamMemberRepository) List(ctx context.Context, limit, offset int) ([]*entity.TeamMember, int64, error) {
	query := r.client.Collection("team_members").OrderBy("displayOrder", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count team members", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var members []*entity.TeamMember

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate team members", err)
		}

		var member entity.TeamMember
		if err := doc.DataTo(&member); err != nil {
			return nil, 0, errors.Internal("Failed to parse team member data", err)
		}
		members = append(members, &member)
	}

	return members, total, nil
}

func (r *firestoreTeamMemberRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	member.UpdatedAt = time.Now()

	_, err := r.client.Collection("team_members").Doc(member.ID).Set(ctx, member)
	if err != nil {
		return errors.Internal("Failed to update team member", err)
	}

	return nil
}

func (r *firestoreTeamMemberRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("team_members").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete team member", err)
	}

	return nil
}
