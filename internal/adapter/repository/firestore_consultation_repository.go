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

type firestoreConsultationRepository struct {
	client *firestore.Client
}

func NewFirestoreConsultationRepository(client *firestore.Client) repository.ConsultationRepository {
	return &firestoreConsultationRepository{
		client: client,
	}
}

func (r *firestoreConsultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	if consultation.ID == "" {
		doc := r.client.Collection("consultations").NewDoc()
		consultation.ID = doc.ID
	}

	now := time.Now()
	if consultation.CreatedAt.IsZero() {
		consultation.CreatedAt = now
	}
	consultation.UpdatedAt = now

	_, err := r.client.Collection("consultations").Doc(consultation.ID).Set(ctx, consultation)
	if err != nil {
		return errors.Internal("Failed to create consultation", err)
	}

	return nil
}

func (r *firestoreConsultationRepository) GetByID(ctx context.Context, id string) (*entity.Consultation, error) {
	doc, err := r.client.Collection("consultations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Consultation", err)
		}
		return nil, errors.Internal("Failed to get consultation", err)
	}

	var consultation entity.Consultation
	if err := doc.DataTo(&consultation); err != nil {
		return nil, errors.Internal("Failed to parse consultation data", err)
	}

	return &consultation, nil
}

func (r *firestoreConsultationRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Consultation, int64, error) {
	query := r.client.Collection("consultations").OrderBy("createdAt", firestore.Desc)

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count consultations", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var consultations []*entity.Consultation

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate consultations", err)
		}

		var consultation entity.Consultation
		if err := doc.DataTo(&consultation); err != nil {
			return nil, 0, errors.Internal("Failed to parse consultation data", err)
		}
		consultations = append(consultations, &consultation)
	}

	return consultations, total, nil
}

func (r *firestoreConsultationRepository) Update(ctx context.Context, consultation *entity.Consultation) error {
	consultation.UpdatedAt = time.Now()

	_, err := r.client.Collection("consultations").Doc(consultation.ID).Set(ctx, consultation)
	if err != nil {
		return errors.Internal("Failed to update consultation", err)
	}

	return nil
}

func (r *firestoreConsultationRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("consultations").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete consultation", err)
	}

	return nil
}
