package entity

import (
	"time"
)

const (
	ConsultationStatusNew      = "new"
	ConsultationStatusReviewed = "reviewed"
	ConsultationStatusArchived = "archived"
)

// Consultation is a visitor-submitted request from the public site contact
// form. Created unauthenticated, reviewed by operators.
type Consultation struct {
	ID      string `json:"id" firestore:"id"`
	Name    string `json:"name" firestore:"name"`
	Email   string `json:"email" firestore:"email"`
	Phone   string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Company string `json:"company,omitempty" firestore:"company,omitempty"`
	Message string `json:"message" firestore:"message"`
	Status  string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
