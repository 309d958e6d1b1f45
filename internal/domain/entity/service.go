package entity

import (
	"time"
)

// Service has two independent asset slots. Either may be empty; replacing
// or removing one never touches the other.
type Service struct {
	ID           string `json:"id" firestore:"id"`
	Title        string `json:"title" firestore:"title"`
	Slug         string `json:"slug" firestore:"slug"`
	Summary      string `json:"summary" firestore:"summary"`
	Description  string `json:"description" firestore:"description"`
	Icon         *Asset `json:"icon,omitempty" firestore:"icon,omitempty"`
	Image        *Asset `json:"image,omitempty" firestore:"image,omitempty"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
	Status       string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
