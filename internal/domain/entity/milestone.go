package entity

import (
	"time"
)

type Milestone struct {
	ID           string `json:"id" firestore:"id"`
	Title        string `json:"title" firestore:"title"`
	Description  string `json:"description,omitempty" firestore:"description,omitempty"`
	Year         int    `json:"year" firestore:"year"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
