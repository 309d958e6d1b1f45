package entity

import (
	"time"
)

// TeamMember always carries exactly one portrait; records are never
// persisted without it.
type TeamMember struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	Position     string `json:"position" firestore:"position"`
	Bio          string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Image        Asset  `json:"image" firestore:"image"`
	LinkedinURL  string `json:"linkedin_url,omitempty" firestore:"linkedinUrl,omitempty"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
