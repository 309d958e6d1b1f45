package entity

import (
	"time"
)

type Project struct {
	ID          string  `json:"id" firestore:"id"`
	Title       string  `json:"title" firestore:"title"`
	Slug        string  `json:"slug" firestore:"slug"`
	Client      string  `json:"client,omitempty" firestore:"client,omitempty"`
	Category    string  `json:"category" firestore:"category"`
	Year        int     `json:"year,omitempty" firestore:"year,omitempty"`
	Summary     string  `json:"summary" firestore:"summary"`
	Description string  `json:"description" firestore:"description"`
	Gallery     []Asset `json:"gallery" firestore:"gallery"`
	Status      string  `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// PrimaryImage returns the gallery element flagged as primary, or nil for
// an empty gallery.
func (p *Project) PrimaryImage() *Asset {
	for i := range p.Gallery {
		if p.Gallery[i].IsPrimary {
			return &p.Gallery[i]
		}
	}
	return nil
}
