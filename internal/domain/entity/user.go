package entity

import (
	"time"
)

type User struct {
	ID    string `json:"id" firestore:"id"`
	Email string `json:"email" firestore:"email"`
	Name  string `json:"name" firestore:"name"`
	Role  string `json:"role" firestore:"role"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
