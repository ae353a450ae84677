package models

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is the multi-tenancy boundary. Most entities carry a hospital id
// and are filtered by it.
type Hospital struct {
	ID           int64     `json:"-" db:"id"`
	PublicID     uuid.UUID `json:"public_id" db:"public_id"`
	Name         string    `json:"name" db:"name"`
	Nationality  string    `json:"nationality" db:"nationality"`
	DocumentType string    `json:"document_type" db:"document_type"`
	Document     string    `json:"document" db:"document"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	City         string    `json:"city" db:"city"`
	ImageObject  *string   `json:"-" db:"image_object"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
