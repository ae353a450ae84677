package models

import (
	"time"

	"github.com/google/uuid"
)

type SubCategory struct {
	ID          int64     `json:"-" db:"id"`
	PublicID    uuid.UUID `json:"public_id" db:"public_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`

	CategoryID       int64     `json:"-" db:"category_id"`
	CategoryPublicID uuid.UUID `json:"category_id"`
	HospitalID       int64     `json:"-" db:"hospital_id"`
	HospitalPublicID uuid.UUID `json:"hospital_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
