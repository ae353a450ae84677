package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          int64     `json:"-" db:"id"`
	PublicID    uuid.UUID `json:"public_id" db:"public_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`

	HospitalID       int64     `json:"-" db:"hospital_id"`
	HospitalPublicID uuid.UUID `json:"hospital_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
