package models

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID              int64     `json:"-" db:"id"`
	PublicID        uuid.UUID `json:"public_id" db:"public_id"`
	Name            string    `json:"name" db:"name"`
	SimilarNames    []string  `json:"similar_names,omitempty" db:"similar_names"`
	Description     *string   `json:"description,omitempty" db:"description"`
	FullDescription *string   `json:"full_description,omitempty" db:"full_description"`
	InternalCode    *string   `json:"internal_code,omitempty" db:"internal_code"`
	Presentation    *string   `json:"presentation,omitempty" db:"presentation"`
	Sample          *int      `json:"sample,omitempty" db:"sample"`
	HasCatalog      bool      `json:"has_catalog" db:"has_catalog"`
	IsActive        bool      `json:"is_active" db:"is_active"`

	SubcategoryID       int64     `json:"-" db:"subcategory_id"`
	SubcategoryPublicID uuid.UUID `json:"subcategory_id"`
	HospitalID          int64     `json:"-" db:"hospital_id"`
	HospitalPublicID    uuid.UUID `json:"hospital_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
