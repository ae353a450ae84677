package models

import (
	"time"

	"github.com/google/uuid"
)

// CatalogEntry is global admin reference data: it is not hospital-scoped.
type CatalogEntry struct {
	ID              int64     `json:"-" db:"id"`
	PublicID        uuid.UUID `json:"public_id" db:"public_id"`
	Name            string    `json:"name" db:"name"`
	Description     *string   `json:"description,omitempty" db:"description"`
	FullDescription *string   `json:"full_description,omitempty" db:"full_description"`
	InternalCode    *string   `json:"internal_code,omitempty" db:"internal_code"`
	Presentation    *string   `json:"presentation,omitempty" db:"presentation"`
	Sample          *int      `json:"sample,omitempty" db:"sample"`
	IsActive        bool      `json:"is_active" db:"is_active"`

	CategoryID          int64      `json:"-" db:"category_id"`
	CategoryPublicID    uuid.UUID  `json:"category_id"`
	SubcategoryID       *int64     `json:"-" db:"subcategory_id"`
	SubcategoryPublicID *uuid.UUID `json:"subcategory_id,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
