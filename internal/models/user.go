package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int64     `json:"-" db:"id"`
	PublicID     uuid.UUID `json:"public_id" db:"public_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password"` // never serialized
	Phone        string    `json:"phone" db:"phone"`
	IsActive     bool      `json:"is_active" db:"is_active"`

	RoleID     int64  `json:"-" db:"role_id"`
	JobTitleID *int64 `json:"-" db:"job_title_id"`
	HospitalID *int64 `json:"-" db:"hospital_id"`

	// Hydrated by the repository joins; public-facing references.
	RoleName         string     `json:"role_name,omitempty"`
	RolePublicID     uuid.UUID  `json:"role_id"`
	JobTitlePublicID *uuid.UUID `json:"job_title_id,omitempty"`
	HospitalPublicID *uuid.UUID `json:"hospital_id,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
