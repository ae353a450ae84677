package models

import (
	"time"

	"github.com/google/uuid"
)

type JobTitle struct {
	ID             int64     `json:"-" db:"id"`
	PublicID       uuid.UUID `json:"public_id" db:"public_id"`
	Title          string    `json:"title" db:"title"`
	Department     string    `json:"department" db:"department"`
	SeniorityLevel string    `json:"seniority_level" db:"seniority_level"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
