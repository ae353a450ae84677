package models

import (
	"time"

	"github.com/google/uuid"
)

// PublicAcquisition is a bidding record ("licitação") inside a hospital.
// The referenced user is the auctioneer responsible for the process.
type PublicAcquisition struct {
	ID       int64     `json:"-" db:"id"`
	PublicID uuid.UUID `json:"public_id" db:"public_id"`
	Code     string    `json:"code" db:"code"`
	Title    string    `json:"title" db:"title"`
	Year     int       `json:"year" db:"year"`

	HospitalID       int64     `json:"-" db:"hospital_id"`
	HospitalPublicID uuid.UUID `json:"hospital_id"`
	UserID           int64     `json:"-" db:"user_id"`
	UserPublicID     uuid.UUID `json:"user_id"`
	UserName         string    `json:"user_name,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
