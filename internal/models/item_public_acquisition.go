package models

import (
	"time"

	"github.com/google/uuid"
)

// ItemPublicAcquisition links an item to a public acquisition with the
// supplier bidding for it. IsHolder marks the winning supplier.
type ItemPublicAcquisition struct {
	ID       int64     `json:"-" db:"id"`
	PublicID uuid.UUID `json:"public_id" db:"public_id"`
	IsHolder bool      `json:"is_holder" db:"is_holder"`

	ItemID                    int64     `json:"-" db:"item_id"`
	ItemPublicID              uuid.UUID `json:"item_id"`
	ItemName                  string    `json:"item_name,omitempty"`
	PublicAcquisitionID       int64     `json:"-" db:"public_acquisition_id"`
	PublicAcquisitionPublicID uuid.UUID `json:"public_acquisition_id"`
	SupplierID                int64     `json:"-" db:"supplier_id"`
	SupplierPublicID          uuid.UUID `json:"supplier_id"`
	SupplierName              string    `json:"supplier_name,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
