package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names with special meaning to the authorization layer.
// DeveloperRole is the unrestricted role: it bypasses hospital filtering
// and every role guard.
const (
	DeveloperRole = "Desenvolvedor"
	AdminRole     = "Administrador"
	ManagerRole   = "Gerente"
)

type Role struct {
	ID          int64     `json:"-" db:"id"`
	PublicID    uuid.UUID `json:"public_id" db:"public_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
