package common

import (
	"hospsupply/internal/models"
)

// HospitalScope is the request-scoped authorization filter derived from the
// authenticated user. The developer role sees every hospital; every other
// role is pinned to its own.
type HospitalScope struct {
	UserID       int64
	UserPublicID string
	Role         string
	hospitalID   *int64
}

// NewHospitalScope builds the scope for an authenticated user.
func NewHospitalScope(user *models.User) HospitalScope {
	return HospitalScope{
		UserID:       user.ID,
		UserPublicID: user.PublicID.String(),
		Role:         user.RoleName,
		hospitalID:   user.HospitalID,
	}
}

// IsDeveloper reports whether the scope belongs to the unrestricted role.
func (s HospitalScope) IsDeveloper() bool {
	return s.Role == models.DeveloperRole
}

// FilterID returns the hospital id to apply on read queries: nil for the
// developer role (no filter), the user's hospital otherwise.
//
// Use only for filtering. For creation use ResolveForCreate, which respects
// the hospital a developer asks for.
func (s HospitalScope) FilterID() *int64 {
	if s.IsDeveloper() {
		return nil
	}
	return s.hospitalID
}

// RawHospitalID returns the user's actual hospital id regardless of role.
func (s HospitalScope) RawHospitalID() *int64 {
	return s.hospitalID
}

// CanAccess reports whether the scope may touch resources of the given
// hospital.
func (s HospitalScope) CanAccess(hospitalID int64) bool {
	if s.IsDeveloper() {
		return true
	}
	return s.hospitalID != nil && *s.hospitalID == hospitalID
}

// ResolveForCreate decides which hospital a new resource belongs to.
// Developers may create for any hospital; everyone else is forced onto
// their own.
func (s HospitalScope) ResolveForCreate(requested *int64) *int64 {
	if s.IsDeveloper() {
		return requested
	}
	return s.hospitalID
}
