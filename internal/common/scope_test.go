package common

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"hospsupply/internal/models"
)

func scopedUser(role string, hospitalID *int64) *models.User {
	return &models.User{
		ID:         7,
		PublicID:   uuid.New(),
		RoleName:   role,
		HospitalID: hospitalID,
	}
}

func TestDeveloperScopeIsUnrestricted(t *testing.T) {
	hospital := int64(3)
	scope := NewHospitalScope(scopedUser(models.DeveloperRole, &hospital))

	assert.True(t, scope.IsDeveloper())
	assert.Nil(t, scope.FilterID())
	assert.True(t, scope.CanAccess(3))
	assert.True(t, scope.CanAccess(99))
}

func TestRegularScopeIsPinnedToHospital(t *testing.T) {
	hospital := int64(3)
	scope := NewHospitalScope(scopedUser("Comprador", &hospital))

	assert.False(t, scope.IsDeveloper())
	if assert.NotNil(t, scope.FilterID()) {
		assert.Equal(t, int64(3), *scope.FilterID())
	}
	assert.True(t, scope.CanAccess(3))
	assert.False(t, scope.CanAccess(4))
}

func TestScopeWithoutHospitalAccessesNothing(t *testing.T) {
	scope := NewHospitalScope(scopedUser("Comprador", nil))

	assert.False(t, scope.CanAccess(1))
	assert.Nil(t, scope.RawHospitalID())
}

func TestResolveForCreate(t *testing.T) {
	own := int64(3)
	requested := int64(8)

	dev := NewHospitalScope(scopedUser(models.DeveloperRole, &own))
	assert.Equal(t, &requested, dev.ResolveForCreate(&requested))
	assert.Nil(t, dev.ResolveForCreate(nil))

	regular := NewHospitalScope(scopedUser("Comprador", &own))
	// Regular users are forced onto their own hospital no matter what they ask for.
	assert.Equal(t, &own, regular.ResolveForCreate(&requested))
	assert.Equal(t, &own, regular.ResolveForCreate(nil))
}
