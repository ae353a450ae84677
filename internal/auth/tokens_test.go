package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", 30*time.Minute, 30*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.New()

	token, err := m.CreateAccessToken("ana@example.com", userID)
	require.NoError(t, err)

	claims, err := m.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Subject)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Empty(t, claims.Type)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	m := newTestManager()

	refresh, err := m.CreateRefreshToken("ana@example.com", uuid.New())
	require.NoError(t, err)

	claims, err := m.VerifyRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.Type)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	m := newTestManager()

	access, err := m.CreateAccessToken("ana@example.com", uuid.New())
	require.NoError(t, err)

	_, err = m.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongType)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute, -time.Minute)

	token, err := m.CreateAccessToken("ana@example.com", uuid.New())
	require.NoError(t, err)

	_, err = m.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := newTestManager().CreateAccessToken("ana@example.com", uuid.New())
	require.NoError(t, err)

	other := NewTokenManager("another-secret", 30*time.Minute, time.Hour)
	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenPair(t *testing.T) {
	m := newTestManager()

	access, refresh, err := m.CreateTokenPair("ana@example.com", uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, access, refresh)

	_, err = m.VerifyToken(access)
	assert.NoError(t, err)
	_, err = m.VerifyRefreshToken(refresh)
	assert.NoError(t, err)
}
