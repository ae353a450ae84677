package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrWrongType    = errors.New("wrong token type")
)

// Claims carried by every token. Subject is the user email; UserID is the
// user's public UUID. Refresh tokens additionally carry Type="refresh".
type Claims struct {
	UserID string `json:"user_id"`
	Type   string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 access/refresh token pairs.
type TokenManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenManager(secret string, accessExpiry, refreshExpiry time.Duration) *TokenManager {
	return &TokenManager{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// CreateAccessToken issues a short-lived access token for the user.
func (m *TokenManager) CreateAccessToken(email string, userID uuid.UUID) (string, error) {
	return m.sign(email, userID, "", m.accessExpiry)
}

// CreateRefreshToken issues a long-lived refresh token for the user.
func (m *TokenManager) CreateRefreshToken(email string, userID uuid.UUID) (string, error) {
	return m.sign(email, userID, "refresh", m.refreshExpiry)
}

// CreateTokenPair issues an access and a refresh token in one call.
func (m *TokenManager) CreateTokenPair(email string, userID uuid.UUID) (access, refresh string, err error) {
	access, err = m.CreateAccessToken(email, userID)
	if err != nil {
		return "", "", err
	}
	refresh, err = m.CreateRefreshToken(email, userID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (m *TokenManager) sign(email string, userID uuid.UUID, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken parses and validates a token of any type.
func (m *TokenManager) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefreshToken validates a token and requires the refresh type claim.
func (m *TokenManager) VerifyRefreshToken(tokenString string) (*Claims, error) {
	claims, err := m.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != "refresh" {
		return nil, ErrWrongType
	}
	return claims, nil
}
