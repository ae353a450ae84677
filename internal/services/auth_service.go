package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hospsupply/internal/auth"
	"hospsupply/internal/models"
	"hospsupply/internal/repositories"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// login responses never reveal which one failed.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// ErrInactiveUser rejects authentication for deactivated accounts.
var ErrInactiveUser = errors.New("inactive user")

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	Verify(tokenString string) (*models.TokenInfo, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error)
}

type authService struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
	logger *zap.Logger
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) AuthService {
	return &authService{users: users, tokens: tokens, logger: logger}
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.logger.Info("failed login attempt", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	access, refresh, err := s.tokens.CreateTokenPair(user.Email, user.PublicID)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) Verify(tokenString string) (*models.TokenInfo, error) {
	claims, err := s.tokens.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	info := &models.TokenInfo{
		Valid:     true,
		UserEmail: claims.Subject,
		UserID:    claims.UserID,
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Format(time.RFC3339)
	}
	return info, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*models.TokenResponse, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// Re-check the account on every refresh: a deactivated user must not be
	// able to mint new access tokens.
	user, err := s.users.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	access, err := s.tokens.CreateAccessToken(user.Email, user.PublicID)
	if err != nil {
		return nil, err
	}

	return &models.TokenResponse{
		AccessToken: access,
		TokenType:   "bearer",
	}, nil
}
