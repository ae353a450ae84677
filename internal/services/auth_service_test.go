package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"hospsupply/internal/auth"
	"hospsupply/internal/models"
)

type AuthServiceSuite struct {
	suite.Suite
	users   *mockUserRepo
	tokens  *auth.TokenManager
	service AuthService
	user    *models.User
}

func (s *AuthServiceSuite) SetupTest() {
	s.users = new(mockUserRepo)
	s.tokens = auth.NewTokenManager("test-secret", 30*time.Minute, 30*24*time.Hour)
	s.service = NewAuthService(s.users, s.tokens, zap.NewNop())

	hashed, err := auth.HashPassword("correct-horse")
	s.Require().NoError(err)
	s.user = &models.User{
		ID:           1,
		PublicID:     uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: hashed,
		IsActive:     true,
		RoleName:     "Comprador",
	}
}

func (s *AuthServiceSuite) TestLoginSuccess() {
	s.users.On("GetByEmail", mock.Anything, "ana@example.com").Return(s.user, nil)

	tokens, err := s.service.Login(context.Background(), "ana@example.com", "correct-horse")

	s.Require().NoError(err)
	s.Equal("bearer", tokens.TokenType)
	s.NotEmpty(tokens.AccessToken)
	s.NotEmpty(tokens.RefreshToken)

	claims, err := s.tokens.VerifyToken(tokens.AccessToken)
	s.Require().NoError(err)
	s.Equal("ana@example.com", claims.Subject)
	s.Equal(s.user.PublicID.String(), claims.UserID)
}

func (s *AuthServiceSuite) TestLoginWrongPassword() {
	s.users.On("GetByEmail", mock.Anything, "ana@example.com").Return(s.user, nil)

	_, err := s.service.Login(context.Background(), "ana@example.com", "wrong")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestLoginUnknownEmail() {
	s.users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, pgx.ErrNoRows)

	_, err := s.service.Login(context.Background(), "ghost@example.com", "whatever")

	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceSuite) TestLoginInactiveUser() {
	s.user.IsActive = false
	s.users.On("GetByEmail", mock.Anything, "ana@example.com").Return(s.user, nil)

	_, err := s.service.Login(context.Background(), "ana@example.com", "correct-horse")

	s.ErrorIs(err, ErrInactiveUser)
}

func (s *AuthServiceSuite) TestVerify() {
	access, err := s.tokens.CreateAccessToken(s.user.Email, s.user.PublicID)
	s.Require().NoError(err)

	info, err := s.service.Verify(access)

	s.Require().NoError(err)
	s.True(info.Valid)
	s.Equal(s.user.Email, info.UserEmail)
	s.Equal(s.user.PublicID.String(), info.UserID)
	s.NotEmpty(info.ExpiresAt)
}

func (s *AuthServiceSuite) TestRefreshIssuesNewAccessToken() {
	refresh, err := s.tokens.CreateRefreshToken(s.user.Email, s.user.PublicID)
	s.Require().NoError(err)
	s.users.On("GetByEmail", mock.Anything, s.user.Email).Return(s.user, nil)

	tokens, err := s.service.Refresh(context.Background(), refresh)

	s.Require().NoError(err)
	s.NotEmpty(tokens.AccessToken)
	s.Empty(tokens.RefreshToken)
}

func (s *AuthServiceSuite) TestRefreshRejectsAccessToken() {
	access, err := s.tokens.CreateAccessToken(s.user.Email, s.user.PublicID)
	s.Require().NoError(err)

	_, err = s.service.Refresh(context.Background(), access)

	s.ErrorIs(err, auth.ErrWrongType)
}

func (s *AuthServiceSuite) TestRefreshRejectsDeactivatedUser() {
	refresh, err := s.tokens.CreateRefreshToken(s.user.Email, s.user.PublicID)
	s.Require().NoError(err)
	s.user.IsActive = false
	s.users.On("GetByEmail", mock.Anything, s.user.Email).Return(s.user, nil)

	_, err = s.service.Refresh(context.Background(), refresh)

	s.ErrorIs(err, ErrInactiveUser)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}
