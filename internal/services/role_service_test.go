package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"hospsupply/internal/common"
	"hospsupply/internal/models"
)

type RoleServiceSuite struct {
	suite.Suite
	roles   *mockRoleRepo
	service RoleService
}

func (s *RoleServiceSuite) SetupTest() {
	s.roles = new(mockRoleRepo)
	s.service = NewRoleService(s.roles)
}

func (s *RoleServiceSuite) TestCreate() {
	s.roles.On("GetByName", mock.Anything, "Comprador").Return(nil, pgx.ErrNoRows)
	s.roles.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Role) bool {
		return r.Name == "Comprador"
	})).Return(nil)

	role, err := s.service.Create(context.Background(), RoleInput{Name: "Comprador"})

	s.Require().NoError(err)
	s.Equal("Comprador", role.Name)
	s.roles.AssertExpectations(s.T())
}

func (s *RoleServiceSuite) TestCreateDuplicate() {
	existing := &models.Role{ID: 1, PublicID: uuid.New(), Name: "Comprador"}
	s.roles.On("GetByName", mock.Anything, "Comprador").Return(existing, nil)

	_, err := s.service.Create(context.Background(), RoleInput{Name: "Comprador"})

	s.ErrorIs(err, common.ErrConflict)
	s.roles.AssertNotCalled(s.T(), "Create")
}

func (s *RoleServiceSuite) TestCreateEmptyName() {
	_, err := s.service.Create(context.Background(), RoleInput{})

	s.ErrorIs(err, common.ErrValidation)
}

func (s *RoleServiceSuite) TestGetNotFound() {
	id := uuid.New()
	s.roles.On("GetByPublicID", mock.Anything, id).Return(nil, pgx.ErrNoRows)

	_, err := s.service.Get(context.Background(), id)

	s.ErrorIs(err, common.ErrNotFound)
}

func (s *RoleServiceSuite) TestListPaginates() {
	s.roles.On("List", mock.Anything, 0, 10).Return([]*models.Role{
		{ID: 1, PublicID: uuid.New(), Name: "Comprador"},
	}, nil)
	s.roles.On("Count", mock.Anything).Return(int64(11), nil)

	result, err := s.service.List(context.Background(), common.PaginationParams{Page: 1, Size: 10})

	s.Require().NoError(err)
	s.Equal(11, result.Total)
	s.Equal(2, result.Pages)
	s.True(result.HasNext)
}

func (s *RoleServiceSuite) TestDeleteMissing() {
	id := uuid.New()
	s.roles.On("GetByPublicID", mock.Anything, id).Return(nil, pgx.ErrNoRows)

	err := s.service.Delete(context.Background(), id)

	s.ErrorIs(err, common.ErrNotFound)
	s.roles.AssertNotCalled(s.T(), "Delete")
}

func (s *RoleServiceSuite) TestDeleteProtectedRole() {
	id := uuid.New()
	s.roles.On("GetByPublicID", mock.Anything, id).
		Return(&models.Role{ID: 1, PublicID: id, Name: models.DeveloperRole}, nil)

	err := s.service.Delete(context.Background(), id)

	s.ErrorIs(err, common.ErrValidation)
	s.roles.AssertNotCalled(s.T(), "Delete")
}

func TestRoleServiceSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceSuite))
}
