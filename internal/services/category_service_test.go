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

type CategoryServiceSuite struct {
	suite.Suite
	categories *mockCategoryRepo
	hospitals  *mockHospitalRepo
	service    CategoryService
}

func (s *CategoryServiceSuite) SetupTest() {
	s.categories = new(mockCategoryRepo)
	s.hospitals = new(mockHospitalRepo)
	s.service = NewCategoryService(s.categories, s.hospitals)
}

func scopeFor(role string, hospitalID *int64) common.HospitalScope {
	return common.NewHospitalScope(&models.User{
		ID:         1,
		PublicID:   uuid.New(),
		RoleName:   role,
		HospitalID: hospitalID,
	})
}

func (s *CategoryServiceSuite) TestCreatePinnedToOwnHospital() {
	own := int64(3)
	scope := scopeFor("Comprador", &own)

	// Even when the caller names another hospital, the category lands in
	// their own.
	otherHospital := uuid.New()
	s.hospitals.On("GetByPublicID", mock.Anything, otherHospital).
		Return(&models.Hospital{ID: 9, PublicID: otherHospital}, nil)
	s.categories.On("ExistsByName", mock.Anything, "Medicamentos", own).Return(false, nil)
	s.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
		return c.HospitalID == own
	})).Return(nil)
	s.categories.On("GetByPublicID", mock.Anything, mock.Anything, (*int64)(nil)).
		Return(&models.Category{Name: "Medicamentos", HospitalID: own}, nil)

	category, err := s.service.Create(context.Background(), scope, CategoryInput{
		Name:       "Medicamentos",
		HospitalID: &otherHospital,
	})

	s.Require().NoError(err)
	s.Equal(own, category.HospitalID)
	s.categories.AssertExpectations(s.T())
}

func (s *CategoryServiceSuite) TestCreateDeveloperChoosesHospital() {
	own := int64(1)
	scope := scopeFor(models.DeveloperRole, &own)

	target := uuid.New()
	s.hospitals.On("GetByPublicID", mock.Anything, target).
		Return(&models.Hospital{ID: 9, PublicID: target}, nil)
	s.categories.On("ExistsByName", mock.Anything, "Medicamentos", int64(9)).Return(false, nil)
	s.categories.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Category) bool {
		return c.HospitalID == int64(9)
	})).Return(nil)
	s.categories.On("GetByPublicID", mock.Anything, mock.Anything, (*int64)(nil)).
		Return(&models.Category{Name: "Medicamentos", HospitalID: 9}, nil)

	category, err := s.service.Create(context.Background(), scope, CategoryInput{
		Name:       "Medicamentos",
		HospitalID: &target,
	})

	s.Require().NoError(err)
	s.Equal(int64(9), category.HospitalID)
}

func (s *CategoryServiceSuite) TestCreateDuplicateNameInHospital() {
	own := int64(3)
	scope := scopeFor("Comprador", &own)

	s.categories.On("ExistsByName", mock.Anything, "Medicamentos", own).Return(true, nil)

	_, err := s.service.Create(context.Background(), scope, CategoryInput{Name: "Medicamentos"})

	s.ErrorIs(err, common.ErrConflict)
	s.categories.AssertNotCalled(s.T(), "Create")
}

func (s *CategoryServiceSuite) TestListUsesScopeFilter() {
	own := int64(3)
	scope := scopeFor("Comprador", &own)

	s.categories.On("List", mock.Anything, &own, 0, 10).Return([]*models.Category{}, nil)
	s.categories.On("Count", mock.Anything, &own).Return(int64(0), nil)

	_, err := s.service.List(context.Background(), scope, common.PaginationParams{})

	s.Require().NoError(err)
	s.categories.AssertExpectations(s.T())
}

func (s *CategoryServiceSuite) TestListDeveloperUnfiltered() {
	own := int64(3)
	scope := scopeFor(models.DeveloperRole, &own)

	s.categories.On("List", mock.Anything, (*int64)(nil), 0, 10).Return([]*models.Category{}, nil)
	s.categories.On("Count", mock.Anything, (*int64)(nil)).Return(int64(0), nil)

	_, err := s.service.List(context.Background(), scope, common.PaginationParams{})

	s.Require().NoError(err)
	s.categories.AssertExpectations(s.T())
}

func (s *CategoryServiceSuite) TestGetOutsideScopeIsNotFound() {
	own := int64(3)
	scope := scopeFor("Comprador", &own)
	id := uuid.New()

	// The scoped query simply finds nothing for another hospital's row.
	s.categories.On("GetByPublicID", mock.Anything, id, &own).Return(nil, pgx.ErrNoRows)

	_, err := s.service.Get(context.Background(), scope, id)

	s.ErrorIs(err, common.ErrNotFound)
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}
