package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hospsupply/internal/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.User, error) {
	args := m.Called(ctx, publicID, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.User, error) {
	args := m.Called(ctx, hospitalID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	args := m.Called(ctx, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) ListByRole(ctx context.Context, roleID int64, hospitalID *int64, offset, limit int) ([]*models.User, error) {
	args := m.Called(ctx, roleID, hospitalID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserRepo) CountByRole(ctx context.Context, roleID int64, hospitalID *int64) (int64, error) {
	args := m.Called(ctx, roleID, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) ListByJobTitle(ctx context.Context, jobTitleID int64, hospitalID *int64, offset, limit int) ([]*models.User, error) {
	args := m.Called(ctx, jobTitleID, hospitalID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserRepo) CountByJobTitle(ctx context.Context, jobTitleID int64, hospitalID *int64) (int64, error) {
	args := m.Called(ctx, jobTitleID, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) ListByHospital(ctx context.Context, hospitalID int64, offset, limit int) ([]*models.User, error) {
	args := m.Called(ctx, hospitalID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *mockUserRepo) CountByHospital(ctx context.Context, hospitalID int64) (int64, error) {
	args := m.Called(ctx, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	args := m.Called(ctx, publicID, hospitalID)
	return args.Bool(0), args.Error(1)
}

type mockRoleRepo struct {
	mock.Mock
}

func (m *mockRoleRepo) Create(ctx context.Context, role *models.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *mockRoleRepo) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Role, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *mockRoleRepo) GetByName(ctx context.Context, name string) (*models.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Role), args.Error(1)
}

func (m *mockRoleRepo) List(ctx context.Context, offset, limit int) ([]*models.Role, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Role), args.Error(1)
}

func (m *mockRoleRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRoleRepo) Update(ctx context.Context, role *models.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *mockRoleRepo) Delete(ctx context.Context, publicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, publicID)
	return args.Bool(0), args.Error(1)
}

type mockHospitalRepo struct {
	mock.Mock
}

func (m *mockHospitalRepo) Create(ctx context.Context, hospital *models.Hospital) error {
	return m.Called(ctx, hospital).Error(0)
}

func (m *mockHospitalRepo) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Hospital, error) {
	args := m.Called(ctx, publicID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) GetByID(ctx context.Context, id int64) (*models.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) GetByName(ctx context.Context, name string) (*models.Hospital, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) List(ctx context.Context, offset, limit int) ([]*models.Hospital, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHospitalRepo) ListByCity(ctx context.Context, city string, offset, limit int) ([]*models.Hospital, error) {
	args := m.Called(ctx, city, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) CountByCity(ctx context.Context, city string) (int64, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHospitalRepo) ListByNationality(ctx context.Context, nationality string, offset, limit int) ([]*models.Hospital, error) {
	args := m.Called(ctx, nationality, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Hospital), args.Error(1)
}

func (m *mockHospitalRepo) CountByNationality(ctx context.Context, nationality string) (int64, error) {
	args := m.Called(ctx, nationality)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockHospitalRepo) Update(ctx context.Context, hospital *models.Hospital) error {
	return m.Called(ctx, hospital).Error(0)
}

func (m *mockHospitalRepo) SetImageObject(ctx context.Context, publicID uuid.UUID, objectName string) error {
	return m.Called(ctx, publicID, objectName).Error(0)
}

func (m *mockHospitalRepo) Delete(ctx context.Context, publicID uuid.UUID) (bool, error) {
	args := m.Called(ctx, publicID)
	return args.Bool(0), args.Error(1)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.Category, error) {
	args := m.Called(ctx, publicID, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string, hospitalID *int64) (*models.Category, error) {
	args := m.Called(ctx, name, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.Category, error) {
	args := m.Called(ctx, hospitalID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Category), args.Error(1)
}

func (m *mockCategoryRepo) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	args := m.Called(ctx, hospitalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepo) ExistsByName(ctx context.Context, name string, hospitalID int64) (bool, error) {
	args := m.Called(ctx, name, hospitalID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	args := m.Called(ctx, publicID, hospitalID)
	return args.Bool(0), args.Error(1)
}
