package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hospsupply/internal/auth"
	"hospsupply/internal/common"
	"hospsupply/internal/models"
	"hospsupply/internal/repositories"
)

type UserInput struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	Phone      string     `json:"phone"`
	IsActive   *bool      `json:"is_active"`
	RoleID     *uuid.UUID `json:"role_id"`
	JobTitleID *uuid.UUID `json:"job_title_id"`
	HospitalID *uuid.UUID `json:"hospital_id"`
}

type UserService interface {
	Create(ctx context.Context, scope common.HospitalScope, input UserInput) (*models.User, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.User, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.User], error)
	ListByRole(ctx context.Context, scope common.HospitalScope, rolePublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.User], error)
	ListByJobTitle(ctx context.Context, scope common.HospitalScope, jobTitlePublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.User], error)
	ListByHospital(ctx context.Context, scope common.HospitalScope, hospitalPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.User], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input UserInput) (*models.User, error)
	Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error
}

type userService struct {
	users     repositories.UserRepository
	roles     repositories.RoleRepository
	jobTitles repositories.JobTitleRepository
	hospitals repositories.HospitalRepository
}

func NewUserService(
	users repositories.UserRepository,
	roles repositories.RoleRepository,
	jobTitles repositories.JobTitleRepository,
	hospitals repositories.HospitalRepository,
) UserService {
	return &userService{users: users, roles: roles, jobTitles: jobTitles, hospitals: hospitals}
}

func (s *userService) Create(ctx context.Context, scope common.HospitalScope, input UserInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, common.Validationf("name, email and password are required")
	}
	if input.RoleID == nil {
		return nil, common.Validationf("role_id is required")
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, common.Conflictf("email %s is already registered", input.Email)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	role, err := s.roles.GetByPublicID(ctx, *input.RoleID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("role %s not found", *input.RoleID)
		}
		return nil, err
	}

	var jobTitleID *int64
	if input.JobTitleID != nil {
		jt, err := s.jobTitles.GetByPublicID(ctx, *input.JobTitleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("job title %s not found", *input.JobTitleID)
			}
			return nil, err
		}
		jobTitleID = &jt.ID
	}

	var requestedHospital *int64
	if input.HospitalID != nil {
		h, err := s.hospitals.GetByPublicID(ctx, *input.HospitalID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("hospital %s not found", *input.HospitalID)
			}
			return nil, err
		}
		requestedHospital = &h.ID
	}
	hospitalID := scope.ResolveForCreate(requestedHospital)

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Phone:        input.Phone,
		IsActive:     isActive,
		RoleID:       role.ID,
		JobTitleID:   jobTitleID,
		HospitalID:   hospitalID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	// Reload to hydrate the joined public ids.
	return s.users.GetByPublicID(ctx, user.PublicID, nil)
}

func (s *userService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByPublicID(ctx, publicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("user %s not found", publicID)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.User], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.User]

	users, err := s.users.List(ctx, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.users.Count(ctx, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(users, params.Page, params.Size, int(total)), nil
}

func (s *userService) ListByRole(ctx context.Context, scope common.HospitalScope, rolePublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.User], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.User]

	role, err := s.roles.GetByPublicID(ctx, rolePublicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, common.NotFoundf("role %s not found", rolePublicID)
		}
		return empty, err
	}

	users, err := s.users.ListByRole(ctx, role.ID, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.users.CountByRole(ctx, role.ID, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(users, params.Page, params.Size, int(total)), nil
}

func (s *userService) ListByJobTitle(ctx context.Context, scope common.HospitalScope, jobTitlePublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.User], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.User]

	jt, err := s.jobTitles.GetByPublicID(ctx, jobTitlePublicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, common.NotFoundf("job title %s not found", jobTitlePublicID)
		}
		return empty, err
	}

	users, err := s.users.ListByJobTitle(ctx, jt.ID, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.users.CountByJobTitle(ctx, jt.ID, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(users, params.Page, params.Size, int(total)), nil
}

func (s *userService) ListByHospital(ctx context.Context, scope common.HospitalScope, hospitalPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.User], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.User]

	hospital, err := s.hospitals.GetByPublicID(ctx, hospitalPublicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, common.NotFoundf("hospital %s not found", hospitalPublicID)
		}
		return empty, err
	}
	if !scope.CanAccess(hospital.ID) {
		return empty, common.ErrForbidden
	}

	users, err := s.users.ListByHospital(ctx, hospital.ID, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.users.CountByHospital(ctx, hospital.ID)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(users, params.Page, params.Size, int(total)), nil
}

func (s *userService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input UserInput) (*models.User, error) {
	user, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" && input.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
			return nil, common.Conflictf("email %s is already registered", input.Email)
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		user.Email = input.Email
	}
	if input.Password != "" {
		hashed, err := auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.RoleID != nil {
		role, err := s.roles.GetByPublicID(ctx, *input.RoleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("role %s not found", *input.RoleID)
			}
			return nil, err
		}
		user.RoleID = role.ID
	}
	if input.JobTitleID != nil {
		jt, err := s.jobTitles.GetByPublicID(ctx, *input.JobTitleID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("job title %s not found", *input.JobTitleID)
			}
			return nil, err
		}
		user.JobTitleID = &jt.ID
	}
	if input.HospitalID != nil {
		// Only developers may move users across hospitals.
		if !scope.IsDeveloper() {
			return nil, common.ErrForbidden
		}
		hospital, err := s.hospitals.GetByPublicID(ctx, *input.HospitalID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("hospital %s not found", *input.HospitalID)
			}
			return nil, err
		}
		user.HospitalID = &hospital.ID
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.users.GetByPublicID(ctx, user.PublicID, nil)
}

func (s *userService) Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error {
	deleted, err := s.users.Delete(ctx, publicID, scope.FilterID())
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("user %s not found", publicID)
	}
	return nil
}
