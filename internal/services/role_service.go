package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hospsupply/internal/common"
	"hospsupply/internal/models"
	"hospsupply/internal/repositories"
)

type RoleInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type RoleService interface {
	Create(ctx context.Context, input RoleInput) (*models.Role, error)
	Get(ctx context.Context, publicID uuid.UUID) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context, params common.PaginationParams) (common.PaginatedResponse[*models.Role], error)
	Update(ctx context.Context, publicID uuid.UUID, input RoleInput) (*models.Role, error)
	Delete(ctx context.Context, publicID uuid.UUID) error
}

type roleService struct {
	roles repositories.RoleRepository
}

func NewRoleService(roles repositories.RoleRepository) RoleService {
	return &roleService{roles: roles}
}

func (s *roleService) Create(ctx context.Context, input RoleInput) (*models.Role, error) {
	if input.Name == "" {
		return nil, common.Validationf("role name is required")
	}
	if _, err := s.roles.GetByName(ctx, input.Name); err == nil {
		return nil, common.Conflictf("role %q already exists", input.Name)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	role := &models.Role{Name: input.Name, Description: input.Description}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Get(ctx context.Context, publicID uuid.UUID) (*models.Role, error) {
	role, err := s.roles.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("role %s not found", publicID)
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) GetByName(ctx context.Context, name string) (*models.Role, error) {
	role, err := s.roles.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("role %q not found", name)
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context, params common.PaginationParams) (common.PaginatedResponse[*models.Role], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Role]

	roles, err := s.roles.List(ctx, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.roles.Count(ctx)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(roles, params.Page, params.Size, int(total)), nil
}

func (s *roleService) Update(ctx context.Context, publicID uuid.UUID, input RoleInput) (*models.Role, error) {
	role, err := s.Get(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" && input.Name != role.Name {
		if role.Name == models.DeveloperRole {
			return nil, common.Validationf("the %s role cannot be renamed", models.DeveloperRole)
		}
		role.Name = input.Name
	}
	if input.Description != nil {
		role.Description = input.Description
	}
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) Delete(ctx context.Context, publicID uuid.UUID) error {
	role, err := s.Get(ctx, publicID)
	if err != nil {
		return err
	}
	if role.Name == models.DeveloperRole {
		return common.Validationf("the %s role cannot be deleted", models.DeveloperRole)
	}
	deleted, err := s.roles.Delete(ctx, publicID)
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("role %s not found", publicID)
	}
	return nil
}
