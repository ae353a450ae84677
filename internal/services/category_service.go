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

type CategoryInput struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	HospitalID  *uuid.UUID `json:"hospital_id"`
}

type CategoryService interface {
	Create(ctx context.Context, scope common.HospitalScope, input CategoryInput) (*models.Category, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, scope common.HospitalScope, name string) (*models.Category, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Category], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error
}

type categoryService struct {
	categories repositories.CategoryRepository
	hospitals  repositories.HospitalRepository
}

func NewCategoryService(categories repositories.CategoryRepository, hospitals repositories.HospitalRepository) CategoryService {
	return &categoryService{categories: categories, hospitals: hospitals}
}

func (s *categoryService) resolveHospital(ctx context.Context, scope common.HospitalScope, requested *uuid.UUID) (int64, error) {
	var requestedID *int64
	if requested != nil {
		h, err := s.hospitals.GetByPublicID(ctx, *requested)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, common.NotFoundf("hospital %s not found", *requested)
			}
			return 0, err
		}
		requestedID = &h.ID
	}
	hospitalID := scope.ResolveForCreate(requestedID)
	if hospitalID == nil {
		return 0, common.Validationf("hospital_id is required")
	}
	return *hospitalID, nil
}

func (s *categoryService) Create(ctx context.Context, scope common.HospitalScope, input CategoryInput) (*models.Category, error) {
	if input.Name == "" {
		return nil, common.Validationf("category name is required")
	}
	hospitalID, err := s.resolveHospital(ctx, scope, input.HospitalID)
	if err != nil {
		return nil, err
	}

	exists, err := s.categories.ExistsByName(ctx, input.Name, hospitalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.Conflictf("category %q already exists in this hospital", input.Name)
	}

	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
		HospitalID:  hospitalID,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return s.categories.GetByPublicID(ctx, category.PublicID, nil)
}

func (s *categoryService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Category, error) {
	category, err := s.categories.GetByPublicID(ctx, publicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("category %s not found", publicID)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) GetByName(ctx context.Context, scope common.HospitalScope, name string) (*models.Category, error) {
	category, err := s.categories.GetByName(ctx, name, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("category %q not found", name)
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Category], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Category]

	categories, err := s.categories.List(ctx, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.categories.Count(ctx, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(categories, params.Page, params.Size, int(total)), nil
}

func (s *categoryService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input CategoryInput) (*models.Category, error) {
	category, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" && input.Name != category.Name {
		exists, err := s.categories.ExistsByName(ctx, input.Name, category.HospitalID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.Conflictf("category %q already exists in this hospital", input.Name)
		}
		category.Name = input.Name
	}
	if input.Description != nil {
		category.Description = input.Description
	}
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error {
	deleted, err := s.categories.Delete(ctx, publicID, scope.FilterID())
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("category %s not found", publicID)
	}
	return nil
}
