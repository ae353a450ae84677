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

type SubCategoryInput struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CategoryID  *uuid.UUID `json:"category_id"`
	HospitalID  *uuid.UUID `json:"hospital_id"`
}

type SubCategoryService interface {
	Create(ctx context.Context, scope common.HospitalScope, input SubCategoryInput) (*models.SubCategory, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.SubCategory, error)
	GetByName(ctx context.Context, scope common.HospitalScope, name string) (*models.SubCategory, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.SubCategory], error)
	ListByCategory(ctx context.Context, scope common.HospitalScope, categoryPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.SubCategory], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input SubCategoryInput) (*models.SubCategory, error)
	Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error
}

type subCategoryService struct {
	subcategories repositories.SubCategoryRepository
	categories    repositories.CategoryRepository
}

func NewSubCategoryService(subcategories repositories.SubCategoryRepository, categories repositories.CategoryRepository) SubCategoryService {
	return &subCategoryService{subcategories: subcategories, categories: categories}
}

func (s *subCategoryService) Create(ctx context.Context, scope common.HospitalScope, input SubCategoryInput) (*models.SubCategory, error) {
	if input.Name == "" {
		return nil, common.Validationf("subcategory name is required")
	}
	if input.CategoryID == nil {
		return nil, common.Validationf("category_id is required")
	}

	// The parent category pins the hospital: a subcategory always lives in
	// its category's hospital.
	category, err := s.categories.GetByPublicID(ctx, *input.CategoryID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("category %s not found", *input.CategoryID)
		}
		return nil, err
	}

	sub := &models.SubCategory{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  category.ID,
		HospitalID:  category.HospitalID,
	}
	if err := s.subcategories.Create(ctx, sub); err != nil {
		return nil, err
	}
	return s.subcategories.GetByPublicID(ctx, sub.PublicID, nil)
}

func (s *subCategoryService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.SubCategory, error) {
	sub, err := s.subcategories.GetByPublicID(ctx, publicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("subcategory %s not found", publicID)
		}
		return nil, err
	}
	return sub, nil
}

func (s *subCategoryService) GetByName(ctx context.Context, scope common.HospitalScope, name string) (*models.SubCategory, error) {
	sub, err := s.subcategories.GetByName(ctx, name, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("subcategory %q not found", name)
		}
		return nil, err
	}
	return sub, nil
}

func (s *subCategoryService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.SubCategory], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.SubCategory]

	subs, err := s.subcategories.List(ctx, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.subcategories.Count(ctx, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(subs, params.Page, params.Size, int(total)), nil
}

func (s *subCategoryService) ListByCategory(ctx context.Context, scope common.HospitalScope, categoryPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.SubCategory], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.SubCategory]

	category, err := s.categories.GetByPublicID(ctx, categoryPublicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, common.NotFoundf("category %s not found", categoryPublicID)
		}
		return empty, err
	}

	subs, err := s.subcategories.ListByCategory(ctx, category.ID, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.subcategories.CountByCategory(ctx, category.ID, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(subs, params.Page, params.Size, int(total)), nil
}

func (s *subCategoryService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input SubCategoryInput) (*models.SubCategory, error) {
	sub, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		sub.Name = input.Name
	}
	if input.Description != nil {
		sub.Description = input.Description
	}
	if input.CategoryID != nil {
		category, err := s.categories.GetByPublicID(ctx, *input.CategoryID, scope.FilterID())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("category %s not found", *input.CategoryID)
			}
			return nil, err
		}
		if category.HospitalID != sub.HospitalID {
			return nil, common.Validationf("category belongs to a different hospital")
		}
		sub.CategoryID = category.ID
	}
	if err := s.subcategories.Update(ctx, sub); err != nil {
		return nil, err
	}
	return s.subcategories.GetByPublicID(ctx, sub.PublicID, nil)
}

func (s *subCategoryService) Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error {
	deleted, err := s.subcategories.Delete(ctx, publicID, scope.FilterID())
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("subcategory %s not found", publicID)
	}
	return nil
}
