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

type ItemInput struct {
	Name            string     `json:"name"`
	SimilarNames    []string   `json:"similar_names"`
	Description     *string    `json:"description"`
	FullDescription *string    `json:"full_description"`
	InternalCode    *string    `json:"internal_code"`
	Presentation    *string    `json:"presentation"`
	Sample          *int       `json:"sample"`
	HasCatalog      *bool      `json:"has_catalog"`
	IsActive        *bool      `json:"is_active"`
	SubcategoryID   *uuid.UUID `json:"subcategory_id"`
}

type ItemService interface {
	Create(ctx context.Context, scope common.HospitalScope, input ItemInput) (*models.Item, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Item, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Item], error)
	Search(ctx context.Context, scope common.HospitalScope, term string, params common.PaginationParams) (common.PaginatedResponse[*models.Item], error)
	ListBySubcategory(ctx context.Context, scope common.HospitalScope, subcategoryPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.Item], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input ItemInput) (*models.Item, error)
	Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error
}

type itemService struct {
	items         repositories.ItemRepository
	subcategories repositories.SubCategoryRepository
}

func NewItemService(items repositories.ItemRepository, subcategories repositories.SubCategoryRepository) ItemService {
	return &itemService{items: items, subcategories: subcategories}
}

func (s *itemService) Create(ctx context.Context, scope common.HospitalScope, input ItemInput) (*models.Item, error) {
	if input.Name == "" {
		return nil, common.Validationf("item name is required")
	}
	if input.SubcategoryID == nil {
		return nil, common.Validationf("subcategory_id is required")
	}

	// The subcategory pins the hospital for the item.
	sub, err := s.subcategories.GetByPublicID(ctx, *input.SubcategoryID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("subcategory %s not found", *input.SubcategoryID)
		}
		return nil, err
	}

	if input.InternalCode != nil && *input.InternalCode != "" {
		exists, err := s.items.ExistsByInternalCode(ctx, *input.InternalCode, sub.HospitalID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.Conflictf("internal code %q is already used in this hospital", *input.InternalCode)
		}
	}

	hasCatalog := false
	if input.HasCatalog != nil {
		hasCatalog = *input.HasCatalog
	}
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	item := &models.Item{
		Name:            input.Name,
		SimilarNames:    input.SimilarNames,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		InternalCode:    input.InternalCode,
		Presentation:    input.Presentation,
		Sample:          input.Sample,
		HasCatalog:      hasCatalog,
		IsActive:        isActive,
		SubcategoryID:   sub.ID,
		HospitalID:      sub.HospitalID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return s.items.GetByPublicID(ctx, item.PublicID, nil)
}

func (s *itemService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Item, error) {
	item, err := s.items.GetByPublicID(ctx, publicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("item %s not found", publicID)
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Item], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Item]

	items, err := s.items.List(ctx, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.items.Count(ctx, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(items, params.Page, params.Size, int(total)), nil
}

func (s *itemService) Search(ctx context.Context, scope common.HospitalScope, term string, params common.PaginationParams) (common.PaginatedResponse[*models.Item], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Item]

	if term == "" {
		return empty, common.Validationf("search term is required")
	}

	items, err := s.items.Search(ctx, term, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.items.CountSearch(ctx, term, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(items, params.Page, params.Size, int(total)), nil
}

func (s *itemService) ListBySubcategory(ctx context.Context, scope common.HospitalScope, subcategoryPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.Item], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Item]

	sub, err := s.subcategories.GetByPublicID(ctx, subcategoryPublicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, common.NotFoundf("subcategory %s not found", subcategoryPublicID)
		}
		return empty, err
	}

	items, err := s.items.ListBySubcategory(ctx, sub.ID, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.items.CountBySubcategory(ctx, sub.ID, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(items, params.Page, params.Size, int(total)), nil
}

func (s *itemService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input ItemInput) (*models.Item, error) {
	item, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		item.Name = input.Name
	}
	if input.SimilarNames != nil {
		item.SimilarNames = input.SimilarNames
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.FullDescription != nil {
		item.FullDescription = input.FullDescription
	}
	if input.InternalCode != nil && (item.InternalCode == nil || *input.InternalCode != *item.InternalCode) {
		if *input.InternalCode != "" {
			exists, err := s.items.ExistsByInternalCode(ctx, *input.InternalCode, item.HospitalID)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, common.Conflictf("internal code %q is already used in this hospital", *input.InternalCode)
			}
		}
		item.InternalCode = input.InternalCode
	}
	if input.Presentation != nil {
		item.Presentation = input.Presentation
	}
	if input.Sample != nil {
		item.Sample = input.Sample
	}
	if input.HasCatalog != nil {
		item.HasCatalog = *input.HasCatalog
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.SubcategoryID != nil {
		sub, err := s.subcategories.GetByPublicID(ctx, *input.SubcategoryID, scope.FilterID())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("subcategory %s not found", *input.SubcategoryID)
			}
			return nil, err
		}
		if sub.HospitalID != item.HospitalID {
			return nil, common.Validationf("subcategory belongs to a different hospital")
		}
		item.SubcategoryID = sub.ID
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.items.GetByPublicID(ctx, item.PublicID, nil)
}

func (s *itemService) Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error {
	deleted, err := s.items.Delete(ctx, publicID, scope.FilterID())
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("item %s not found", publicID)
	}
	return nil
}
