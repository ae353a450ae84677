package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"hospsupply/internal/caching"
	"hospsupply/internal/common"
	"hospsupply/internal/models"
	"hospsupply/internal/repositories"
)

const catalogCacheTTL = 10 * time.Minute

type CatalogInput struct {
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	FullDescription *string    `json:"full_description"`
	InternalCode    *string    `json:"internal_code"`
	Presentation    *string    `json:"presentation"`
	Sample          *int       `json:"sample"`
	IsActive        *bool      `json:"is_active"`
	CategoryID      *uuid.UUID `json:"category_id"`
	SubcategoryID   *uuid.UUID `json:"subcategory_id"`
}

// CatalogService manages the global reference catalog. Reads go through the
// Redis cache; every write invalidates it.
type CatalogService interface {
	Create(ctx context.Context, input CatalogInput) (*models.CatalogEntry, error)
	Get(ctx context.Context, publicID uuid.UUID) (*models.CatalogEntry, error)
	GetByName(ctx context.Context, name string) (*models.CatalogEntry, error)
	List(ctx context.Context, params common.PaginationParams) (common.PaginatedResponse[*models.CatalogEntry], error)
	Search(ctx context.Context, term string, params common.PaginationParams) (common.PaginatedResponse[*models.CatalogEntry], error)
	Update(ctx context.Context, publicID uuid.UUID, input CatalogInput) (*models.CatalogEntry, error)
	Delete(ctx context.Context, publicID uuid.UUID) error
	WarmCache(ctx context.Context) error
}

type catalogService struct {
	catalog       repositories.CatalogRepository
	categories    repositories.CategoryRepository
	subcategories repositories.SubCategoryRepository
	cache         caching.CacheService
	logger        *zap.Logger
}

func NewCatalogService(
	catalog repositories.CatalogRepository,
	categories repositories.CategoryRepository,
	subcategories repositories.SubCategoryRepository,
	cache caching.CacheService,
	logger *zap.Logger,
) CatalogService {
	return &catalogService{
		catalog:       catalog,
		categories:    categories,
		subcategories: subcategories,
		cache:         cache,
		logger:        logger,
	}
}

func (s *catalogService) Create(ctx context.Context, input CatalogInput) (*models.CatalogEntry, error) {
	if input.Name == "" {
		return nil, common.Validationf("catalog entry name is required")
	}
	if input.CategoryID == nil {
		return nil, common.Validationf("category_id is required")
	}

	category, err := s.categories.GetByPublicID(ctx, *input.CategoryID, nil)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("category %s not found", *input.CategoryID)
		}
		return nil, err
	}

	var subcategoryID *int64
	if input.SubcategoryID != nil {
		sub, err := s.subcategories.GetByPublicID(ctx, *input.SubcategoryID, nil)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("subcategory %s not found", *input.SubcategoryID)
			}
			return nil, err
		}
		subcategoryID = &sub.ID
	}

	if input.InternalCode != nil && *input.InternalCode != "" {
		exists, err := s.catalog.ExistsByInternalCode(ctx, *input.InternalCode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, common.Conflictf("internal code %q is already in the catalog", *input.InternalCode)
		}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	entry := &models.CatalogEntry{
		Name:            input.Name,
		Description:     input.Description,
		FullDescription: input.FullDescription,
		InternalCode:    input.InternalCode,
		Presentation:    input.Presentation,
		Sample:          input.Sample,
		IsActive:        isActive,
		CategoryID:      category.ID,
		SubcategoryID:   subcategoryID,
	}
	if err := s.catalog.Create(ctx, entry); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.catalog.GetByPublicID(ctx, entry.PublicID)
}

func (s *catalogService) Get(ctx context.Context, publicID uuid.UUID) (*models.CatalogEntry, error) {
	cached, err := s.cache.GetCatalogEntry(ctx, publicID.String())
	if err != nil {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	entry, err := s.catalog.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("catalog entry %s not found", publicID)
		}
		return nil, err
	}

	if err := s.cache.SetCatalogEntry(ctx, entry, catalogCacheTTL); err != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return entry, nil
}

func (s *catalogService) GetByName(ctx context.Context, name string) (*models.CatalogEntry, error) {
	entry, err := s.catalog.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("catalog entry %q not found", name)
		}
		return nil, err
	}
	return entry, nil
}

func (s *catalogService) List(ctx context.Context, params common.PaginationParams) (common.PaginatedResponse[*models.CatalogEntry], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.CatalogEntry]

	cached, hit, err := s.cache.GetCatalogPage(ctx, params.Page, params.Size)
	if err != nil {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	}
	total, err := s.catalog.Count(ctx)
	if err != nil {
		return empty, err
	}
	if hit {
		return common.NewPaginatedResponse(cached, params.Page, params.Size, int(total)), nil
	}

	entries, err := s.catalog.List(ctx, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	if err := s.cache.SetCatalogPage(ctx, params.Page, params.Size, entries, catalogCacheTTL); err != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return common.NewPaginatedResponse(entries, params.Page, params.Size, int(total)), nil
}

func (s *catalogService) Search(ctx context.Context, term string, params common.PaginationParams) (common.PaginatedResponse[*models.CatalogEntry], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.CatalogEntry]

	if term == "" {
		return empty, common.Validationf("search term is required")
	}

	entries, err := s.catalog.Search(ctx, term, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.catalog.CountSearch(ctx, term)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(entries, params.Page, params.Size, int(total)), nil
}

func (s *catalogService) Update(ctx context.Context, publicID uuid.UUID, input CatalogInput) (*models.CatalogEntry, error) {
	entry, err := s.catalog.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("catalog entry %s not found", publicID)
		}
		return nil, err
	}

	if input.Name != "" {
		entry.Name = input.Name
	}
	if input.Description != nil {
		entry.Description = input.Description
	}
	if input.FullDescription != nil {
		entry.FullDescription = input.FullDescription
	}
	if input.InternalCode != nil && (entry.InternalCode == nil || *input.InternalCode != *entry.InternalCode) {
		if *input.InternalCode != "" {
			exists, err := s.catalog.ExistsByInternalCode(ctx, *input.InternalCode)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, common.Conflictf("internal code %q is already in the catalog", *input.InternalCode)
			}
		}
		entry.InternalCode = input.InternalCode
	}
	if input.Presentation != nil {
		entry.Presentation = input.Presentation
	}
	if input.Sample != nil {
		entry.Sample = input.Sample
	}
	if input.IsActive != nil {
		entry.IsActive = *input.IsActive
	}
	if input.CategoryID != nil {
		category, err := s.categories.GetByPublicID(ctx, *input.CategoryID, nil)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("category %s not found", *input.CategoryID)
			}
			return nil, err
		}
		entry.CategoryID = category.ID
	}
	if input.SubcategoryID != nil {
		sub, err := s.subcategories.GetByPublicID(ctx, *input.SubcategoryID, nil)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("subcategory %s not found", *input.SubcategoryID)
			}
			return nil, err
		}
		entry.SubcategoryID = &sub.ID
	}

	if err := s.catalog.Update(ctx, entry); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return s.catalog.GetByPublicID(ctx, entry.PublicID)
}

func (s *catalogService) Delete(ctx context.Context, publicID uuid.UUID) error {
	deleted, err := s.catalog.Delete(ctx, publicID)
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("catalog entry %s not found", publicID)
	}
	s.invalidate(ctx)
	return nil
}

// WarmCache preloads the first catalog page so the first request after a
// restart or invalidation does not pay the database round trip.
func (s *catalogService) WarmCache(ctx context.Context) error {
	params := common.PaginationParams{Page: 1, Size: common.MaxPageSize}
	params.Normalize()

	entries, err := s.catalog.List(ctx, params.Offset(), params.Limit())
	if err != nil {
		return err
	}
	if err := s.cache.SetCatalogPage(ctx, params.Page, params.Size, entries, catalogCacheTTL); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := s.cache.SetCatalogEntry(ctx, entry, catalogCacheTTL); err != nil {
			return err
		}
	}
	s.logger.Debug("catalog cache warmed", zap.Int("entries", len(entries)))
	return nil
}

func (s *catalogService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}
}
