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

type ItemPublicAcquisitionInput struct {
	IsHolder            *bool      `json:"is_holder"`
	ItemID              *uuid.UUID `json:"item_id"`
	PublicAcquisitionID *uuid.UUID `json:"public_acquisition_id"`
	SupplierID          *uuid.UUID `json:"supplier_id"`
}

type ItemPublicAcquisitionService interface {
	Create(ctx context.Context, scope common.HospitalScope, input ItemPublicAcquisitionInput) (*models.ItemPublicAcquisition, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.ItemPublicAcquisition, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.ItemPublicAcquisition], error)
	ListByAcquisition(ctx context.Context, scope common.HospitalScope, acquisitionPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.ItemPublicAcquisition], error)
	ListByItem(ctx context.Context, scope common.HospitalScope, itemPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.ItemPublicAcquisition], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input ItemPublicAcquisitionInput) (*models.ItemPublicAcquisition, error)
	Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error
}

type itemPublicAcquisitionService struct {
	links        repositories.ItemPublicAcquisitionRepository
	items        repositories.ItemRepository
	acquisitions repositories.PublicAcquisitionRepository
	suppliers    repositories.SupplierRepository
}

func NewItemPublicAcquisitionService(
	links repositories.ItemPublicAcquisitionRepository,
	items repositories.ItemRepository,
	acquisitions repositories.PublicAcquisitionRepository,
	suppliers repositories.SupplierRepository,
) ItemPublicAcquisitionService {
	return &itemPublicAcquisitionService{
		links:        links,
		items:        items,
		acquisitions: acquisitions,
		suppliers:    suppliers,
	}
}

func (s *itemPublicAcquisitionService) Create(ctx context.Context, scope common.HospitalScope, input ItemPublicAcquisitionInput) (*models.ItemPublicAcquisition, error) {
	if input.ItemID == nil || input.PublicAcquisitionID == nil || input.SupplierID == nil {
		return nil, common.Validationf("item_id, public_acquisition_id and supplier_id are required")
	}

	item, err := s.items.GetByPublicID(ctx, *input.ItemID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("item %s not found", *input.ItemID)
		}
		return nil, err
	}
	pa, err := s.acquisitions.GetByPublicID(ctx, *input.PublicAcquisitionID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("public acquisition %s not found", *input.PublicAcquisitionID)
		}
		return nil, err
	}
	supplier, err := s.suppliers.GetByPublicID(ctx, *input.SupplierID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("supplier %s not found", *input.SupplierID)
		}
		return nil, err
	}

	// All three sides of the link must belong to the same hospital.
	if item.HospitalID != pa.HospitalID || item.HospitalID != supplier.HospitalID {
		return nil, common.Validationf("item, acquisition and supplier must belong to the same hospital")
	}

	isHolder := false
	if input.IsHolder != nil {
		isHolder = *input.IsHolder
	}

	ipa := &models.ItemPublicAcquisition{
		IsHolder:            isHolder,
		ItemID:              item.ID,
		PublicAcquisitionID: pa.ID,
		SupplierID:          supplier.ID,
	}
	if err := s.links.Create(ctx, ipa); err != nil {
		return nil, err
	}
	return s.links.GetByPublicID(ctx, ipa.PublicID, nil)
}

func (s *itemPublicAcquisitionService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.ItemPublicAcquisition, error) {
	ipa, err := s.links.GetByPublicID(ctx, publicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("item public acquisition %s not found", publicID)
		}
		return nil, err
	}
	return ipa, nil
}

func (s *itemPublicAcquisitionService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.ItemPublicAcquisition], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.ItemPublicAcquisition]

	links, err := s.links.List(ctx, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.links.Count(ctx, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(links, params.Page, params.Size, int(total)), nil
}

func (s *itemPublicAcquisitionService) ListByAcquisition(ctx context.Context, scope common.HospitalScope, acquisitionPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.ItemPublicAcquisition], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.ItemPublicAcquisition]

	pa, err := s.acquisitions.GetByPublicID(ctx, acquisitionPublicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, common.NotFoundf("public acquisition %s not found", acquisitionPublicID)
		}
		return empty, err
	}

	links, err := s.links.ListByAcquisition(ctx, pa.ID, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.links.CountByAcquisition(ctx, pa.ID, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(links, params.Page, params.Size, int(total)), nil
}

func (s *itemPublicAcquisitionService) ListByItem(ctx context.Context, scope common.HospitalScope, itemPublicID uuid.UUID, params common.PaginationParams) (common.PaginatedResponse[*models.ItemPublicAcquisition], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.ItemPublicAcquisition]

	item, err := s.items.GetByPublicID(ctx, itemPublicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return empty, common.NotFoundf("item %s not found", itemPublicID)
		}
		return empty, err
	}

	links, err := s.links.ListByItem(ctx, item.ID, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.links.CountByItem(ctx, item.ID, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(links, params.Page, params.Size, int(total)), nil
}

func (s *itemPublicAcquisitionService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input ItemPublicAcquisitionInput) (*models.ItemPublicAcquisition, error) {
	ipa, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}
	if input.IsHolder != nil {
		ipa.IsHolder = *input.IsHolder
	}
	if input.SupplierID != nil {
		supplier, err := s.suppliers.GetByPublicID(ctx, *input.SupplierID, scope.FilterID())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("supplier %s not found", *input.SupplierID)
			}
			return nil, err
		}
		ipa.SupplierID = supplier.ID
	}
	if err := s.links.Update(ctx, ipa); err != nil {
		return nil, err
	}
	return s.links.GetByPublicID(ctx, ipa.PublicID, nil)
}

func (s *itemPublicAcquisitionService) Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error {
	deleted, err := s.links.Delete(ctx, publicID, scope.FilterID())
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("item public acquisition %s not found", publicID)
	}
	return nil
}
