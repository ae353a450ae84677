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

type SupplierInput struct {
	Name         string     `json:"name"`
	DocumentType string     `json:"document_type"`
	Document     string     `json:"document"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	HospitalID   *uuid.UUID `json:"hospital_id"`
}

type SupplierService interface {
	Create(ctx context.Context, scope common.HospitalScope, input SupplierInput) (*models.Supplier, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Supplier, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Supplier], error)
	Search(ctx context.Context, scope common.HospitalScope, term string, params common.PaginationParams) (common.PaginatedResponse[*models.Supplier], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input SupplierInput) (*models.Supplier, error)
	Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error
}

type supplierService struct {
	suppliers repositories.SupplierRepository
	hospitals repositories.HospitalRepository
}

func NewSupplierService(suppliers repositories.SupplierRepository, hospitals repositories.HospitalRepository) SupplierService {
	return &supplierService{suppliers: suppliers, hospitals: hospitals}
}

func (s *supplierService) Create(ctx context.Context, scope common.HospitalScope, input SupplierInput) (*models.Supplier, error) {
	if input.Name == "" || input.Document == "" {
		return nil, common.Validationf("name and document are required")
	}

	var requestedID *int64
	if input.HospitalID != nil {
		h, err := s.hospitals.GetByPublicID(ctx, *input.HospitalID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("hospital %s not found", *input.HospitalID)
			}
			return nil, err
		}
		requestedID = &h.ID
	}
	hospitalID := scope.ResolveForCreate(requestedID)
	if hospitalID == nil {
		return nil, common.Validationf("hospital_id is required")
	}

	supplier := &models.Supplier{
		Name:         input.Name,
		DocumentType: input.DocumentType,
		Document:     input.Document,
		Email:        input.Email,
		Phone:        input.Phone,
		HospitalID:   *hospitalID,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return s.suppliers.GetByPublicID(ctx, supplier.PublicID, nil)
}

func (s *supplierService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.suppliers.GetByPublicID(ctx, publicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("supplier %s not found", publicID)
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Supplier], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Supplier]

	suppliers, err := s.suppliers.List(ctx, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.suppliers.Count(ctx, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(suppliers, params.Page, params.Size, int(total)), nil
}

func (s *supplierService) Search(ctx context.Context, scope common.HospitalScope, term string, params common.PaginationParams) (common.PaginatedResponse[*models.Supplier], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Supplier]

	if term == "" {
		return empty, common.Validationf("search term is required")
	}

	suppliers, err := s.suppliers.Search(ctx, term, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.suppliers.CountSearch(ctx, term, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(suppliers, params.Page, params.Size, int(total)), nil
}

func (s *supplierService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input SupplierInput) (*models.Supplier, error) {
	supplier, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		supplier.Name = input.Name
	}
	if input.DocumentType != "" {
		supplier.DocumentType = input.DocumentType
	}
	if input.Document != "" {
		supplier.Document = input.Document
	}
	if input.Email != "" {
		supplier.Email = input.Email
	}
	if input.Phone != "" {
		supplier.Phone = input.Phone
	}
	if err := s.suppliers.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error {
	deleted, err := s.suppliers.Delete(ctx, publicID, scope.FilterID())
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("supplier %s not found", publicID)
	}
	return nil
}
