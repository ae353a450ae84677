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

type PublicAcquisitionInput struct {
	Code       string     `json:"code"`
	Title      string     `json:"title"`
	Year       int        `json:"year"`
	HospitalID *uuid.UUID `json:"hospital_id"`
	UserID     *uuid.UUID `json:"user_id"`
}

type PublicAcquisitionService interface {
	Create(ctx context.Context, scope common.HospitalScope, input PublicAcquisitionInput) (*models.PublicAcquisition, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.PublicAcquisition, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.PublicAcquisition], error)
	ListByYear(ctx context.Context, scope common.HospitalScope, year int, params common.PaginationParams) (common.PaginatedResponse[*models.PublicAcquisition], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input PublicAcquisitionInput) (*models.PublicAcquisition, error)
	Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error
}

type publicAcquisitionService struct {
	acquisitions repositories.PublicAcquisitionRepository
	hospitals    repositories.HospitalRepository
	users        repositories.UserRepository
}

func NewPublicAcquisitionService(
	acquisitions repositories.PublicAcquisitionRepository,
	hospitals repositories.HospitalRepository,
	users repositories.UserRepository,
) PublicAcquisitionService {
	return &publicAcquisitionService{acquisitions: acquisitions, hospitals: hospitals, users: users}
}

func (s *publicAcquisitionService) Create(ctx context.Context, scope common.HospitalScope, input PublicAcquisitionInput) (*models.PublicAcquisition, error) {
	if input.Code == "" || input.Title == "" || input.Year == 0 {
		return nil, common.Validationf("code, title and year are required")
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

	// The auctioneer defaults to the requesting user.
	userID := scope.UserID
	if input.UserID != nil {
		u, err := s.users.GetByPublicID(ctx, *input.UserID, scope.FilterID())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("user %s not found", *input.UserID)
			}
			return nil, err
		}
		userID = u.ID
	}

	pa := &models.PublicAcquisition{
		Code:       input.Code,
		Title:      input.Title,
		Year:       input.Year,
		HospitalID: *hospitalID,
		UserID:     userID,
	}
	if err := s.acquisitions.Create(ctx, pa); err != nil {
		return nil, err
	}
	return s.acquisitions.GetByPublicID(ctx, pa.PublicID, nil)
}

func (s *publicAcquisitionService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.PublicAcquisition, error) {
	pa, err := s.acquisitions.GetByPublicID(ctx, publicID, scope.FilterID())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("public acquisition %s not found", publicID)
		}
		return nil, err
	}
	return pa, nil
}

func (s *publicAcquisitionService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.PublicAcquisition], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.PublicAcquisition]

	acquisitions, err := s.acquisitions.List(ctx, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.acquisitions.Count(ctx, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(acquisitions, params.Page, params.Size, int(total)), nil
}

func (s *publicAcquisitionService) ListByYear(ctx context.Context, scope common.HospitalScope, year int, params common.PaginationParams) (common.PaginatedResponse[*models.PublicAcquisition], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.PublicAcquisition]

	acquisitions, err := s.acquisitions.ListByYear(ctx, year, scope.FilterID(), params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.acquisitions.CountByYear(ctx, year, scope.FilterID())
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(acquisitions, params.Page, params.Size, int(total)), nil
}

func (s *publicAcquisitionService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input PublicAcquisitionInput) (*models.PublicAcquisition, error) {
	pa, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}
	if input.Code != "" {
		pa.Code = input.Code
	}
	if input.Title != "" {
		pa.Title = input.Title
	}
	if input.Year != 0 {
		pa.Year = input.Year
	}
	if input.UserID != nil {
		u, err := s.users.GetByPublicID(ctx, *input.UserID, scope.FilterID())
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, common.NotFoundf("user %s not found", *input.UserID)
			}
			return nil, err
		}
		pa.UserID = u.ID
	}
	if err := s.acquisitions.Update(ctx, pa); err != nil {
		return nil, err
	}
	return s.acquisitions.GetByPublicID(ctx, pa.PublicID, nil)
}

func (s *publicAcquisitionService) Delete(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) error {
	deleted, err := s.acquisitions.Delete(ctx, publicID, scope.FilterID())
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("public acquisition %s not found", publicID)
	}
	return nil
}
