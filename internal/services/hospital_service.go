package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"hospsupply/internal/common"
	"hospsupply/internal/models"
	"hospsupply/internal/repositories"
)

type HospitalInput struct {
	Name         string `json:"name"`
	Nationality  string `json:"nationality"`
	DocumentType string `json:"document_type"`
	Document     string `json:"document"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
}

type HospitalService interface {
	Create(ctx context.Context, input HospitalInput) (*models.Hospital, error)
	Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Hospital, error)
	GetByName(ctx context.Context, scope common.HospitalScope, name string) (*models.Hospital, error)
	List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Hospital], error)
	ListByCity(ctx context.Context, city string, params common.PaginationParams) (common.PaginatedResponse[*models.Hospital], error)
	ListByNationality(ctx context.Context, nationality string, params common.PaginationParams) (common.PaginatedResponse[*models.Hospital], error)
	Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input HospitalInput) (*models.Hospital, error)
	Delete(ctx context.Context, publicID uuid.UUID) error
	UploadImage(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, reader io.Reader, size int64, contentType string) error
	ImageURL(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (string, error)
}

type hospitalService struct {
	hospitals repositories.HospitalRepository
	storage   StorageService
}

func NewHospitalService(hospitals repositories.HospitalRepository, storage StorageService) HospitalService {
	return &hospitalService{hospitals: hospitals, storage: storage}
}

func (s *hospitalService) Create(ctx context.Context, input HospitalInput) (*models.Hospital, error) {
	if input.Name == "" || input.Document == "" || input.Email == "" {
		return nil, common.Validationf("name, document and email are required")
	}
	hospital := &models.Hospital{
		Name:         input.Name,
		Nationality:  input.Nationality,
		DocumentType: input.DocumentType,
		Document:     input.Document,
		Email:        input.Email,
		Phone:        input.Phone,
		City:         input.City,
	}
	if err := s.hospitals.Create(ctx, hospital); err != nil {
		return nil, err
	}
	return hospital, nil
}

// Get lets any authenticated user read a hospital, but non-developers only
// their own.
func (s *hospitalService) Get(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (*models.Hospital, error) {
	hospital, err := s.hospitals.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("hospital %s not found", publicID)
		}
		return nil, err
	}
	if !scope.CanAccess(hospital.ID) {
		return nil, common.ErrForbidden
	}
	return hospital, nil
}

func (s *hospitalService) GetByName(ctx context.Context, scope common.HospitalScope, name string) (*models.Hospital, error) {
	hospital, err := s.hospitals.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("hospital %q not found", name)
		}
		return nil, err
	}
	if !scope.CanAccess(hospital.ID) {
		return nil, common.ErrForbidden
	}
	return hospital, nil
}

func (s *hospitalService) List(ctx context.Context, scope common.HospitalScope, params common.PaginationParams) (common.PaginatedResponse[*models.Hospital], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Hospital]

	// Non-developers see at most their own hospital.
	if !scope.IsDeveloper() {
		raw := scope.RawHospitalID()
		if raw == nil {
			return common.NewPaginatedResponse([]*models.Hospital{}, params.Page, params.Size, 0), nil
		}
		hospital, err := s.hospitals.GetByID(ctx, *raw)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return common.NewPaginatedResponse([]*models.Hospital{}, params.Page, params.Size, 0), nil
			}
			return empty, err
		}
		items := []*models.Hospital{}
		if params.Page == 1 {
			items = append(items, hospital)
		}
		return common.NewPaginatedResponse(items, params.Page, params.Size, 1), nil
	}

	hospitals, err := s.hospitals.List(ctx, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.hospitals.Count(ctx)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(hospitals, params.Page, params.Size, int(total)), nil
}

func (s *hospitalService) ListByCity(ctx context.Context, city string, params common.PaginationParams) (common.PaginatedResponse[*models.Hospital], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Hospital]

	hospitals, err := s.hospitals.ListByCity(ctx, city, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.hospitals.CountByCity(ctx, city)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(hospitals, params.Page, params.Size, int(total)), nil
}

func (s *hospitalService) ListByNationality(ctx context.Context, nationality string, params common.PaginationParams) (common.PaginatedResponse[*models.Hospital], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.Hospital]

	hospitals, err := s.hospitals.ListByNationality(ctx, nationality, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.hospitals.CountByNationality(ctx, nationality)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(hospitals, params.Page, params.Size, int(total)), nil
}

func (s *hospitalService) Update(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, input HospitalInput) (*models.Hospital, error) {
	hospital, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		hospital.Name = input.Name
	}
	if input.Nationality != "" {
		hospital.Nationality = input.Nationality
	}
	if input.DocumentType != "" {
		hospital.DocumentType = input.DocumentType
	}
	if input.Document != "" {
		hospital.Document = input.Document
	}
	if input.Email != "" {
		hospital.Email = input.Email
	}
	if input.Phone != "" {
		hospital.Phone = input.Phone
	}
	if input.City != "" {
		hospital.City = input.City
	}
	if err := s.hospitals.Update(ctx, hospital); err != nil {
		return nil, err
	}
	return hospital, nil
}

func (s *hospitalService) Delete(ctx context.Context, publicID uuid.UUID) error {
	deleted, err := s.hospitals.Delete(ctx, publicID)
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("hospital %s not found", publicID)
	}
	return nil
}

func (s *hospitalService) UploadImage(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID, reader io.Reader, size int64, contentType string) error {
	hospital, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return err
	}

	objectName := fmt.Sprintf("hospitals/%s/image", hospital.PublicID)
	if err := s.storage.Upload(ctx, objectName, reader, size, contentType); err != nil {
		return err
	}
	return s.hospitals.SetImageObject(ctx, publicID, objectName)
}

func (s *hospitalService) ImageURL(ctx context.Context, scope common.HospitalScope, publicID uuid.UUID) (string, error) {
	hospital, err := s.Get(ctx, scope, publicID)
	if err != nil {
		return "", err
	}
	if hospital.ImageObject == nil {
		return "", common.NotFoundf("hospital %s has no image", publicID)
	}
	return s.storage.PresignedURL(ctx, *hospital.ImageObject, 15*time.Minute)
}
