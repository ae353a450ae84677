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

type JobTitleInput struct {
	Title          string `json:"title"`
	Department     string `json:"department"`
	SeniorityLevel string `json:"seniority_level"`
}

type JobTitleService interface {
	Create(ctx context.Context, input JobTitleInput) (*models.JobTitle, error)
	Get(ctx context.Context, publicID uuid.UUID) (*models.JobTitle, error)
	List(ctx context.Context, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error)
	ListByTitle(ctx context.Context, title string, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error)
	ListByDepartment(ctx context.Context, department string, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error)
	ListBySeniority(ctx context.Context, seniority string, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error)
	Update(ctx context.Context, publicID uuid.UUID, input JobTitleInput) (*models.JobTitle, error)
	Delete(ctx context.Context, publicID uuid.UUID) error
}

type jobTitleService struct {
	jobTitles repositories.JobTitleRepository
}

func NewJobTitleService(jobTitles repositories.JobTitleRepository) JobTitleService {
	return &jobTitleService{jobTitles: jobTitles}
}

func (s *jobTitleService) Create(ctx context.Context, input JobTitleInput) (*models.JobTitle, error) {
	if input.Title == "" || input.Department == "" || input.SeniorityLevel == "" {
		return nil, common.Validationf("title, department and seniority_level are required")
	}
	jt := &models.JobTitle{
		Title:          input.Title,
		Department:     input.Department,
		SeniorityLevel: input.SeniorityLevel,
	}
	if err := s.jobTitles.Create(ctx, jt); err != nil {
		return nil, err
	}
	return jt, nil
}

func (s *jobTitleService) Get(ctx context.Context, publicID uuid.UUID) (*models.JobTitle, error) {
	jt, err := s.jobTitles.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NotFoundf("job title %s not found", publicID)
		}
		return nil, err
	}
	return jt, nil
}

func (s *jobTitleService) List(ctx context.Context, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.JobTitle]

	titles, err := s.jobTitles.List(ctx, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.jobTitles.Count(ctx)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(titles, params.Page, params.Size, int(total)), nil
}

func (s *jobTitleService) ListByTitle(ctx context.Context, title string, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.JobTitle]

	titles, err := s.jobTitles.ListByTitle(ctx, title, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.jobTitles.CountByTitle(ctx, title)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(titles, params.Page, params.Size, int(total)), nil
}

func (s *jobTitleService) ListByDepartment(ctx context.Context, department string, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.JobTitle]

	titles, err := s.jobTitles.ListByDepartment(ctx, department, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.jobTitles.CountByDepartment(ctx, department)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(titles, params.Page, params.Size, int(total)), nil
}

func (s *jobTitleService) ListBySeniority(ctx context.Context, seniority string, params common.PaginationParams) (common.PaginatedResponse[*models.JobTitle], error) {
	params.Normalize()
	var empty common.PaginatedResponse[*models.JobTitle]

	titles, err := s.jobTitles.ListBySeniority(ctx, seniority, params.Offset(), params.Limit())
	if err != nil {
		return empty, err
	}
	total, err := s.jobTitles.CountBySeniority(ctx, seniority)
	if err != nil {
		return empty, err
	}
	return common.NewPaginatedResponse(titles, params.Page, params.Size, int(total)), nil
}

func (s *jobTitleService) Update(ctx context.Context, publicID uuid.UUID, input JobTitleInput) (*models.JobTitle, error) {
	jt, err := s.Get(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		jt.Title = input.Title
	}
	if input.Department != "" {
		jt.Department = input.Department
	}
	if input.SeniorityLevel != "" {
		jt.SeniorityLevel = input.SeniorityLevel
	}
	if err := s.jobTitles.Update(ctx, jt); err != nil {
		return nil, err
	}
	return jt, nil
}

func (s *jobTitleService) Delete(ctx context.Context, publicID uuid.UUID) error {
	deleted, err := s.jobTitles.Delete(ctx, publicID)
	if err != nil {
		return err
	}
	if !deleted {
		return common.NotFoundf("job title %s not found", publicID)
	}
	return nil
}
