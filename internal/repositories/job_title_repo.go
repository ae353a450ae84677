package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type JobTitleRepository interface {
	Create(ctx context.Context, jt *models.JobTitle) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.JobTitle, error)
	List(ctx context.Context, offset, limit int) ([]*models.JobTitle, error)
	Count(ctx context.Context) (int64, error)
	ListByTitle(ctx context.Context, title string, offset, limit int) ([]*models.JobTitle, error)
	CountByTitle(ctx context.Context, title string) (int64, error)
	ListByDepartment(ctx context.Context, department string, offset, limit int) ([]*models.JobTitle, error)
	CountByDepartment(ctx context.Context, department string) (int64, error)
	ListBySeniority(ctx context.Context, seniority string, offset, limit int) ([]*models.JobTitle, error)
	CountBySeniority(ctx context.Context, seniority string) (int64, error)
	Update(ctx context.Context, jt *models.JobTitle) error
	Delete(ctx context.Context, publicID uuid.UUID) (bool, error)
}

type jobTitleRepository struct {
	db Database
}

func NewJobTitleRepository(db Database) JobTitleRepository {
	return &jobTitleRepository{db: db}
}

const jobTitleColumns = `id, public_id, title, department, seniority_level, created_at, updated_at`

func (r *jobTitleRepository) scan(row interface{ Scan(...any) error }) (*models.JobTitle, error) {
	jt := &models.JobTitle{}
	err := row.Scan(&jt.ID, &jt.PublicID, &jt.Title, &jt.Department, &jt.SeniorityLevel, &jt.CreatedAt, &jt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return jt, nil
}

func (r *jobTitleRepository) collect(ctx context.Context, query string, args ...any) ([]*models.JobTitle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := []*models.JobTitle{}
	for rows.Next() {
		jt, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		titles = append(titles, jt)
	}
	return titles, rows.Err()
}

func (r *jobTitleRepository) Create(ctx context.Context, jt *models.JobTitle) error {
	jt.PublicID = uuid.New()
	query := `
		INSERT INTO job_titles (public_id, title, department, seniority_level)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, jt.PublicID, jt.Title, jt.Department, jt.SeniorityLevel).
		Scan(&jt.ID, &jt.CreatedAt, &jt.UpdatedAt)
}

func (r *jobTitleRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.JobTitle, error) {
	query := `SELECT ` + jobTitleColumns + ` FROM job_titles WHERE public_id = $1`
	return r.scan(r.db.QueryRow(ctx, query, publicID))
}

func (r *jobTitleRepository) List(ctx context.Context, offset, limit int) ([]*models.JobTitle, error) {
	query := `SELECT ` + jobTitleColumns + ` FROM job_titles ORDER BY title OFFSET $1 LIMIT $2`
	return r.collect(ctx, query, offset, limit)
}

func (r *jobTitleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_titles`).Scan(&total)
	return total, err
}

func (r *jobTitleRepository) ListByTitle(ctx context.Context, title string, offset, limit int) ([]*models.JobTitle, error) {
	query := `SELECT ` + jobTitleColumns + ` FROM job_titles WHERE title ILIKE $1 ORDER BY title OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, "%"+title+"%", offset, limit)
}

func (r *jobTitleRepository) CountByTitle(ctx context.Context, title string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_titles WHERE title ILIKE $1`, "%"+title+"%").Scan(&total)
	return total, err
}

func (r *jobTitleRepository) ListByDepartment(ctx context.Context, department string, offset, limit int) ([]*models.JobTitle, error) {
	query := `SELECT ` + jobTitleColumns + ` FROM job_titles WHERE department ILIKE $1 ORDER BY title OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, "%"+department+"%", offset, limit)
}

func (r *jobTitleRepository) CountByDepartment(ctx context.Context, department string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_titles WHERE department ILIKE $1`, "%"+department+"%").Scan(&total)
	return total, err
}

func (r *jobTitleRepository) ListBySeniority(ctx context.Context, seniority string, offset, limit int) ([]*models.JobTitle, error) {
	query := `SELECT ` + jobTitleColumns + ` FROM job_titles WHERE seniority_level ILIKE $1 ORDER BY title OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, seniority, offset, limit)
}

func (r *jobTitleRepository) CountBySeniority(ctx context.Context, seniority string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_titles WHERE seniority_level ILIKE $1`, seniority).Scan(&total)
	return total, err
}

func (r *jobTitleRepository) Update(ctx context.Context, jt *models.JobTitle) error {
	query := `
		UPDATE job_titles
		SET title = $1, department = $2, seniority_level = $3, updated_at = NOW()
		WHERE public_id = $4
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, jt.Title, jt.Department, jt.SeniorityLevel, jt.PublicID).Scan(&jt.UpdatedAt)
}

func (r *jobTitleRepository) Delete(ctx context.Context, publicID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_titles WHERE public_id = $1`, publicID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
