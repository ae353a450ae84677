package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type PublicAcquisitionRepository interface {
	Create(ctx context.Context, pa *models.PublicAcquisition) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.PublicAcquisition, error)
	List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.PublicAcquisition, error)
	Count(ctx context.Context, hospitalID *int64) (int64, error)
	ListByYear(ctx context.Context, year int, hospitalID *int64, offset, limit int) ([]*models.PublicAcquisition, error)
	CountByYear(ctx context.Context, year int, hospitalID *int64) (int64, error)
	Update(ctx context.Context, pa *models.PublicAcquisition) error
	Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error)
}

type publicAcquisitionRepository struct {
	db Database
}

func NewPublicAcquisitionRepository(db Database) PublicAcquisitionRepository {
	return &publicAcquisitionRepository{db: db}
}

const publicAcquisitionSelect = `
	SELECT pa.id, pa.public_id, pa.code, pa.title, pa.year,
	       pa.hospital_id, h.public_id AS hospital_public_id,
	       pa.user_id, u.public_id AS user_public_id, u.name AS user_name,
	       pa.created_at, pa.updated_at
	FROM public_acquisitions pa
	JOIN hospitals h ON h.id = pa.hospital_id
	JOIN users u ON u.id = pa.user_id
`

func (r *publicAcquisitionRepository) scan(row interface{ Scan(...any) error }) (*models.PublicAcquisition, error) {
	pa := &models.PublicAcquisition{}
	err := row.Scan(&pa.ID, &pa.PublicID, &pa.Code, &pa.Title, &pa.Year,
		&pa.HospitalID, &pa.HospitalPublicID,
		&pa.UserID, &pa.UserPublicID, &pa.UserName,
		&pa.CreatedAt, &pa.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return pa, nil
}

func (r *publicAcquisitionRepository) collect(ctx context.Context, query string, args ...any) ([]*models.PublicAcquisition, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	acquisitions := []*models.PublicAcquisition{}
	for rows.Next() {
		pa, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		acquisitions = append(acquisitions, pa)
	}
	return acquisitions, rows.Err()
}

func (r *publicAcquisitionRepository) Create(ctx context.Context, pa *models.PublicAcquisition) error {
	pa.PublicID = uuid.New()
	query := `
		INSERT INTO public_acquisitions (public_id, code, title, year, hospital_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, pa.PublicID, pa.Code, pa.Title, pa.Year, pa.HospitalID, pa.UserID).
		Scan(&pa.ID, &pa.CreatedAt, &pa.UpdatedAt)
}

func (r *publicAcquisitionRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.PublicAcquisition, error) {
	query := publicAcquisitionSelect + ` WHERE pa.public_id = $1 AND ($2::BIGINT IS NULL OR pa.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, publicID, hospitalID))
}

func (r *publicAcquisitionRepository) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.PublicAcquisition, error) {
	query := publicAcquisitionSelect + `
		WHERE ($1::BIGINT IS NULL OR pa.hospital_id = $1)
		ORDER BY pa.year DESC, pa.code OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *publicAcquisitionRepository) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM public_acquisitions WHERE ($1::BIGINT IS NULL OR hospital_id = $1)`,
		hospitalID).Scan(&total)
	return total, err
}

func (r *publicAcquisitionRepository) ListByYear(ctx context.Context, year int, hospitalID *int64, offset, limit int) ([]*models.PublicAcquisition, error) {
	query := publicAcquisitionSelect + `
		WHERE pa.year = $1 AND ($2::BIGINT IS NULL OR pa.hospital_id = $2)
		ORDER BY pa.code OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, year, hospitalID, offset, limit)
}

func (r *publicAcquisitionRepository) CountByYear(ctx context.Context, year int, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM public_acquisitions WHERE year = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		year, hospitalID).Scan(&total)
	return total, err
}

func (r *publicAcquisitionRepository) Update(ctx context.Context, pa *models.PublicAcquisition) error {
	query := `
		UPDATE public_acquisitions
		SET code = $1, title = $2, year = $3, user_id = $4, updated_at = NOW()
		WHERE public_id = $5
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, pa.Code, pa.Title, pa.Year, pa.UserID, pa.PublicID).
		Scan(&pa.UpdatedAt)
}

func (r *publicAcquisitionRepository) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM public_acquisitions WHERE public_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		publicID, hospitalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
