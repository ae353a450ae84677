package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type HospitalRepository interface {
	Create(ctx context.Context, hospital *models.Hospital) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Hospital, error)
	GetByID(ctx context.Context, id int64) (*models.Hospital, error)
	GetByName(ctx context.Context, name string) (*models.Hospital, error)
	List(ctx context.Context, offset, limit int) ([]*models.Hospital, error)
	Count(ctx context.Context) (int64, error)
	ListByCity(ctx context.Context, city string, offset, limit int) ([]*models.Hospital, error)
	CountByCity(ctx context.Context, city string) (int64, error)
	ListByNationality(ctx context.Context, nationality string, offset, limit int) ([]*models.Hospital, error)
	CountByNationality(ctx context.Context, nationality string) (int64, error)
	Update(ctx context.Context, hospital *models.Hospital) error
	SetImageObject(ctx context.Context, publicID uuid.UUID, objectName string) error
	Delete(ctx context.Context, publicID uuid.UUID) (bool, error)
}

type hospitalRepository struct {
	db Database
}

func NewHospitalRepository(db Database) HospitalRepository {
	return &hospitalRepository{db: db}
}

const hospitalColumns = `id, public_id, name, nationality, document_type, document, email, phone, city, image_object, created_at, updated_at`

func (r *hospitalRepository) scan(row interface{ Scan(...any) error }) (*models.Hospital, error) {
	h := &models.Hospital{}
	err := row.Scan(&h.ID, &h.PublicID, &h.Name, &h.Nationality, &h.DocumentType, &h.Document,
		&h.Email, &h.Phone, &h.City, &h.ImageObject, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *hospitalRepository) collect(ctx context.Context, query string, args ...any) ([]*models.Hospital, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hospitals := []*models.Hospital{}
	for rows.Next() {
		h, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	hospital.PublicID = uuid.New()
	query := `
		INSERT INTO hospitals (public_id, name, nationality, document_type, document, email, phone, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, hospital.PublicID, hospital.Name, hospital.Nationality,
		hospital.DocumentType, hospital.Document, hospital.Email, hospital.Phone, hospital.City).
		Scan(&hospital.ID, &hospital.CreatedAt, &hospital.UpdatedAt)
}

func (r *hospitalRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE public_id = $1`
	return r.scan(r.db.QueryRow(ctx, query, publicID))
}

func (r *hospitalRepository) GetByID(ctx context.Context, id int64) (*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1`
	return r.scan(r.db.QueryRow(ctx, query, id))
}

func (r *hospitalRepository) GetByName(ctx context.Context, name string) (*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE name ILIKE $1`
	return r.scan(r.db.QueryRow(ctx, query, name))
}

func (r *hospitalRepository) List(ctx context.Context, offset, limit int) ([]*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY name OFFSET $1 LIMIT $2`
	return r.collect(ctx, query, offset, limit)
}

func (r *hospitalRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hospitals`).Scan(&total)
	return total, err
}

func (r *hospitalRepository) ListByCity(ctx context.Context, city string, offset, limit int) ([]*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE city ILIKE $1 ORDER BY name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, "%"+city+"%", offset, limit)
}

func (r *hospitalRepository) CountByCity(ctx context.Context, city string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hospitals WHERE city ILIKE $1`, "%"+city+"%").Scan(&total)
	return total, err
}

func (r *hospitalRepository) ListByNationality(ctx context.Context, nationality string, offset, limit int) ([]*models.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE nationality ILIKE $1 ORDER BY name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, "%"+nationality+"%", offset, limit)
}

func (r *hospitalRepository) CountByNationality(ctx context.Context, nationality string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM hospitals WHERE nationality ILIKE $1`, "%"+nationality+"%").Scan(&total)
	return total, err
}

func (r *hospitalRepository) Update(ctx context.Context, hospital *models.Hospital) error {
	query := `
		UPDATE hospitals
		SET name = $1, nationality = $2, document_type = $3, document = $4,
		    email = $5, phone = $6, city = $7, updated_at = NOW()
		WHERE public_id = $8
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, hospital.Name, hospital.Nationality, hospital.DocumentType,
		hospital.Document, hospital.Email, hospital.Phone, hospital.City, hospital.PublicID).
		Scan(&hospital.UpdatedAt)
}

func (r *hospitalRepository) SetImageObject(ctx context.Context, publicID uuid.UUID, objectName string) error {
	query := `UPDATE hospitals SET image_object = $1, updated_at = NOW() WHERE public_id = $2`
	tag, err := r.db.Exec(ctx, query, objectName, publicID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRowsUpdated
	}
	return nil
}

func (r *hospitalRepository) Delete(ctx context.Context, publicID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM hospitals WHERE public_id = $1`, publicID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
