package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type SubCategoryRepository interface {
	Create(ctx context.Context, sub *models.SubCategory) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.SubCategory, error)
	GetByName(ctx context.Context, name string, hospitalID *int64) (*models.SubCategory, error)
	List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.SubCategory, error)
	Count(ctx context.Context, hospitalID *int64) (int64, error)
	ListByCategory(ctx context.Context, categoryID int64, hospitalID *int64, offset, limit int) ([]*models.SubCategory, error)
	CountByCategory(ctx context.Context, categoryID int64, hospitalID *int64) (int64, error)
	Update(ctx context.Context, sub *models.SubCategory) error
	Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error)
}

type subCategoryRepository struct {
	db Database
}

func NewSubCategoryRepository(db Database) SubCategoryRepository {
	return &subCategoryRepository{db: db}
}

const subCategorySelect = `
	SELECT s.id, s.public_id, s.name, s.description,
	       s.category_id, c.public_id AS category_public_id,
	       s.hospital_id, h.public_id AS hospital_public_id,
	       s.created_at, s.updated_at
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id
	JOIN hospitals h ON h.id = s.hospital_id
`

func (r *subCategoryRepository) scan(row interface{ Scan(...any) error }) (*models.SubCategory, error) {
	s := &models.SubCategory{}
	err := row.Scan(&s.ID, &s.PublicID, &s.Name, &s.Description,
		&s.CategoryID, &s.CategoryPublicID,
		&s.HospitalID, &s.HospitalPublicID,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *subCategoryRepository) collect(ctx context.Context, query string, args ...any) ([]*models.SubCategory, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*models.SubCategory{}
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *subCategoryRepository) Create(ctx context.Context, sub *models.SubCategory) error {
	sub.PublicID = uuid.New()
	query := `
		INSERT INTO subcategories (public_id, name, description, category_id, hospital_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, sub.PublicID, sub.Name, sub.Description, sub.CategoryID, sub.HospitalID).
		Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

func (r *subCategoryRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.SubCategory, error) {
	query := subCategorySelect + ` WHERE s.public_id = $1 AND ($2::BIGINT IS NULL OR s.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, publicID, hospitalID))
}

func (r *subCategoryRepository) GetByName(ctx context.Context, name string, hospitalID *int64) (*models.SubCategory, error) {
	query := subCategorySelect + ` WHERE s.name ILIKE $1 AND ($2::BIGINT IS NULL OR s.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, name, hospitalID))
}

func (r *subCategoryRepository) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.SubCategory, error) {
	query := subCategorySelect + `
		WHERE ($1::BIGINT IS NULL OR s.hospital_id = $1)
		ORDER BY s.name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *subCategoryRepository) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM subcategories WHERE ($1::BIGINT IS NULL OR hospital_id = $1)`, hospitalID).Scan(&total)
	return total, err
}

func (r *subCategoryRepository) ListByCategory(ctx context.Context, categoryID int64, hospitalID *int64, offset, limit int) ([]*models.SubCategory, error) {
	query := subCategorySelect + `
		WHERE s.category_id = $1 AND ($2::BIGINT IS NULL OR s.hospital_id = $2)
		ORDER BY s.name OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, categoryID, hospitalID, offset, limit)
}

func (r *subCategoryRepository) CountByCategory(ctx context.Context, categoryID int64, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM subcategories WHERE category_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		categoryID, hospitalID).Scan(&total)
	return total, err
}

func (r *subCategoryRepository) Update(ctx context.Context, sub *models.SubCategory) error {
	query := `
		UPDATE subcategories
		SET name = $1, description = $2, category_id = $3, updated_at = NOW()
		WHERE public_id = $4
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, sub.Name, sub.Description, sub.CategoryID, sub.PublicID).
		Scan(&sub.UpdatedAt)
}

func (r *subCategoryRepository) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM subcategories WHERE public_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		publicID, hospitalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
