package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.Category, error)
	GetByName(ctx context.Context, name string, hospitalID *int64) (*models.Category, error)
	List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.Category, error)
	Count(ctx context.Context, hospitalID *int64) (int64, error)
	ExistsByName(ctx context.Context, name string, hospitalID int64) (bool, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error)
}

type categoryRepository struct {
	db Database
}

func NewCategoryRepository(db Database) CategoryRepository {
	return &categoryRepository{db: db}
}

const categorySelect = `
	SELECT c.id, c.public_id, c.name, c.description,
	       c.hospital_id, h.public_id AS hospital_public_id,
	       c.created_at, c.updated_at
	FROM categories c
	JOIN hospitals h ON h.id = c.hospital_id
`

func (r *categoryRepository) scan(row interface{ Scan(...any) error }) (*models.Category, error) {
	c := &models.Category{}
	err := row.Scan(&c.ID, &c.PublicID, &c.Name, &c.Description,
		&c.HospitalID, &c.HospitalPublicID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *categoryRepository) collect(ctx context.Context, query string, args ...any) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		c, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	category.PublicID = uuid.New()
	query := `
		INSERT INTO categories (public_id, name, description, hospital_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, category.PublicID, category.Name, category.Description, category.HospitalID).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.Category, error) {
	query := categorySelect + ` WHERE c.public_id = $1 AND ($2::BIGINT IS NULL OR c.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, publicID, hospitalID))
}

func (r *categoryRepository) GetByName(ctx context.Context, name string, hospitalID *int64) (*models.Category, error) {
	query := categorySelect + ` WHERE c.name ILIKE $1 AND ($2::BIGINT IS NULL OR c.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, name, hospitalID))
}

func (r *categoryRepository) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.Category, error) {
	query := categorySelect + `
		WHERE ($1::BIGINT IS NULL OR c.hospital_id = $1)
		ORDER BY c.name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *categoryRepository) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM categories WHERE ($1::BIGINT IS NULL OR hospital_id = $1)`, hospitalID).Scan(&total)
	return total, err
}

func (r *categoryRepository) ExistsByName(ctx context.Context, name string, hospitalID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1 AND hospital_id = $2)`,
		name, hospitalID).Scan(&exists)
	return exists, err
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, updated_at = NOW()
		WHERE public_id = $3
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, category.Name, category.Description, category.PublicID).
		Scan(&category.UpdatedAt)
}

func (r *categoryRepository) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM categories WHERE public_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		publicID, hospitalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
