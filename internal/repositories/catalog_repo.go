package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

// CatalogRepository handles the global reference catalog. Catalog rows are
// not hospital-scoped, so there is no hospital filter here.
type CatalogRepository interface {
	Create(ctx context.Context, entry *models.CatalogEntry) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.CatalogEntry, error)
	GetByName(ctx context.Context, name string) (*models.CatalogEntry, error)
	List(ctx context.Context, offset, limit int) ([]*models.CatalogEntry, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, term string, offset, limit int) ([]*models.CatalogEntry, error)
	CountSearch(ctx context.Context, term string) (int64, error)
	ExistsByInternalCode(ctx context.Context, internalCode string) (bool, error)
	Update(ctx context.Context, entry *models.CatalogEntry) error
	Delete(ctx context.Context, publicID uuid.UUID) (bool, error)
}

type catalogRepository struct {
	db Database
}

func NewCatalogRepository(db Database) CatalogRepository {
	return &catalogRepository{db: db}
}

const catalogSelect = `
	SELECT e.id, e.public_id, e.name, e.description, e.full_description,
	       e.internal_code, e.presentation, e.sample, e.is_active,
	       e.category_id, c.public_id AS category_public_id,
	       e.subcategory_id, s.public_id AS subcategory_public_id,
	       e.created_at, e.updated_at
	FROM catalog e
	JOIN categories c ON c.id = e.category_id
	LEFT JOIN subcategories s ON s.id = e.subcategory_id
`

func (r *catalogRepository) scan(row interface{ Scan(...any) error }) (*models.CatalogEntry, error) {
	e := &models.CatalogEntry{}
	err := row.Scan(&e.ID, &e.PublicID, &e.Name, &e.Description, &e.FullDescription,
		&e.InternalCode, &e.Presentation, &e.Sample, &e.IsActive,
		&e.CategoryID, &e.CategoryPublicID,
		&e.SubcategoryID, &e.SubcategoryPublicID,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *catalogRepository) collect(ctx context.Context, query string, args ...any) ([]*models.CatalogEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.CatalogEntry{}
	for rows.Next() {
		e, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *catalogRepository) Create(ctx context.Context, entry *models.CatalogEntry) error {
	entry.PublicID = uuid.New()
	query := `
		INSERT INTO catalog (public_id, name, description, full_description, internal_code,
		                     presentation, sample, is_active, category_id, subcategory_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, entry.PublicID, entry.Name, entry.Description,
		entry.FullDescription, entry.InternalCode, entry.Presentation, entry.Sample,
		entry.IsActive, entry.CategoryID, entry.SubcategoryID).
		Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
}

func (r *catalogRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.CatalogEntry, error) {
	query := catalogSelect + ` WHERE e.public_id = $1`
	return r.scan(r.db.QueryRow(ctx, query, publicID))
}

func (r *catalogRepository) GetByName(ctx context.Context, name string) (*models.CatalogEntry, error) {
	query := catalogSelect + ` WHERE e.name ILIKE $1 ORDER BY e.name LIMIT 1`
	return r.scan(r.db.QueryRow(ctx, query, name))
}

func (r *catalogRepository) List(ctx context.Context, offset, limit int) ([]*models.CatalogEntry, error) {
	query := catalogSelect + ` ORDER BY e.name OFFSET $1 LIMIT $2`
	return r.collect(ctx, query, offset, limit)
}

func (r *catalogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM catalog`).Scan(&total)
	return total, err
}

func (r *catalogRepository) Search(ctx context.Context, term string, offset, limit int) ([]*models.CatalogEntry, error) {
	query := catalogSelect + ` WHERE e.name ILIKE $1 ORDER BY e.name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, "%"+term+"%", offset, limit)
}

func (r *catalogRepository) CountSearch(ctx context.Context, term string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM catalog WHERE name ILIKE $1`, "%"+term+"%").Scan(&total)
	return total, err
}

func (r *catalogRepository) ExistsByInternalCode(ctx context.Context, internalCode string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM catalog WHERE internal_code = $1)`, internalCode).Scan(&exists)
	return exists, err
}

func (r *catalogRepository) Update(ctx context.Context, entry *models.CatalogEntry) error {
	query := `
		UPDATE catalog
		SET name = $1, description = $2, full_description = $3, internal_code = $4,
		    presentation = $5, sample = $6, is_active = $7, category_id = $8,
		    subcategory_id = $9, updated_at = NOW()
		WHERE public_id = $10
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, entry.Name, entry.Description, entry.FullDescription,
		entry.InternalCode, entry.Presentation, entry.Sample, entry.IsActive,
		entry.CategoryID, entry.SubcategoryID, entry.PublicID).
		Scan(&entry.UpdatedAt)
}

func (r *catalogRepository) Delete(ctx context.Context, publicID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM catalog WHERE public_id = $1`, publicID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
