package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.Item, error)
	List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.Item, error)
	Count(ctx context.Context, hospitalID *int64) (int64, error)
	Search(ctx context.Context, term string, hospitalID *int64, offset, limit int) ([]*models.Item, error)
	CountSearch(ctx context.Context, term string, hospitalID *int64) (int64, error)
	ListBySubcategory(ctx context.Context, subcategoryID int64, hospitalID *int64, offset, limit int) ([]*models.Item, error)
	CountBySubcategory(ctx context.Context, subcategoryID int64, hospitalID *int64) (int64, error)
	ExistsByInternalCode(ctx context.Context, internalCode string, hospitalID int64) (bool, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error)
}

type itemRepository struct {
	db Database
}

func NewItemRepository(db Database) ItemRepository {
	return &itemRepository{db: db}
}

const itemSelect = `
	SELECT i.id, i.public_id, i.name, i.similar_names, i.description, i.full_description,
	       i.internal_code, i.presentation, i.sample, i.has_catalog, i.is_active,
	       i.subcategory_id, s.public_id AS subcategory_public_id,
	       i.hospital_id, h.public_id AS hospital_public_id,
	       i.created_at, i.updated_at
	FROM items i
	JOIN subcategories s ON s.id = i.subcategory_id
	JOIN hospitals h ON h.id = i.hospital_id
`

func (r *itemRepository) scan(row interface{ Scan(...any) error }) (*models.Item, error) {
	item := &models.Item{}
	err := row.Scan(&item.ID, &item.PublicID, &item.Name, &item.SimilarNames,
		&item.Description, &item.FullDescription, &item.InternalCode,
		&item.Presentation, &item.Sample, &item.HasCatalog, &item.IsActive,
		&item.SubcategoryID, &item.SubcategoryPublicID,
		&item.HospitalID, &item.HospitalPublicID,
		&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) collect(ctx context.Context, query string, args ...any) ([]*models.Item, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.Item{}
	for rows.Next() {
		item, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	item.PublicID = uuid.New()
	query := `
		INSERT INTO items (public_id, name, similar_names, description, full_description,
		                   internal_code, presentation, sample, has_catalog, is_active,
		                   subcategory_id, hospital_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, item.PublicID, item.Name, item.SimilarNames,
		item.Description, item.FullDescription, item.InternalCode, item.Presentation,
		item.Sample, item.HasCatalog, item.IsActive, item.SubcategoryID, item.HospitalID).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.Item, error) {
	query := itemSelect + ` WHERE i.public_id = $1 AND ($2::BIGINT IS NULL OR i.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, publicID, hospitalID))
}

func (r *itemRepository) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.Item, error) {
	query := itemSelect + `
		WHERE ($1::BIGINT IS NULL OR i.hospital_id = $1)
		ORDER BY i.name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *itemRepository) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE ($1::BIGINT IS NULL OR hospital_id = $1)`, hospitalID).Scan(&total)
	return total, err
}

// Search matches the term against the item name and every similar name.
func (r *itemRepository) Search(ctx context.Context, term string, hospitalID *int64, offset, limit int) ([]*models.Item, error) {
	query := itemSelect + `
		WHERE (i.name ILIKE $1 OR EXISTS (
			SELECT 1 FROM unnest(i.similar_names) AS sn WHERE sn ILIKE $1
		))
		AND ($2::BIGINT IS NULL OR i.hospital_id = $2)
		ORDER BY i.name OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, "%"+term+"%", hospitalID, offset, limit)
}

func (r *itemRepository) CountSearch(ctx context.Context, term string, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM items
		WHERE (name ILIKE $1 OR EXISTS (
			SELECT 1 FROM unnest(similar_names) AS sn WHERE sn ILIKE $1
		))
		AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		"%"+term+"%", hospitalID).Scan(&total)
	return total, err
}

func (r *itemRepository) ListBySubcategory(ctx context.Context, subcategoryID int64, hospitalID *int64, offset, limit int) ([]*models.Item, error) {
	query := itemSelect + `
		WHERE i.subcategory_id = $1 AND ($2::BIGINT IS NULL OR i.hospital_id = $2)
		ORDER BY i.name OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, subcategoryID, hospitalID, offset, limit)
}

func (r *itemRepository) CountBySubcategory(ctx context.Context, subcategoryID int64, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM items WHERE subcategory_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		subcategoryID, hospitalID).Scan(&total)
	return total, err
}

func (r *itemRepository) ExistsByInternalCode(ctx context.Context, internalCode string, hospitalID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE internal_code = $1 AND hospital_id = $2)`,
		internalCode, hospitalID).Scan(&exists)
	return exists, err
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	query := `
		UPDATE items
		SET name = $1, similar_names = $2, description = $3, full_description = $4,
		    internal_code = $5, presentation = $6, sample = $7, has_catalog = $8,
		    is_active = $9, subcategory_id = $10, updated_at = NOW()
		WHERE public_id = $11
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, item.Name, item.SimilarNames, item.Description,
		item.FullDescription, item.InternalCode, item.Presentation, item.Sample,
		item.HasCatalog, item.IsActive, item.SubcategoryID, item.PublicID).
		Scan(&item.UpdatedAt)
}

func (r *itemRepository) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM items WHERE public_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		publicID, hospitalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
