package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

// ItemPublicAcquisitionRepository joins items to acquisitions. Rows inherit
// their hospital scope from the item side of the join.
type ItemPublicAcquisitionRepository interface {
	Create(ctx context.Context, ipa *models.ItemPublicAcquisition) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.ItemPublicAcquisition, error)
	List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.ItemPublicAcquisition, error)
	Count(ctx context.Context, hospitalID *int64) (int64, error)
	ListByAcquisition(ctx context.Context, acquisitionID int64, hospitalID *int64, offset, limit int) ([]*models.ItemPublicAcquisition, error)
	CountByAcquisition(ctx context.Context, acquisitionID int64, hospitalID *int64) (int64, error)
	ListByItem(ctx context.Context, itemID int64, hospitalID *int64, offset, limit int) ([]*models.ItemPublicAcquisition, error)
	CountByItem(ctx context.Context, itemID int64, hospitalID *int64) (int64, error)
	Update(ctx context.Context, ipa *models.ItemPublicAcquisition) error
	Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error)
}

type itemPublicAcquisitionRepository struct {
	db Database
}

func NewItemPublicAcquisitionRepository(db Database) ItemPublicAcquisitionRepository {
	return &itemPublicAcquisitionRepository{db: db}
}

const ipaSelect = `
	SELECT ipa.id, ipa.public_id, ipa.is_holder,
	       ipa.item_id, i.public_id AS item_public_id, i.name AS item_name,
	       ipa.public_acquisition_id, pa.public_id AS acquisition_public_id,
	       ipa.supplier_id, sp.public_id AS supplier_public_id, sp.name AS supplier_name,
	       ipa.created_at, ipa.updated_at
	FROM items_public_acquisitions ipa
	JOIN items i ON i.id = ipa.item_id
	JOIN public_acquisitions pa ON pa.id = ipa.public_acquisition_id
	JOIN suppliers sp ON sp.id = ipa.supplier_id
`

func (r *itemPublicAcquisitionRepository) scan(row interface{ Scan(...any) error }) (*models.ItemPublicAcquisition, error) {
	ipa := &models.ItemPublicAcquisition{}
	err := row.Scan(&ipa.ID, &ipa.PublicID, &ipa.IsHolder,
		&ipa.ItemID, &ipa.ItemPublicID, &ipa.ItemName,
		&ipa.PublicAcquisitionID, &ipa.PublicAcquisitionPublicID,
		&ipa.SupplierID, &ipa.SupplierPublicID, &ipa.SupplierName,
		&ipa.CreatedAt, &ipa.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return ipa, nil
}

func (r *itemPublicAcquisitionRepository) collect(ctx context.Context, query string, args ...any) ([]*models.ItemPublicAcquisition, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := []*models.ItemPublicAcquisition{}
	for rows.Next() {
		ipa, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, ipa)
	}
	return links, rows.Err()
}

func (r *itemPublicAcquisitionRepository) Create(ctx context.Context, ipa *models.ItemPublicAcquisition) error {
	ipa.PublicID = uuid.New()
	query := `
		INSERT INTO items_public_acquisitions (public_id, is_holder, item_id, public_acquisition_id, supplier_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, ipa.PublicID, ipa.IsHolder, ipa.ItemID,
		ipa.PublicAcquisitionID, ipa.SupplierID).
		Scan(&ipa.ID, &ipa.CreatedAt, &ipa.UpdatedAt)
}

func (r *itemPublicAcquisitionRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.ItemPublicAcquisition, error) {
	query := ipaSelect + ` WHERE ipa.public_id = $1 AND ($2::BIGINT IS NULL OR i.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, publicID, hospitalID))
}

func (r *itemPublicAcquisitionRepository) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.ItemPublicAcquisition, error) {
	query := ipaSelect + `
		WHERE ($1::BIGINT IS NULL OR i.hospital_id = $1)
		ORDER BY ipa.created_at DESC OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *itemPublicAcquisitionRepository) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM items_public_acquisitions ipa
		JOIN items i ON i.id = ipa.item_id
		WHERE ($1::BIGINT IS NULL OR i.hospital_id = $1)`, hospitalID).Scan(&total)
	return total, err
}

func (r *itemPublicAcquisitionRepository) ListByAcquisition(ctx context.Context, acquisitionID int64, hospitalID *int64, offset, limit int) ([]*models.ItemPublicAcquisition, error) {
	query := ipaSelect + `
		WHERE ipa.public_acquisition_id = $1 AND ($2::BIGINT IS NULL OR i.hospital_id = $2)
		ORDER BY i.name OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, acquisitionID, hospitalID, offset, limit)
}

func (r *itemPublicAcquisitionRepository) CountByAcquisition(ctx context.Context, acquisitionID int64, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM items_public_acquisitions ipa
		JOIN items i ON i.id = ipa.item_id
		WHERE ipa.public_acquisition_id = $1 AND ($2::BIGINT IS NULL OR i.hospital_id = $2)`,
		acquisitionID, hospitalID).Scan(&total)
	return total, err
}

func (r *itemPublicAcquisitionRepository) ListByItem(ctx context.Context, itemID int64, hospitalID *int64, offset, limit int) ([]*models.ItemPublicAcquisition, error) {
	query := ipaSelect + `
		WHERE ipa.item_id = $1 AND ($2::BIGINT IS NULL OR i.hospital_id = $2)
		ORDER BY ipa.created_at DESC OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, itemID, hospitalID, offset, limit)
}

func (r *itemPublicAcquisitionRepository) CountByItem(ctx context.Context, itemID int64, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM items_public_acquisitions ipa
		JOIN items i ON i.id = ipa.item_id
		WHERE ipa.item_id = $1 AND ($2::BIGINT IS NULL OR i.hospital_id = $2)`,
		itemID, hospitalID).Scan(&total)
	return total, err
}

func (r *itemPublicAcquisitionRepository) Update(ctx context.Context, ipa *models.ItemPublicAcquisition) error {
	query := `
		UPDATE items_public_acquisitions
		SET is_holder = $1, supplier_id = $2, updated_at = NOW()
		WHERE public_id = $3
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, ipa.IsHolder, ipa.SupplierID, ipa.PublicID).
		Scan(&ipa.UpdatedAt)
}

func (r *itemPublicAcquisitionRepository) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM items_public_acquisitions ipa
		USING items i
		WHERE ipa.item_id = i.id AND ipa.public_id = $1
		AND ($2::BIGINT IS NULL OR i.hospital_id = $2)`,
		publicID, hospitalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
