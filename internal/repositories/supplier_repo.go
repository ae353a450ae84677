package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.Supplier, error)
	List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.Supplier, error)
	Count(ctx context.Context, hospitalID *int64) (int64, error)
	Search(ctx context.Context, term string, hospitalID *int64, offset, limit int) ([]*models.Supplier, error)
	CountSearch(ctx context.Context, term string, hospitalID *int64) (int64, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error)
}

type supplierRepository struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepository{db: db}
}

const supplierSelect = `
	SELECT sp.id, sp.public_id, sp.name, sp.document_type, sp.document, sp.email, sp.phone,
	       sp.hospital_id, h.public_id AS hospital_public_id,
	       sp.created_at, sp.updated_at
	FROM suppliers sp
	JOIN hospitals h ON h.id = sp.hospital_id
`

func (r *supplierRepository) scan(row interface{ Scan(...any) error }) (*models.Supplier, error) {
	s := &models.Supplier{}
	err := row.Scan(&s.ID, &s.PublicID, &s.Name, &s.DocumentType, &s.Document, &s.Email, &s.Phone,
		&s.HospitalID, &s.HospitalPublicID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *supplierRepository) collect(ctx context.Context, query string, args ...any) ([]*models.Supplier, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := []*models.Supplier{}
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	supplier.PublicID = uuid.New()
	query := `
		INSERT INTO suppliers (public_id, name, document_type, document, email, phone, hospital_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, supplier.PublicID, supplier.Name, supplier.DocumentType,
		supplier.Document, supplier.Email, supplier.Phone, supplier.HospitalID).
		Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
}

func (r *supplierRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.Supplier, error) {
	query := supplierSelect + ` WHERE sp.public_id = $1 AND ($2::BIGINT IS NULL OR sp.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, publicID, hospitalID))
}

func (r *supplierRepository) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.Supplier, error) {
	query := supplierSelect + `
		WHERE ($1::BIGINT IS NULL OR sp.hospital_id = $1)
		ORDER BY sp.name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *supplierRepository) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM suppliers WHERE ($1::BIGINT IS NULL OR hospital_id = $1)`, hospitalID).Scan(&total)
	return total, err
}

func (r *supplierRepository) Search(ctx context.Context, term string, hospitalID *int64, offset, limit int) ([]*models.Supplier, error) {
	query := supplierSelect + `
		WHERE sp.name ILIKE $1 AND ($2::BIGINT IS NULL OR sp.hospital_id = $2)
		ORDER BY sp.name OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, "%"+term+"%", hospitalID, offset, limit)
}

func (r *supplierRepository) CountSearch(ctx context.Context, term string, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM suppliers WHERE name ILIKE $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		"%"+term+"%", hospitalID).Scan(&total)
	return total, err
}

func (r *supplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, document_type = $2, document = $3, email = $4, phone = $5, updated_at = NOW()
		WHERE public_id = $6
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, supplier.Name, supplier.DocumentType, supplier.Document,
		supplier.Email, supplier.Phone, supplier.PublicID).
		Scan(&supplier.UpdatedAt)
}

func (r *supplierRepository) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM suppliers WHERE public_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		publicID, hospitalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
