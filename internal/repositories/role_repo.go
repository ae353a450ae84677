package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Role, error)
	GetByName(ctx context.Context, name string) (*models.Role, error)
	List(ctx context.Context, offset, limit int) ([]*models.Role, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, role *models.Role) error
	Delete(ctx context.Context, publicID uuid.UUID) (bool, error)
}

type roleRepository struct {
	db Database
}

func NewRoleRepository(db Database) RoleRepository {
	return &roleRepository{db: db}
}

const roleColumns = `id, public_id, name, description, created_at, updated_at`

func (r *roleRepository) scanRole(row interface{ Scan(...any) error }) (*models.Role, error) {
	role := &models.Role{}
	err := row.Scan(&role.ID, &role.PublicID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) Create(ctx context.Context, role *models.Role) error {
	role.PublicID = uuid.New()
	query := `
		INSERT INTO roles (public_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, role.PublicID, role.Name, role.Description).
		Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
}

func (r *roleRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE public_id = $1`
	return r.scanRole(r.db.QueryRow(ctx, query, publicID))
}

func (r *roleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE name = $1`
	return r.scanRole(r.db.QueryRow(ctx, query, name))
}

func (r *roleRepository) List(ctx context.Context, offset, limit int) ([]*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles ORDER BY name OFFSET $1 LIMIT $2`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		role, err := r.scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *roleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&total)
	return total, err
}

func (r *roleRepository) Update(ctx context.Context, role *models.Role) error {
	query := `
		UPDATE roles
		SET name = $1, description = $2, updated_at = NOW()
		WHERE public_id = $3
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, role.Name, role.Description, role.PublicID).Scan(&role.UpdatedAt)
}

func (r *roleRepository) Delete(ctx context.Context, publicID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM roles WHERE public_id = $1`, publicID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
