package repositories

import (
	"context"

	"github.com/google/uuid"

	"hospsupply/internal/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.User, error)
	Count(ctx context.Context, hospitalID *int64) (int64, error)
	ListByRole(ctx context.Context, roleID int64, hospitalID *int64, offset, limit int) ([]*models.User, error)
	CountByRole(ctx context.Context, roleID int64, hospitalID *int64) (int64, error)
	ListByJobTitle(ctx context.Context, jobTitleID int64, hospitalID *int64, offset, limit int) ([]*models.User, error)
	CountByJobTitle(ctx context.Context, jobTitleID int64, hospitalID *int64) (int64, error)
	ListByHospital(ctx context.Context, hospitalID int64, offset, limit int) ([]*models.User, error)
	CountByHospital(ctx context.Context, hospitalID int64) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error)
}

type userRepository struct {
	db Database
}

func NewUserRepository(db Database) UserRepository {
	return &userRepository{db: db}
}

// Every read joins the reference tables so the service layer never needs a
// second round trip to expose role/job title/hospital public ids.
const userSelect = `
	SELECT u.id, u.public_id, u.name, u.email, u.password, u.phone, u.is_active,
	       u.role_id, u.job_title_id, u.hospital_id,
	       r.name AS role_name, r.public_id AS role_public_id,
	       jt.public_id AS job_title_public_id,
	       h.public_id AS hospital_public_id,
	       u.created_at, u.updated_at
	FROM users u
	JOIN roles r ON r.id = u.role_id
	LEFT JOIN job_titles jt ON jt.id = u.job_title_id
	LEFT JOIN hospitals h ON h.id = u.hospital_id
`

func (r *userRepository) scan(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(&u.ID, &u.PublicID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.IsActive,
		&u.RoleID, &u.JobTitleID, &u.HospitalID,
		&u.RoleName, &u.RolePublicID, &u.JobTitlePublicID, &u.HospitalPublicID,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) collect(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	user.PublicID = uuid.New()
	query := `
		INSERT INTO users (public_id, name, email, password, phone, is_active, role_id, job_title_id, hospital_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, query, user.PublicID, user.Name, user.Email, user.PasswordHash,
		user.Phone, user.IsActive, user.RoleID, user.JobTitleID, user.HospitalID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) GetByPublicID(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (*models.User, error) {
	query := userSelect + ` WHERE u.public_id = $1 AND ($2::BIGINT IS NULL OR u.hospital_id = $2)`
	return r.scan(r.db.QueryRow(ctx, query, publicID, hospitalID))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := userSelect + ` WHERE u.email = $1`
	return r.scan(r.db.QueryRow(ctx, query, email))
}

func (r *userRepository) List(ctx context.Context, hospitalID *int64, offset, limit int) ([]*models.User, error) {
	query := userSelect + `
		WHERE ($1::BIGINT IS NULL OR u.hospital_id = $1)
		ORDER BY u.name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *userRepository) Count(ctx context.Context, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE ($1::BIGINT IS NULL OR hospital_id = $1)`, hospitalID).Scan(&total)
	return total, err
}

func (r *userRepository) ListByRole(ctx context.Context, roleID int64, hospitalID *int64, offset, limit int) ([]*models.User, error) {
	query := userSelect + `
		WHERE u.role_id = $1 AND ($2::BIGINT IS NULL OR u.hospital_id = $2)
		ORDER BY u.name OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, roleID, hospitalID, offset, limit)
}

func (r *userRepository) CountByRole(ctx context.Context, roleID int64, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		roleID, hospitalID).Scan(&total)
	return total, err
}

func (r *userRepository) ListByJobTitle(ctx context.Context, jobTitleID int64, hospitalID *int64, offset, limit int) ([]*models.User, error) {
	query := userSelect + `
		WHERE u.job_title_id = $1 AND ($2::BIGINT IS NULL OR u.hospital_id = $2)
		ORDER BY u.name OFFSET $3 LIMIT $4`
	return r.collect(ctx, query, jobTitleID, hospitalID, offset, limit)
}

func (r *userRepository) CountByJobTitle(ctx context.Context, jobTitleID int64, hospitalID *int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE job_title_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		jobTitleID, hospitalID).Scan(&total)
	return total, err
}

func (r *userRepository) ListByHospital(ctx context.Context, hospitalID int64, offset, limit int) ([]*models.User, error) {
	query := userSelect + ` WHERE u.hospital_id = $1 ORDER BY u.name OFFSET $2 LIMIT $3`
	return r.collect(ctx, query, hospitalID, offset, limit)
}

func (r *userRepository) CountByHospital(ctx context.Context, hospitalID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE hospital_id = $1`, hospitalID).Scan(&total)
	return total, err
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3, phone = $4, is_active = $5,
		    role_id = $6, job_title_id = $7, hospital_id = $8, updated_at = NOW()
		WHERE public_id = $9
		RETURNING updated_at
	`
	return r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.Phone,
		user.IsActive, user.RoleID, user.JobTitleID, user.HospitalID, user.PublicID).
		Scan(&user.UpdatedAt)
}

func (r *userRepository) Delete(ctx context.Context, publicID uuid.UUID, hospitalID *int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM users WHERE public_id = $1 AND ($2::BIGINT IS NULL OR hospital_id = $2)`,
		publicID, hospitalID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
