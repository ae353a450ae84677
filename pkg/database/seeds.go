package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"hospsupply/internal/auth"
	"hospsupply/internal/models"
)

// Seed inserts the default role, hospital, job title and developer user.
// Every insert is idempotent so the function is safe to run on each start.
func Seed(ctx context.Context, pool *pgxpool.Pool, devEmail, devPassword string, logger *zap.Logger) error {
	var roleID int64
	err := pool.QueryRow(ctx, `SELECT id FROM roles WHERE name = $1`, models.DeveloperRole).Scan(&roleID)
	if err != nil {
		logger.Info("creating developer role")
		err = pool.QueryRow(ctx, `
			INSERT INTO roles (public_id, name, description)
			VALUES ($1, $2, 'Acesso total ao sistema')
			RETURNING id
		`, uuid.New(), models.DeveloperRole).Scan(&roleID)
		if err != nil {
			return err
		}
	}

	var hospitalID int64
	err = pool.QueryRow(ctx, `SELECT id FROM hospitals WHERE name = 'Hospital Padrão'`).Scan(&hospitalID)
	if err != nil {
		logger.Info("creating default hospital")
		err = pool.QueryRow(ctx, `
			INSERT INTO hospitals (public_id, name, nationality, document_type, document, email, phone, city)
			VALUES ($1, 'Hospital Padrão', 'Brasileira', 'CNPJ', '00.000.000/0001-00', 'contato@hospitalpadrao.com', '(11) 99999-9999', 'São Paulo')
			RETURNING id
		`, uuid.New()).Scan(&hospitalID)
		if err != nil {
			return err
		}
	}

	var jobTitleID int64
	err = pool.QueryRow(ctx, `SELECT id FROM job_titles WHERE title = 'Desenvolvedor Full Stack'`).Scan(&jobTitleID)
	if err != nil {
		logger.Info("creating default job title")
		err = pool.QueryRow(ctx, `
			INSERT INTO job_titles (public_id, title, department, seniority_level)
			VALUES ($1, 'Desenvolvedor Full Stack', 'Tecnologia', 'Senior')
			RETURNING id
		`, uuid.New()).Scan(&jobTitleID)
		if err != nil {
			return err
		}
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, devEmail).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if devPassword == "" {
		logger.Warn("DEV_PASSWORD not set, skipping developer user seed")
		return nil
	}

	hashed, err := auth.HashPassword(devPassword)
	if err != nil {
		return err
	}

	logger.Info("creating developer user", zap.String("email", devEmail))
	_, err = pool.Exec(ctx, `
		INSERT INTO users (public_id, name, email, password, phone, is_active, role_id, job_title_id, hospital_id)
		VALUES ($1, 'Desenvolvedor', $2, $3, '(11) 99999-9999', TRUE, $4, $5, $6)
	`, uuid.New(), devEmail, hashed, roleID, jobTitleID, hospitalID)
	return err
}
