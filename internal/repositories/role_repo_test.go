package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospsupply/internal/models"
)

func newRoleRepoWithMock(t *testing.T) (RoleRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewRoleRepository(mock), mock
}

func TestRoleRepositoryCreate(t *testing.T) {
	repo, mock := newRoleRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO roles")).
		WithArgs(pgxmock.AnyArg(), "Comprador", (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(5), now, now))

	role := &models.Role{Name: "Comprador"}
	err := repo.Create(context.Background(), role)

	require.NoError(t, err)
	assert.Equal(t, int64(5), role.ID)
	assert.NotEqual(t, uuid.Nil, role.PublicID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepositoryGetByName(t *testing.T) {
	repo, mock := newRoleRepoWithMock(t)
	publicID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, public_id, name, description, created_at, updated_at FROM roles WHERE name = $1")).
		WithArgs("Comprador").
		WillReturnRows(pgxmock.NewRows([]string{"id", "public_id", "name", "description", "created_at", "updated_at"}).
			AddRow(int64(5), publicID, "Comprador", (*string)(nil), now, now))

	role, err := repo.GetByName(context.Background(), "Comprador")

	require.NoError(t, err)
	assert.Equal(t, publicID, role.PublicID)
	assert.Equal(t, "Comprador", role.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepositoryGetByNameNotFound(t *testing.T) {
	repo, mock := newRoleRepoWithMock(t)

	mock.ExpectQuery("SELECT .* FROM roles WHERE name").
		WithArgs("Fantasma").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByName(context.Background(), "Fantasma")

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepositoryList(t *testing.T) {
	repo, mock := newRoleRepoWithMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM roles ORDER BY name").
		WithArgs(0, 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "public_id", "name", "description", "created_at", "updated_at"}).
			AddRow(int64(1), uuid.New(), "Comprador", (*string)(nil), now, now).
			AddRow(int64(2), uuid.New(), "Gestor", (*string)(nil), now, now))

	roles, err := repo.List(context.Background(), 0, 10)

	require.NoError(t, err)
	assert.Len(t, roles, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepositoryDelete(t *testing.T) {
	repo, mock := newRoleRepoWithMock(t)
	publicID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM roles WHERE public_id = $1")).
		WithArgs(publicID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	deleted, err := repo.Delete(context.Background(), publicID)

	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleRepositoryDeleteMissing(t *testing.T) {
	repo, mock := newRoleRepoWithMock(t)
	publicID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM roles WHERE public_id = $1")).
		WithArgs(publicID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), publicID)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
