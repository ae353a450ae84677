package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemColumns = []string{
	"id", "public_id", "name", "similar_names", "description", "full_description",
	"internal_code", "presentation", "sample", "has_catalog", "is_active",
	"subcategory_id", "subcategory_public_id", "hospital_id", "hospital_public_id",
	"created_at", "updated_at",
}

func itemRow(rows *pgxmock.Rows, id int64, name string, hospitalID int64) *pgxmock.Rows {
	now := time.Now()
	return rows.AddRow(
		id, uuid.New(), name, []string{}, (*string)(nil), (*string)(nil),
		(*string)(nil), (*string)(nil), (*int)(nil), false, true,
		int64(1), uuid.New(), hospitalID, uuid.New(),
		now, now,
	)
}

func newItemRepoWithMock(t *testing.T) (ItemRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewItemRepository(mock), mock
}

func TestItemRepositoryListScoped(t *testing.T) {
	repo, mock := newItemRepoWithMock(t)
	hospitalID := int64(3)

	mock.ExpectQuery("SELECT .* FROM items i").
		WithArgs(&hospitalID, 0, 10).
		WillReturnRows(itemRow(pgxmock.NewRows(itemColumns), 1, "Seringa 10ml", hospitalID))

	items, err := repo.List(context.Background(), &hospitalID, 0, 10)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Seringa 10ml", items[0].Name)
	assert.Equal(t, hospitalID, items[0].HospitalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepositoryListUnscoped(t *testing.T) {
	repo, mock := newItemRepoWithMock(t)

	rows := pgxmock.NewRows(itemColumns)
	itemRow(rows, 1, "Seringa 10ml", 3)
	itemRow(rows, 2, "Luva M", 4)

	mock.ExpectQuery("SELECT .* FROM items i").
		WithArgs((*int64)(nil), 0, 10).
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), nil, 0, 10)

	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepositorySearchMatchesSimilarNames(t *testing.T) {
	repo, mock := newItemRepoWithMock(t)
	hospitalID := int64(3)

	mock.ExpectQuery("SELECT .* FROM items i").
		WithArgs("%soro%", &hospitalID, 0, 10).
		WillReturnRows(itemRow(pgxmock.NewRows(itemColumns), 1, "Soro Fisiológico", hospitalID))

	items, err := repo.Search(context.Background(), "soro", &hospitalID, 0, 10)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepositoryExistsByInternalCode(t *testing.T) {
	repo, mock := newItemRepoWithMock(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("IC-001", int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByInternalCode(context.Background(), "IC-001", 3)

	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepositoryDeleteScoped(t *testing.T) {
	repo, mock := newItemRepoWithMock(t)
	publicID := uuid.New()
	hospitalID := int64(3)

	mock.ExpectExec("DELETE FROM items").
		WithArgs(publicID, &hospitalID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	deleted, err := repo.Delete(context.Background(), publicID, &hospitalID)

	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
