package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNoRowsUpdated signals that an UPDATE touched nothing, which the
// services treat the same as a missing row.
var ErrNoRowsUpdated = errors.New("no rows updated")

// Database is the subset of pgxpool.Pool the repositories use. Tests
// substitute a pgxmock pool through this interface.
type Database interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
