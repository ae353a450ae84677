package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", NotFoundf("item %d missing", 7), http.StatusNotFound},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"conflict", Conflictf("email taken"), http.StatusConflict},
		{"unique violation", &pgconn.PgError{Code: "23505"}, http.StatusConflict},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), http.StatusConflict},
		{"other pg error", &pgconn.PgError{Code: "23503"}, http.StatusInternalServerError},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"validation", Validationf("name is required"), http.StatusUnprocessableEntity},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			httpErr := ToHTTPError(tc.err)
			assert.Equal(t, tc.code, httpErr.Code)
		})
	}
}

func TestToHTTPErrorHidesInternals(t *testing.T) {
	httpErr := ToHTTPError(errors.New("pq: connection refused at 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, "operation could not be completed", httpErr.Message)
}
