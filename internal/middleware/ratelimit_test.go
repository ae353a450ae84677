package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/items", "/items"},
		{"/items/42", "/items/{id}"},
		{"/items/7c9e6679-7425-40de-944b-e07fc1f90ae7", "/items/{uuid}"},
		{"/users/role/123/extra", "/users/role/{id}/extra"},
		{"/public-acquisitions/year/2024", "/public-acquisitions/year/{id}"},
		{"/", "/"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitizePath(tc.in), tc.in)
	}
}

func TestLimitFor(t *testing.T) {
	// Exact method+path match wins.
	limit := limitFor("POST", "/auth")
	assert.Equal(t, int64(5), limit.Requests)
	assert.Equal(t, 5*time.Minute, limit.Window)

	// Bare path match.
	limit = limitFor("POST", "/auth/refresh")
	assert.Equal(t, int64(10), limit.Requests)

	// GET /auth has no method-specific entry and no bare entry either.
	limit = limitFor("GET", "/auth")
	assert.Equal(t, DefaultRateLimit, limit)

	// Everything else falls back to the default.
	limit = limitFor("GET", "/items/{uuid}")
	assert.Equal(t, DefaultRateLimit, limit)
}
