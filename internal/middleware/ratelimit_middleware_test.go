package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"hospsupply/internal/caching"
)

// fakeCache overrides just the counter; the embedded interface panics if the
// middleware ever touches anything else.
type fakeCache struct {
	caching.CacheService
	count int64
	err   error
}

func (f *fakeCache) IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.count++
	return f.count, nil
}

func runRateLimited(t *testing.T, cache caching.CacheService, path string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RateLimiter(cache, zap.NewNop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	assert.NoError(t, handler(c))
	return rec
}

func TestRateLimiterSetsHeaders(t *testing.T) {
	rec := runRateLimited(t, &fakeCache{}, "/items")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "200", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "199", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	cache := &fakeCache{count: DefaultRateLimit.Requests} // next request exceeds
	rec := runRateLimited(t, cache, "/items")

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "retry_after")
}

func TestRateLimiterFailsOpen(t *testing.T) {
	cache := &fakeCache{err: errors.New("redis down")}
	rec := runRateLimited(t, cache, "/items")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
