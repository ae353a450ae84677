package middleware

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hospsupply/internal/caching"
	"hospsupply/internal/common"
)

// RateLimit is a fixed-window policy: at most Requests per Window.
type RateLimit struct {
	Requests int64
	Window   time.Duration
}

// DefaultRateLimit applies to every route without a specific entry.
var DefaultRateLimit = RateLimit{Requests: 200, Window: time.Minute}

// RouteLimits maps routes to their rate limits. A "METHOD path" key beats a
// bare path key; paths are matched after sanitization, so numeric and UUID
// segments collapse into {id} and {uuid}.
var RouteLimits = map[string]RateLimit{
	"POST /auth":    {Requests: 5, Window: 5 * time.Minute},
	"/auth/refresh": {Requests: 10, Window: 5 * time.Minute},
}

var (
	uuidSegment    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	numericSegment = regexp.MustCompile(`^\d+$`)
)

// sanitizePath collapses identifier segments so every instance of a route
// shares one counter.
func sanitizePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		switch {
		case uuidSegment.MatchString(seg):
			segments[i] = "{uuid}"
		case numericSegment.MatchString(seg):
			segments[i] = "{id}"
		}
	}
	return strings.Join(segments, "/")
}

// limitFor resolves the limit for a request: exact "METHOD path" first,
// then bare path, then the default.
func limitFor(method, sanitized string) RateLimit {
	if limit, ok := RouteLimits[method+" "+sanitized]; ok {
		return limit
	}
	if limit, ok := RouteLimits[sanitized]; ok {
		return limit
	}
	return DefaultRateLimit
}

// RateLimiter enforces per-subject fixed-window rate limits backed by Redis.
// Authenticated requests are keyed by user; anonymous ones by client IP.
// Redis failures let the request through: rate limiting is protection, not a
// point of failure.
func RateLimiter(cache caching.CacheService, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sanitized := sanitizePath(c.Request().URL.Path)
			limit := limitFor(c.Request().Method, sanitized)

			subject := "ip_" + c.RealIP()
			if user, ok := common.GetUserFromContext(c.Request().Context()); ok {
				subject = user.PublicID.String()
			}

			windowStart := time.Now().Unix() / int64(limit.Window.Seconds()) * int64(limit.Window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%s:%d", subject, sanitized, windowStart)

			count, err := cache.IncrementWindow(c.Request().Context(), key, limit.Window)
			if err != nil {
				logger.Warn("rate limiter unavailable, letting request through", zap.Error(err))
				return next(c)
			}

			remaining := limit.Requests - count
			if remaining < 0 {
				remaining = 0
			}
			reset := windowStart + int64(limit.Window.Seconds())

			c.Response().Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit.Requests, 10))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

			if count > limit.Requests {
				retryAfter := reset - time.Now().Unix()
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("Retry-After", strconv.FormatInt(retryAfter, 10))
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"detail":      "Rate limit exceeded",
					"retry_after": retryAfter,
				})
			}
			return next(c)
		}
	}
}
