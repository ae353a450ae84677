package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/caching"
	"hospsupply/internal/services"
)

// Pinger is anything with a health probe. The database pool satisfies it
// directly.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	cache   caching.CacheService
	storage services.StorageService
}

func NewHealthHandler(db Pinger, cache caching.CacheService, storage services.StorageService) *HealthHandler {
	return &HealthHandler{db: db, cache: cache, storage: storage}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/health/ready", h.Ready)
	e.GET("/health/detailed", h.Detailed)
}

// Health is a liveness probe: the process is up.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the database is reachable.
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"reason": "database unreachable",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}

// Detailed checks every dependency. Database failure is fatal (503); a
// degraded cache or storage yields 206 since the core API still works.
func (h *HealthHandler) Detailed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := map[string]string{}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = "up"
	}

	if err := h.cache.Ping(ctx); err != nil {
		checks["redis"] = "down"
		if status == http.StatusOK {
			status = http.StatusPartialContent
		}
	} else {
		checks["redis"] = "up"
	}

	if err := h.storage.Ping(ctx); err != nil {
		checks["storage"] = "down"
		if status == http.StatusOK {
			status = http.StatusPartialContent
		}
	} else {
		checks["storage"] = "up"
	}

	overall := "healthy"
	switch status {
	case http.StatusPartialContent:
		overall = "degraded"
	case http.StatusServiceUnavailable:
		overall = "unhealthy"
	}

	return c.JSON(status, map[string]any{
		"status": overall,
		"checks": checks,
	})
}
