package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/models"
)

// RequireRoles restricts a route to the named roles. The developer role
// always passes. Must run after JWTAuth.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := common.GetUserFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if user.RoleName == models.DeveloperRole {
				return next(c)
			}
			if _, ok := allowed[user.RoleName]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// RequireDeveloper restricts a route to the developer role.
func RequireDeveloper() echo.MiddlewareFunc {
	return RequireRoles()
}
