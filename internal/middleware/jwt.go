package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hospsupply/internal/auth"
	"hospsupply/internal/common"
	"hospsupply/internal/repositories"
)

// JWTAuth validates the bearer token and loads the authenticated user into
// the request context. The user is fetched on every request so deactivation
// and role changes apply immediately, not at token expiry.
func JWTAuth(tokens *auth.TokenManager, users repositories.UserRepository, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := extractBearer(c)
			if err != nil {
				return err
			}

			claims, err := tokens.VerifyToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			if claims.Type == "refresh" {
				return echo.NewHTTPError(http.StatusUnauthorized, "refresh tokens cannot be used for authentication")
			}

			user, err := users.GetByEmail(c.Request().Context(), claims.Subject)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user no longer exists")
				}
				logger.Error("user lookup failed during authentication", zap.Error(err))
				return echo.NewHTTPError(http.StatusInternalServerError, "authentication failed")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "inactive user")
			}

			ctx := common.WithUser(c.Request().Context(), user)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func extractBearer(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
