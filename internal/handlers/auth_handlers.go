package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/auth"
	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// RegisterRoutes mounts the auth endpoints on an unauthenticated group.
func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("", h.Login)
	g.GET("/verify", h.Verify)
	g.POST("/refresh", h.Refresh)
}

type loginRequest struct {
	Email    string `json:"email" form:"username"`
	Password string `json:"password" form:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "email and password are required")
	}

	tokens, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrInactiveUser) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}

func (h *AuthHandler) Verify(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if after, found := cutBearer(header); found {
			token = after
		}
	}
	if token == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "token is required")
	}

	info, err := h.auth.Verify(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}
	return c.JSON(http.StatusOK, info)
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "refresh_token is required")
	}

	tokens, err := h.auth.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrWrongType) ||
			errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrInactiveUser) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid refresh token")
		}
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, tokens)
}

func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):], true
	}
	return "", false
}
