package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type RoleHandler struct {
	roles services.RoleService
}

func NewRoleHandler(roles services.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// RegisterRoutes mounts the role endpoints. Mutations take the extra guard
// so role management stays restricted.
func (h *RoleHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/name/:name", h.GetByName)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *RoleHandler) Create(c echo.Context) error {
	var input services.RoleInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	role, err := h.roles.Create(c.Request().Context(), input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) List(c echo.Context) error {
	result, err := h.roles.List(c.Request().Context(), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	role, err := h.roles.Get(c.Request().Context(), id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) GetByName(c echo.Context) error {
	role, err := h.roles.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.RoleInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	role, err := h.roles.Update(c.Request().Context(), id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.roles.Delete(c.Request().Context(), id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
