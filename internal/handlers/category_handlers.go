package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type CategoryHandler struct {
	categories services.CategoryService
}

func NewCategoryHandler(categories services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/name/:name", h.GetByName)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	var input services.CategoryInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	category, err := h.categories.Create(c.Request().Context(), scope, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	result, err := h.categories.List(c.Request().Context(), scope, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.categories.Get(c.Request().Context(), scope, id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) GetByName(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	category, err := h.categories.GetByName(c.Request().Context(), scope, c.Param("name"))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.CategoryInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	category, err := h.categories.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.categories.Delete(c.Request().Context(), scope, id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
