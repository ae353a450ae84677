package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterRoutes mounts the catalog endpoints. The catalog is global
// reference data, so writes take the extra guard while reads stay open to
// every authenticated user.
func (h *CatalogHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/name/:name", h.GetByName)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *CatalogHandler) Create(c echo.Context) error {
	var input services.CatalogInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	entry, err := h.catalog.Create(c.Request().Context(), input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, entry)
}

func (h *CatalogHandler) List(c echo.Context) error {
	result, err := h.catalog.List(c.Request().Context(), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) Search(c echo.Context) error {
	result, err := h.catalog.Search(c.Request().Context(), c.QueryParam("q"), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) GetByName(c echo.Context) error {
	entry, err := h.catalog.GetByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	entry, err := h.catalog.Get(c.Request().Context(), id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.CatalogInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	entry, err := h.catalog.Update(c.Request().Context(), id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalog.Delete(c.Request().Context(), id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
