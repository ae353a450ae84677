package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type ItemHandler struct {
	items services.ItemService
}

func NewItemHandler(items services.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/subcategory/:subcategoryId", h.ListBySubcategory)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *ItemHandler) Create(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	var input services.ItemInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	item, err := h.items.Create(c.Request().Context(), scope, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	result, err := h.items.List(c.Request().Context(), scope, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ItemHandler) Search(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	result, err := h.items.Search(c.Request().Context(), scope, c.QueryParam("q"), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ItemHandler) ListBySubcategory(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	subcategoryID, err := pathUUID(c, "subcategoryId")
	if err != nil {
		return err
	}
	result, err := h.items.ListBySubcategory(c.Request().Context(), scope, subcategoryID, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ItemHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	item, err := h.items.Get(c.Request().Context(), scope, id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Update(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.ItemInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	item, err := h.items.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.items.Delete(c.Request().Context(), scope, id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
