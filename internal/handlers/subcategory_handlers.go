package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type SubCategoryHandler struct {
	subcategories services.SubCategoryService
}

func NewSubCategoryHandler(subcategories services.SubCategoryService) *SubCategoryHandler {
	return &SubCategoryHandler{subcategories: subcategories}
}

func (h *SubCategoryHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/name/:name", h.GetByName)
	g.GET("/category/:categoryId", h.ListByCategory)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *SubCategoryHandler) Create(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	var input services.SubCategoryInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sub, err := h.subcategories.Create(c.Request().Context(), scope, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, sub)
}

func (h *SubCategoryHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	result, err := h.subcategories.List(c.Request().Context(), scope, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *SubCategoryHandler) ListByCategory(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	categoryID, err := pathUUID(c, "categoryId")
	if err != nil {
		return err
	}
	result, err := h.subcategories.ListByCategory(c.Request().Context(), scope, categoryID, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *SubCategoryHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	sub, err := h.subcategories.Get(c.Request().Context(), scope, id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *SubCategoryHandler) GetByName(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	sub, err := h.subcategories.GetByName(c.Request().Context(), scope, c.Param("name"))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *SubCategoryHandler) Update(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.SubCategoryInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sub, err := h.subcategories.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, sub)
}

func (h *SubCategoryHandler) Delete(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.subcategories.Delete(c.Request().Context(), scope, id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
