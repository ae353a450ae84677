package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type PublicAcquisitionHandler struct {
	acquisitions services.PublicAcquisitionService
}

func NewPublicAcquisitionHandler(acquisitions services.PublicAcquisitionService) *PublicAcquisitionHandler {
	return &PublicAcquisitionHandler{acquisitions: acquisitions}
}

func (h *PublicAcquisitionHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/year/:year", h.ListByYear)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *PublicAcquisitionHandler) Create(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	var input services.PublicAcquisitionInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pa, err := h.acquisitions.Create(c.Request().Context(), scope, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, pa)
}

func (h *PublicAcquisitionHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	result, err := h.acquisitions.List(c.Request().Context(), scope, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *PublicAcquisitionHandler) ListByYear(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid year")
	}
	result, err := h.acquisitions.ListByYear(c.Request().Context(), scope, year, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *PublicAcquisitionHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	pa, err := h.acquisitions.Get(c.Request().Context(), scope, id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, pa)
}

func (h *PublicAcquisitionHandler) Update(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.PublicAcquisitionInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pa, err := h.acquisitions.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, pa)
}

func (h *PublicAcquisitionHandler) Delete(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.acquisitions.Delete(c.Request().Context(), scope, id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
