package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type ItemPublicAcquisitionHandler struct {
	links services.ItemPublicAcquisitionService
}

func NewItemPublicAcquisitionHandler(links services.ItemPublicAcquisitionService) *ItemPublicAcquisitionHandler {
	return &ItemPublicAcquisitionHandler{links: links}
}

func (h *ItemPublicAcquisitionHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/public-acquisition/:acquisitionId", h.ListByAcquisition)
	g.GET("/item/:itemId", h.ListByItem)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *ItemPublicAcquisitionHandler) Create(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	var input services.ItemPublicAcquisitionInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ipa, err := h.links.Create(c.Request().Context(), scope, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, ipa)
}

func (h *ItemPublicAcquisitionHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	result, err := h.links.List(c.Request().Context(), scope, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ItemPublicAcquisitionHandler) ListByAcquisition(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	acquisitionID, err := pathUUID(c, "acquisitionId")
	if err != nil {
		return err
	}
	result, err := h.links.ListByAcquisition(c.Request().Context(), scope, acquisitionID, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ItemPublicAcquisitionHandler) ListByItem(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}
	result, err := h.links.ListByItem(c.Request().Context(), scope, itemID, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *ItemPublicAcquisitionHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	ipa, err := h.links.Get(c.Request().Context(), scope, id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, ipa)
}

func (h *ItemPublicAcquisitionHandler) Update(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.ItemPublicAcquisitionInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ipa, err := h.links.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, ipa)
}

func (h *ItemPublicAcquisitionHandler) Delete(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.links.Delete(c.Request().Context(), scope, id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
