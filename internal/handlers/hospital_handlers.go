package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

// Hospital images are capped at 5 MiB.
const maxImageSize = 5 << 20

type HospitalHandler struct {
	hospitals services.HospitalService
}

func NewHospitalHandler(hospitals services.HospitalService) *HospitalHandler {
	return &HospitalHandler{hospitals: hospitals}
}

// RegisterRoutes mounts the hospital endpoints. Creating and deleting
// hospitals takes the extra guard.
func (h *HospitalHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/name/:name", h.GetByName)
	g.GET("/city/:city", h.ListByCity)
	g.GET("/nationality/:nationality", h.ListByNationality)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete, guard...)
	g.PUT("/:id/image", h.UploadImage)
	g.GET("/:id/image", h.GetImage)
}

func (h *HospitalHandler) Create(c echo.Context) error {
	var input services.HospitalInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	hospital, err := h.hospitals.Create(c.Request().Context(), input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, hospital)
}

func (h *HospitalHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	result, err := h.hospitals.List(c.Request().Context(), scope, pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *HospitalHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	hospital, err := h.hospitals.Get(c.Request().Context(), scope, id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, hospital)
}

func (h *HospitalHandler) GetByName(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	hospital, err := h.hospitals.GetByName(c.Request().Context(), scope, c.Param("name"))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, hospital)
}

func (h *HospitalHandler) ListByCity(c echo.Context) error {
	result, err := h.hospitals.ListByCity(c.Request().Context(), c.Param("city"), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *HospitalHandler) ListByNationality(c echo.Context) error {
	result, err := h.hospitals.ListByNationality(c.Request().Context(), c.Param("nationality"), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *HospitalHandler) Update(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.HospitalInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	hospital, err := h.hospitals.Update(c.Request().Context(), scope, id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, hospital)
}

func (h *HospitalHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.hospitals.Delete(c.Request().Context(), id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HospitalHandler) UploadImage(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "image file is required")
	}
	if file.Size > maxImageSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "image exceeds the 5 MiB limit")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read image")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if err := h.hospitals.UploadImage(c.Request().Context(), scope, id, src, file.Size, contentType); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *HospitalHandler) GetImage(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	url, err := h.hospitals.ImageURL(c.Request().Context(), scope, id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	// The image lives in object storage; clients follow the presigned URL.
	return c.Redirect(http.StatusFound, url)
}
