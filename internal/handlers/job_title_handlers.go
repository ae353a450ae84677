package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
	"hospsupply/internal/services"
)

type JobTitleHandler struct {
	jobTitles services.JobTitleService
}

func NewJobTitleHandler(jobTitles services.JobTitleService) *JobTitleHandler {
	return &JobTitleHandler{jobTitles: jobTitles}
}

func (h *JobTitleHandler) RegisterRoutes(g *echo.Group, guard ...echo.MiddlewareFunc) {
	g.POST("", h.Create, guard...)
	g.GET("", h.List)
	g.GET("/title/:title", h.ListByTitle)
	g.GET("/department/:department", h.ListByDepartment)
	g.GET("/seniority/:seniority", h.ListBySeniority)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update, guard...)
	g.DELETE("/:id", h.Delete, guard...)
}

func (h *JobTitleHandler) Create(c echo.Context) error {
	var input services.JobTitleInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	jt, err := h.jobTitles.Create(c.Request().Context(), input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, jt)
}

func (h *JobTitleHandler) List(c echo.Context) error {
	result, err := h.jobTitles.List(c.Request().Context(), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *JobTitleHandler) ListByTitle(c echo.Context) error {
	result, err := h.jobTitles.ListByTitle(c.Request().Context(), c.Param("title"), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *JobTitleHandler) ListByDepartment(c echo.Context) error {
	result, err := h.jobTitles.ListByDepartment(c.Request().Context(), c.Param("department"), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *JobTitleHandler) ListBySeniority(c echo.Context) error {
	result, err := h.jobTitles.ListBySeniority(c.Request().Context(), c.Param("seniority"), pagination(c))
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, result)
}

func (h *JobTitleHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	jt, err := h.jobTitles.Get(c.Request().Context(), id)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, jt)
}

func (h *JobTitleHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	var input services.JobTitleInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	jt, err := h.jobTitles.Update(c.Request().Context(), id, input)
	if err != nil {
		return common.ToHTTPError(err)
	}
	return c.JSON(http.StatusOK, jt)
}

func (h *JobTitleHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	if err := h.jobTitles.Delete(c.Request().Context(), id); err != nil {
		return common.ToHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
