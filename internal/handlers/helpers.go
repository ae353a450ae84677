package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hospsupply/internal/common"
)

// pathUUID parses a route parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid "+name)
	}
	return id, nil
}

// pagination binds the page/size query parameters.
func pagination(c echo.Context) common.PaginationParams {
	params := common.PaginationParams{}
	_ = c.Bind(&params)
	params.Normalize()
	return params
}

// requestScope pulls the hospital scope set by the auth middleware.
func requestScope(c echo.Context) (common.HospitalScope, error) {
	scope, ok := common.GetScopeFromContext(c.Request().Context())
	if !ok {
		return common.HospitalScope{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return scope, nil
}
