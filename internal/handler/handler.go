package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/repository"
)

// respondError maps a domain error onto the response taxonomy. Internal
// errors are logged with full detail; the client only sees a generic message.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// invalidBodyResponse is returned when the request body cannot be bound at all.
func invalidBodyResponse() apperrors.ErrorResponse {
	return apperrors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_BODY",
	}
}

// parseID reads the numeric :id path parameter. A non-numeric id is a 400,
// not a 404.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

// parseListQuery reads limit/offset query parameters and clamps them.
func parseListQuery(c echo.Context) repository.ListQuery {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return repository.ListQuery{Limit: limit, Offset: offset}.Clamp()
}
