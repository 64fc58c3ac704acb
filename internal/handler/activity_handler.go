package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"adminpanel/internal/auth"
	"adminpanel/internal/model"
	"adminpanel/internal/service"
)

// ActivityHandler serves the audit trail.
type ActivityHandler struct {
	svc service.ActivityService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(svc service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ListActivityResponse wraps a page of activity log entries.
type ListActivityResponse struct {
	Data   []model.ActivityLog `json:"data"`
	Count  int                 `json:"count"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// ListActivity godoc
// @Summary List the current user's activity, newest first
// @Tags activity
// @Produce json
// @Param limit query int false "Page size, clamped to [1,100]"
// @Param offset query int false "Page offset"
// @Success 200 {object} ListActivityResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activity [get]
func (h *ActivityHandler) ListActivity(c echo.Context) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	q := parseListQuery(c)
	entries, err := h.svc.ListByUser(c.Request().Context(), userID, q)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, ListActivityResponse{
		Data:   entries,
		Count:  len(entries),
		Limit:  q.Limit,
		Offset: q.Offset,
	})
}
