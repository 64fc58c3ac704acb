package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"adminpanel/internal/auth"
	"adminpanel/internal/service"
)

// AccountHandler serves the signed-in user's own account.
type AccountHandler struct {
	userService service.UserService
	authService service.AuthService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(userService service.UserService, authService service.AuthService) *AccountHandler {
	return &AccountHandler{userService: userService, authService: authService}
}

// UpdatePasswordRequest carries a password change.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,max=100"`
}

// CurrentUser godoc
// @Summary Get the current session's user
// @Tags account
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [get]
func (h *AccountHandler) CurrentUser(c echo.Context) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, UserResponse{Data: user})
}

// UpdatePassword godoc
// @Summary Change the current user's password
// @Tags account
// @Accept json
// @Produce json
// @Param request body UpdatePasswordRequest true "Password change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/password [put]
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, invalidBodyResponse())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.UpdatePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword, c.RealIP()); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "password updated successfully",
	})
}

// DeleteAccount godoc
// @Summary Soft-delete the current user's account
// @Tags account
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.authService.DeleteAccount(c.Request().Context(), userID, c.RealIP()); err != nil {
		return respondError(c, err)
	}

	auth.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "account deleted successfully",
	})
}
