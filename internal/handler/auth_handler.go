package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"adminpanel/internal/auth"
	"adminpanel/internal/service"
)

// AuthHandler handles sign-up, sign-in and sign-out.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUpRequest represents a registration request.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

// SignInRequest represents a sign-in request.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp godoc
// @Summary Register and open a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Registration data"
// @Success 201 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/sign-up [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, invalidBodyResponse())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sessionToken, user, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password, req.Name, c.RealIP())
	if err != nil {
		return respondError(c, err)
	}

	auth.WriteSessionCookie(c, sessionToken)
	return c.JSON(http.StatusCreated, UserResponse{
		Data:    user,
		Message: "user registered successfully",
	})
}

// SignIn godoc
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, invalidBodyResponse())
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, err)
	}

	sessionToken, user, err := h.authService.SignIn(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		return respondError(c, err)
	}

	auth.WriteSessionCookie(c, sessionToken)
	return c.JSON(http.StatusOK, UserResponse{
		Data:    user,
		Message: "signed in successfully",
	})
}

// SignOut godoc
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/sign-out [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		return respondError(c, err)
	}

	h.authService.SignOut(c.Request().Context(), userID, c.RealIP())
	auth.ClearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{
		"message": "signed out successfully",
	})
}
