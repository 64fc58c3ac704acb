package auth

import (
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
)

// CurrentUserID extracts the authenticated user id from the request context,
// set either by the session guard or by the cookie JWT middleware on the
// secured API group.
func CurrentUserID(c echo.Context) (uint, error) {
	if id, ok := c.Get(ContextUserKey).(uint); ok && id > 0 {
		return id, nil
	}

	tok, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	raw, ok := claims["user_id"].(float64)
	if !ok || raw <= 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return uint(raw), nil
}
