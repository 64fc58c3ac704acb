package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"adminpanel/internal/token"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// ContextUserKey is where the session guard stashes the authenticated user id.
const ContextUserKey = "session_user_id"

// WriteSessionCookie sets the session cookie on the response.
func WriteSessionCookie(c echo.Context, value string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(token.SessionExpiry),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on the response.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionGuard protects a route group with the session cookie. A missing or
// invalid token redirects to the sign-in page instead of returning 401; admin
// pages are browser-facing.
//
// On safe methods a valid session is re-issued with a fresh expiry (sliding
// window). A re-issue failure is non-fatal: the stale cookie is cleared and
// the request proceeds.
func SessionGuard(codec *token.Codec, signInPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, signInPath)
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, signInPath)
			}
			c.Set(ContextUserKey, claims.UserID)

			if m := c.Request().Method; m == http.MethodGet || m == http.MethodHead {
				refreshed, err := codec.Sign(claims.UserID)
				if err != nil {
					c.Logger().Errorf("session refresh: %v", err)
					ClearSessionCookie(c)
				} else {
					WriteSessionCookie(c, refreshed)
				}
			}

			return next(c)
		}
	}
}
