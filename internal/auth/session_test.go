package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtv4 "github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminpanel/internal/token"
)

const (
	testSecret = "test-secret"
	signInPath = "/sign-in"
)

func runGuard(t *testing.T, codec *token.Codec, req *http.Request) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SessionGuard(codec, signInPath)(func(c echo.Context) error {
		return c.String(http.StatusOK, "dashboard")
	})
	require.NoError(t, handler(c))
	return rec, c
}

func expiredToken(t *testing.T) string {
	t.Helper()
	claims := &token.Claims{
		UserID: 1,
		RegisteredClaims: jwtv4.RegisteredClaims{
			ExpiresAt: jwtv4.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwtv4.NewWithClaims(jwtv4.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestSessionGuard_MissingCookieRedirects(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec, _ := runGuard(t, token.NewCodec(testSecret), req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, signInPath, rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGuard_ExpiredTokenRedirects(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: expiredToken(t)})

	rec, _ := runGuard(t, token.NewCodec(testSecret), req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, signInPath, rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGuard_InvalidTokenRedirects(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})

	rec, _ := runGuard(t, token.NewCodec(testSecret), req)

	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestSessionGuard_ValidGetSlidesSession(t *testing.T) {
	codec := token.NewCodec(testSecret)
	signed, err := codec.Sign(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})

	rec, c := runGuard(t, codec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(42), c.Get(ContextUserKey))

	// The response must carry a refreshed session cookie for another 24h.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	refreshed := cookies[0]
	assert.Equal(t, SessionCookieName, refreshed.Name)
	assert.True(t, refreshed.HttpOnly)
	assert.True(t, refreshed.Secure)

	claims, err := codec.Verify(refreshed.Value)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(token.SessionExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestSessionGuard_ValidPostDoesNotRefresh(t *testing.T) {
	codec := token.NewCodec(testSecret)
	signed, err := codec.Sign(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: signed})

	rec, _ := runGuard(t, codec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("password1")
	require.NoError(t, err)
	assert.NotEqual(t, "password1", hashed)
	assert.True(t, CheckPassword(hashed, "password1"))
	assert.False(t, CheckPassword(hashed, "password2"))
}
