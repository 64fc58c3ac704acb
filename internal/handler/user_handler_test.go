package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
	"adminpanel/internal/validation"
)

// MockUserService is a mock implementation of service.UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, email, password, name string) (*model.User, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, q repository.ListQuery) ([]model.User, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, id uint, name, email *string, ip string) (*model.User, error) {
	args := m.Called(ctx, id, name, email, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id uint, ip string) error {
	args := m.Called(ctx, id, ip)
	return args.Error(0)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_GetUser_InvalidID(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/users/abc", "")
	c.SetPath("/api/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
	svc.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)

	svc.On("GetUser", mock.Anything, uint(7)).Return(nil, apperrors.ErrNotFound)

	c, rec := newTestContext(http.MethodGet, "/api/users/7", "")
	c.SetPath("/api/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.GetUser(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("created record never exposes the password hash", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc)

		svc.On("CreateUser", mock.Anything, "a@b.com", "password1", "").
			Return(&model.User{ID: 1, Email: "a@b.com", PasswordHash: "bcrypt-hash"}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/users", `{"email":"a@b.com","password":"password1"}`)

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "a@b.com", resp.Data.Email)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "bcrypt-hash")
	})

	t.Run("validation failure returns field detail", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc)

		c, rec := newTestContext(http.MethodPost, "/api/users", `{"email":"not-an-email","password":"short"}`)

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp apperrors.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_FAILED", resp.Code)

		var fields []string
		for _, fe := range resp.Fields {
			fields = append(fields, fe.Path)
		}
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "password")
		svc.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate live email conflicts", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc)

		svc.On("CreateUser", mock.Anything, "a@b.com", "password1", "").
			Return(nil, apperrors.ErrEmailTaken)

		c, rec := newTestContext(http.MethodPost, "/api/users", `{"email":"a@b.com","password":"password1"}`)

		require.NoError(t, h.CreateUser(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
	})
}

func TestUserHandler_ListUsers_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{name: "oversized limit clamps to 100", query: "limit=500", wantLimit: 100},
		{name: "zero limit falls back to default", query: "limit=0", wantLimit: 10},
		{name: "negative limit clamps to 1", query: "limit=-2", wantLimit: 1},
		{name: "absent limit defaults", query: "", wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockUserService)
			h := NewUserHandler(svc)

			svc.On("ListUsers", mock.Anything, mock.MatchedBy(func(q repository.ListQuery) bool {
				return q.Limit == tt.wantLimit && q.Offset == 0
			})).Return([]model.User{}, nil)

			c, rec := newTestContext(http.MethodGet, "/api/users?"+tt.query, "")

			require.NoError(t, h.ListUsers(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp ListUsersResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantLimit, resp.Limit)
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_UpdateUser_EmailConflict(t *testing.T) {
	svc := new(MockUserService)
	h := NewUserHandler(svc)

	svc.On("UpdateUser", mock.Anything, uint(1), (*string)(nil), mock.AnythingOfType("*string"), mock.Anything).
		Return(nil, apperrors.ErrEmailTaken)

	c, rec := newTestContext(http.MethodPut, "/api/users/1", `{"email":"a@b.com"}`)
	c.SetPath("/api/users/:id")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.UpdateUser(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMAIL_TAKEN")
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc)

		svc.On("DeleteUser", mock.Anything, uint(1), mock.Anything).Return(nil)

		c, rec := newTestContext(http.MethodDelete, "/api/users/1", "")
		c.SetPath("/api/users/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "deleted")
	})

	t.Run("already deleted reports not found", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewUserHandler(svc)

		svc.On("DeleteUser", mock.Anything, uint(1), mock.Anything).Return(apperrors.ErrNotFound)

		c, rec := newTestContext(http.MethodDelete, "/api/users/1", "")
		c.SetPath("/api/users/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, h.DeleteUser(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
