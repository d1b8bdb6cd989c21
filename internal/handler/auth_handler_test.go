package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"elearning/internal/dto"
	apperrors "elearning/internal/errors"
	"elearning/internal/model"
	"elearning/internal/service"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, user *model.User, password string) (*model.User, error) {
	args := m.Called(ctx, user, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newAuthServer(svc service.AuthService) *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	h := NewAuthHandler(svc)
	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	return e
}

func TestAuthHandler_Register_EnvelopeMirrorsStatus(t *testing.T) {
	t.Run("duplicate email yields a 400 envelope", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), "password123").
			Return(nil, apperrors.ErrEmailExists)
		e := newAuthServer(mockSvc)

		rec := postJSON(e, "/auth/register", `{"name":"Dup","email":"dup@example.com","password":"password123"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp dto.Response
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, apperrors.ErrEmailExists.Error(), resp.Message)
		assert.Nil(t, resp.User)
	})

	t.Run("success returns the stored user without a token", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), "password123").
			Return(&model.User{ID: 1, Name: "New", Email: "new@example.com", Role: model.RoleUser}, nil)
		e := newAuthServer(mockSvc)

		rec := postJSON(e, "/auth/register", `{"name":"New","email":"new@example.com","password":"password123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp dto.Response
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotNil(t, resp.User)
		assert.Equal(t, "new@example.com", resp.User.Email)
		assert.Empty(t, resp.Token)
	})

	t.Run("missing fields are rejected before the service runs", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		e := newAuthServer(mockSvc)

		rec := postJSON(e, "/auth/register", `{"email":"no-name@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "Register")
	})
}

func TestAuthHandler_Login_EnvelopeMirrorsStatus(t *testing.T) {
	t.Run("bad credentials yield a 404 envelope with no token", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "who@example.com", "password123").
			Return(nil, apperrors.ErrUserNotFound)
		e := newAuthServer(mockSvc)

		rec := postJSON(e, "/auth/login", `{"email":"who@example.com","password":"password123"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp dto.Response
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, resp.Token)
	})

	t.Run("success carries token, role, and expiration", func(t *testing.T) {
		mockSvc := new(MockAuthService)
		mockSvc.On("Login", mock.Anything, "ok@example.com", "password123").
			Return(&service.LoginResult{Token: "signed-token", Role: model.RoleUser, ExpirationTime: "7 days"}, nil)
		e := newAuthServer(mockSvc)

		rec := postJSON(e, "/auth/login", `{"email":"ok@example.com","password":"password123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp dto.Response
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, model.RoleUser, resp.Role)
		assert.Equal(t, "7 days", resp.ExpirationTime)
	})
}
