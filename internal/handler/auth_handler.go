package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elearning/internal/dto"
	"elearning/internal/model"
	"elearning/internal/service"
)

// AuthHandler handles registration and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}
	created, err := h.authService.Register(c.Request().Context(), user, req.Password)
	if err != nil {
		return fail(c, err, "saving a user")
	}

	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "User registered successfully",
		User:       dto.FromUser(created),
	})
}

// Login godoc
// @Summary Authenticate and obtain a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 500 {object} dto.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err, "logging in")
	}

	return c.JSON(http.StatusOK, dto.Response{
		StatusCode:     http.StatusOK,
		Message:        "User logged in successfully",
		Token:          result.Token,
		Role:           result.Role,
		ExpirationTime: result.ExpirationTime,
	})
}
