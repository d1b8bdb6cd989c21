package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"elearning/internal/dto"
	"elearning/internal/middleware"
	"elearning/internal/service"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateProfileRequest carries a partial profile update. Blank fields are
// ignored; identity comes from the bearer token, not the body.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// SaveScoreRequest carries the score to store for the logged-in user.
type SaveScoreRequest struct {
	UserScore int `json:"user_score" validate:"gte=0"`
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Router /users/all [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err, "getting all users")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "successful",
		UserList:   dto.FromUsers(users),
	})
}

// GetUserByID godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /users/get-user-by-id/{userId} [get]
func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	user, err := h.svc.GetUserByID(c.Request().Context(), uint(id))
	if err != nil {
		return fail(c, err, "getting a user by id")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "successful",
		User:       dto.FromUser(user),
	})
}

// DeleteUser godoc
// @Summary Delete a user by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /users/delete-user-by-id/{userId} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), uint(id)); err != nil {
		return fail(c, err, "deleting a user")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "User has been deleted successfully",
	})
}

// UpdateProfile godoc
// @Summary Update the logged-in user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /users/update-profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	identity := middleware.CurrentUser(c)
	user, err := h.svc.UpdateProfile(c.Request().Context(), identity.Email, service.ProfileUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return fail(c, err, "updating profile")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "Profile updated successfully",
		User:       dto.FromUser(user),
	})
}

// GetLoggedInUser godoc
// @Summary Get the logged-in user's data
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /users/get-logged-in-user-data [get]
func (h *UserHandler) GetLoggedInUser(c echo.Context) error {
	identity := middleware.CurrentUser(c)
	user, err := h.svc.GetUserByEmail(c.Request().Context(), identity.Email)
	if err != nil {
		return fail(c, err, "getting user info")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "successful",
		User:       dto.FromUser(user),
	})
}

// SaveScore godoc
// @Summary Save the logged-in user's quiz score
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveScoreRequest true "New score"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /users/save-score [put]
func (h *UserHandler) SaveScore(c echo.Context) error {
	var req SaveScoreRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	identity := middleware.CurrentUser(c)
	user, err := h.svc.UpdateScore(c.Request().Context(), identity.Email, req.UserScore)
	if err != nil {
		return fail(c, err, "updating score")
	}
	return c.JSON(http.StatusOK, dto.Response{
		StatusCode: http.StatusOK,
		Message:    "Score updated successfully",
		User:       dto.FromUser(user),
	})
}
