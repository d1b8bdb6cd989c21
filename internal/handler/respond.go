package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"elearning/internal/dto"
	apperrors "elearning/internal/errors"
)

// fail converts a service error into the uniform envelope, mirroring the
// mapped status into the HTTP status line. Unexpected errors surface as
// 500 with the underlying error text prefixed by the failed action.
func fail(c echo.Context, err error, action string) error {
	status := apperrors.StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Error " + action + ": " + err.Error()
	}
	return c.JSON(status, dto.Response{
		StatusCode: status,
		Message:    message,
	})
}

// badRequest reports a malformed or invalid request body.
func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, dto.Response{
		StatusCode: http.StatusBadRequest,
		Message:    message,
	})
}
