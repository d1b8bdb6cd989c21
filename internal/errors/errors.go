package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailExists is returned when registering with an email that is already taken.
	ErrEmailExists = errors.New("user exists")
	// ErrUserNotFound is returned when a user lookup fails. Login reuses it
	// for wrong passwords so that unknown email and bad password are
	// indistinguishable to the caller.
	ErrUserNotFound = errors.New("can't find user")
	// ErrQuestionNotFound is returned when a quiz question lookup fails.
	ErrQuestionNotFound = errors.New("quiz question not found")
	// ErrInvalidToken is returned when a bearer token fails signature or
	// expiry checks, or its payload is malformed.
	ErrInvalidToken = errors.New("invalid token")
)

// StatusFor maps a domain error to the numeric status carried in the
// response envelope (and mirrored into the HTTP status line). Anything
// unrecognized is an internal error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmailExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrQuestionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
