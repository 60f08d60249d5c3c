// Package apperr defines the error taxonomy shared by the repositories,
// the access policy and the HTTP handlers. Failures are wrapped around one
// of these sentinels so the handler boundary can map them to a status code
// without inspecting message strings.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
)

// Status returns the HTTP status for an error. Anything that is not wrapped
// around a known sentinel is a persistence or programming failure and maps
// to 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
