package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("not found")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrTransport       = errors.New("transport failure")
	ErrShape           = errors.New("unexpected response shape")
	// ErrRejected is a 400 or 422 from the backend. Unlike ErrInvalidInput it
	// is not fatal: a rejected list read degrades like any other fetch failure.
	ErrRejected = errors.New("rejected by server")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return ErrRejected
	default:
		return ErrTransport
	}
}

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// IsFatal reports whether err must reach the caller. Every other failure is
// recoverable and may be degraded to an empty result plus a warning.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, context.Canceled)
}
