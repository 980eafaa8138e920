package apperrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	apperrors "incubator/internal/platform/errors"
)

func TestAPIErrorUnwrapsToSentinel(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, apperrors.ErrUnauthorized},
		{http.StatusNotFound, apperrors.ErrNotFound},
		{http.StatusBadRequest, apperrors.ErrRejected},
		{http.StatusUnprocessableEntity, apperrors.ErrRejected},
		{http.StatusInternalServerError, apperrors.ErrTransport},
		{http.StatusBadGateway, apperrors.ErrTransport},
	}
	for _, tc := range cases {
		err := fmt.Errorf("wrapped: %w", &apperrors.APIError{Status: tc.status, Method: "GET", Path: "/x", Message: "boom"})
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
	}
}

func TestIsFatal(t *testing.T) {
	t.Parallel()
	if !apperrors.IsFatal(&apperrors.APIError{Status: http.StatusUnauthorized}) {
		t.Fatalf("401 must be fatal")
	}
	if !apperrors.IsFatal(apperrors.Invalid("percentage %d", 120)) {
		t.Fatalf("validation errors must be fatal")
	}
	if apperrors.IsFatal(&apperrors.APIError{Status: http.StatusInternalServerError}) {
		t.Fatalf("5xx must be recoverable")
	}
	if apperrors.IsFatal(&apperrors.APIError{Status: http.StatusBadRequest}) {
		t.Fatalf("server-side rejection must be recoverable")
	}
	if errors.Is(&apperrors.APIError{Status: http.StatusUnprocessableEntity}, apperrors.ErrInvalidInput) {
		t.Fatalf("422 must not look like a local validation error")
	}
	if apperrors.IsFatal(fmt.Errorf("%w: decode", apperrors.ErrShape)) {
		t.Fatalf("shape errors must be recoverable")
	}
	if !apperrors.IsFatal(fmt.Errorf("get: %w", context.Canceled)) {
		t.Fatalf("caller cancellation must be fatal")
	}
	if apperrors.IsFatal(context.DeadlineExceeded) || apperrors.IsFatal(nil) {
		t.Fatalf("unexpected fatal classification")
	}
}
