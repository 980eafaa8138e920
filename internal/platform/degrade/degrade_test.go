package degrade

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/metrics"
)

func TestHandleRecoverable(t *testing.T) {
	rec := metrics.New()
	policy := New(nil, rec)
	warning, err := policy.Handle("load sessions", fmt.Errorf("%w: boom", apperrors.ErrTransport))
	if err != nil {
		t.Fatalf("recoverable error should not propagate: %v", err)
	}
	if warning != "could not load sessions: transport failure: boom" {
		t.Fatalf("unexpected warning %q", warning)
	}
	if got := testutil.ToFloat64(rec.DegradedFetches.WithLabelValues("load sessions")); got != 1 {
		t.Fatalf("expected degraded counter 1, got %v", got)
	}
}

func TestHandleFatal(t *testing.T) {
	policy := New(nil, nil)
	cause := &apperrors.APIError{Status: 401, Method: "GET", Path: "/projects/p", Message: "expired"}
	warning, err := policy.Handle("load project", cause)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized to propagate, got %v", err)
	}
	if warning != "" {
		t.Fatalf("fatal errors carry no warning, got %q", warning)
	}
}

func TestHandleNil(t *testing.T) {
	warning, err := New(nil, nil).Handle("noop", nil)
	if warning != "" || err != nil {
		t.Fatalf("nil error must be a no-op, got %q %v", warning, err)
	}
}
