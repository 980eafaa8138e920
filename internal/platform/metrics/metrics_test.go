package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incubator/internal/platform/metrics"
)

func TestRecorderCountsRequestsAndDegradations(t *testing.T) {
	t.Parallel()
	r := metrics.New()
	r.ObserveRequest(http.MethodGet, "project.sessions", 200, 20*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "project.sessions", 200, 10*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "project.modules", 0, time.Second)
	r.Degraded("progress.modules")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.APIRequests.WithLabelValues("GET", "project.sessions", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.APIRequests.WithLabelValues("GET", "project.modules", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.DegradedFetches.WithLabelValues("progress.modules")))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "incubator_api_request_duration_seconds"))
}

func TestNilRecorderIsNoop(t *testing.T) {
	t.Parallel()
	var r *metrics.Recorder
	r.ObserveRequest(http.MethodGet, "x", 500, time.Millisecond)
	r.Degraded("x")
	assert.Nil(t, r.Registry())
}
