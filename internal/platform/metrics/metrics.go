package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder owns a private registry so tests and the dashboard never share
// global collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	APIRequests        *prometheus.CounterVec
	APIRequestDuration *prometheus.HistogramVec
	DegradedFetches    *prometheus.CounterVec
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		APIRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "incubator_api_requests_total",
				Help: "Backend API requests by method, endpoint and status code",
			},
			[]string{"method", "endpoint", "status"},
		),
		APIRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "incubator_api_request_duration_seconds",
				Help:    "Backend API request latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
			},
			[]string{"method", "endpoint"},
		),
		DegradedFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "incubator_degraded_fetches_total",
				Help: "Fetches that failed recoverably and were replaced by an empty result",
			},
			[]string{"operation"},
		),
	}
	r.registry.MustRegister(r.APIRequests, r.APIRequestDuration, r.DegradedFetches)
	return r
}

// ObserveRequest records one backend call. status 0 means no response.
func (r *Recorder) ObserveRequest(method, endpoint string, status int, d time.Duration) {
	if r == nil {
		return
	}
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	r.APIRequests.WithLabelValues(method, endpoint, code).Inc()
	r.APIRequestDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func (r *Recorder) Degraded(operation string) {
	if r == nil {
		return
	}
	r.DegradedFetches.WithLabelValues(operation).Inc()
}

func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
