package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	trainingrest "incubator/internal/modules/training/adapter/out"
	"incubator/internal/modules/training/service"
	"incubator/internal/modules/training/usecase"
	"incubator/internal/platform/apiclient"
	"incubator/internal/platform/degrade"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/metrics"
	"incubator/internal/platform/state"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCalendarSortsAndDegrades(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/workshops":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":"w2","title":"Pitching","date":"2024-07-10","time":"14:00","duration":90},
				{"id":"w1","title":"Lean canvas","date":"2024-07-01","time":"10:00","duration":60}
			]`))
		case "/workshops/past":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		}
	}))
	defer srv.Close()

	rec := metrics.New()
	client := apiclient.New(srv.URL, state.NewMemoryStore(), apiclient.WithMetrics(rec))
	uc := usecase.NewInteractor(service.NewTrainingService(trainingrest.NewRESTWorkshopAPI(client), degrade.New(nil, rec)))

	cal, err := uc.Calendar(context.Background())
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if len(cal.Upcoming) != 2 || cal.Upcoming[0].ID != "w1" {
		t.Fatalf("expected soonest workshop first, got %+v", cal.Upcoming)
	}
	if len(cal.Past) != 0 || len(cal.Warnings) != 1 {
		t.Fatalf("past listing should degrade to empty with warning, got %+v", cal)
	}
	if got := testutil.ToFloat64(rec.DegradedFetches.WithLabelValues("load past workshops")); got != 1 {
		t.Fatalf("expected one degraded fetch, got %v", got)
	}
}

func TestCalendarPropagatesUnauthorized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	store := state.NewMemoryStore()
	_ = store.Set(context.Background(), state.KeyAuthToken, "stale")
	client := apiclient.New(srv.URL, store)
	uc := usecase.NewInteractor(service.NewTrainingService(trainingrest.NewRESTWorkshopAPI(client), degrade.New(nil, nil)))
	if _, err := uc.Calendar(context.Background()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("401 must clear local state")
	}
}
