package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	trainingrest "incubator/internal/modules/training/adapter/out"
	"incubator/internal/platform/apiclient"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/state"
)

func newWorkshopBackend(t *testing.T, routes map[string]string) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return apiclient.New(srv.URL, state.NewMemoryStore())
}

func TestWorkshopListsDecodeBothShapes(t *testing.T) {
	t.Parallel()
	client := newWorkshopBackend(t, map[string]string{
		"GET /workshops":      `[{"id":"w1","title":"Pitch clinic","date":"2024-07-01","time":"10:00","duration":90,"location":"Room B","author":"Lea"}]`,
		"GET /workshops/past": `{"data":[{"id":"w0","title":"Kickoff","date":"2024-01-10"}]}`,
	})
	api := trainingrest.NewRESTWorkshopAPI(client)
	ctx := context.Background()

	upcoming, err := api.Upcoming(ctx)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Title != "Pitch clinic" || upcoming[0].Duration != 90 || upcoming[0].Author != "Lea" {
		t.Fatalf("unexpected upcoming %+v", upcoming)
	}
	past, err := api.Past(ctx)
	if err != nil {
		t.Fatalf("past: %v", err)
	}
	if len(past) != 1 || past[0].ID != "w0" || past[0].Date != "2024-01-10" {
		t.Fatalf("unexpected past %+v", past)
	}
}

func TestWorkshopListErrors(t *testing.T) {
	t.Parallel()
	client := newWorkshopBackend(t, map[string]string{
		"GET /workshops": `{"message":"ok"}`,
	})
	api := trainingrest.NewRESTWorkshopAPI(client)

	if _, err := api.Upcoming(context.Background()); !errors.Is(err, apperrors.ErrShape) {
		t.Fatalf("expected shape error for an object without a list, got %v", err)
	}
	if _, err := api.Past(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
