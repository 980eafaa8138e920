package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/metrics"
	"incubator/internal/platform/state"
)

type fixedID string

func (f fixedID) New() string { return string(f) }

func seededStore(t *testing.T) *state.MemoryStore {
	t.Helper()
	store := state.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, state.KeyAuthToken, "tok-1"))
	require.NoError(t, store.Set(ctx, state.KeyProjectID, "p-1"))
	require.NoError(t, state.MarkStartupPromptSeen(ctx, store))
	return store
}

func TestDoSendsHeadersAndBody(t *testing.T) {
	var gotAuth, gotReqID, gotCT, gotMethod string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		gotCT = r.Header.Get("Content-Type")
		gotMethod = r.Method
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", seededStore(t), WithIDGenerator(fixedID("req-42")))
	raw, err := c.Do(context.Background(), Request{
		Method:   http.MethodPatch,
		Endpoint: "project.module",
		Path:     "/projects/p-1/modules",
		Body:     map[string]any{"moduleName": "research", "percentage": 40},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.Equal(t, "req-42", gotReqID)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "research", gotBody["moduleName"])
}

func TestDoWithoutTokenOmitsAuthorization(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	raw, err := New(srv.URL, state.NewMemoryStore()).Do(context.Background(), Request{Path: "/workshops"})
	require.NoError(t, err)
	assert.Nil(t, raw)
	assert.False(t, hasAuth)
}

func TestUnauthorizedClearsEveryKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token expired"}`))
	}))
	defer srv.Close()

	store := seededStore(t)
	rec := metrics.New()
	_, err := New(srv.URL, store, WithMetrics(rec)).Do(context.Background(), Request{Endpoint: "project.get", Path: "/projects/p-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	var apiErr *apperrors.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Token expired", apiErr.Message)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.APIRequests.WithLabelValues("GET", "project.get", "401")))
}

func TestNonUnauthorizedErrorKeepsState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := seededStore(t)
	_, err := New(srv.URL, store).Do(context.Background(), Request{Path: "/projects/p-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
	assert.Equal(t, 3, store.Len())
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		status      int
		body        string
		want        string
	}{
		{"json message", "application/json", 404, `{"message":"Project not found"}`, "Project not found"},
		{"json message list", "application/json", 400, `{"message":["name must not be empty","id is required"]}`, "name must not be empty; id is required"},
		{"json error field", "application/json", 500, `{"error":"boom"}`, "boom"},
		{"json without message", "application/json", 502, `{}`, "API request failed with status 502 Bad Gateway"},
		{"html", "text/html", 500, `<!DOCTYPE html><html><body>oops</body></html>`, "received HTML response instead of JSON; possible wrong endpoint or server error (status 500)"},
		{"plain text", "text/plain", 503, "maintenance", "maintenance"},
		{"empty", "", 500, "", "API request failed with status 500 Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tc.contentType != "" {
					w.Header().Set("Content-Type", tc.contentType)
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL, state.NewMemoryStore()).Do(context.Background(), Request{Path: "/x"})
			var apiErr *apperrors.APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestSuccessfulNonJSONIsShapeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>login</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL, state.NewMemoryStore()).Do(context.Background(), Request{Path: "/projects"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrShape)
	assert.False(t, apperrors.IsFatal(err))
}

func TestTransportFailureIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := metrics.New()
	_, err := New(url, state.NewMemoryStore(), WithMetrics(rec)).Do(context.Background(), Request{Endpoint: "workshop.list", Path: "/workshops"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrTransport)
	assert.False(t, apperrors.IsFatal(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.APIRequests.WithLabelValues("GET", "workshop.list", "error")))
}

func TestCanceledContextIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL, state.NewMemoryStore()).Do(ctx, Request{Path: "/x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, apperrors.IsFatal(err))
}

func TestPathEscapesSegments(t *testing.T) {
	assert.Equal(t, "/projects/search/owner/Ana%20Mar%C3%ADa", Path("/projects/search/owner/%s", "Ana María"))
	assert.Equal(t, "/projects/a%2Fb/sessions", Path("/projects/%s/sessions", "a/b"))
}
