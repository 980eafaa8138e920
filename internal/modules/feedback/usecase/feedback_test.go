package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	feedbackrest "incubator/internal/modules/feedback/adapter/out"
	"incubator/internal/modules/feedback/domain"
	"incubator/internal/modules/feedback/dto"
	feedbackin "incubator/internal/modules/feedback/port/in"
	"incubator/internal/modules/feedback/service"
	"incubator/internal/modules/feedback/usecase"
	"incubator/internal/platform/apiclient"
	"incubator/internal/platform/degrade"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/state"
)

type fakeAPI struct {
	calls int
	items []domain.Feedback
	err   error
	texts []string
}

func (f *fakeAPI) List(context.Context, string) ([]domain.Feedback, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeAPI) Add(_ context.Context, sessionID, text string) (domain.Feedback, error) {
	f.calls++
	f.texts = append(f.texts, text)
	return domain.Feedback{ID: "f1", SessionID: sessionID, Text: text}, f.err
}

func (f *fakeAPI) Update(_ context.Context, sessionID, feedbackID, text string) (domain.Feedback, error) {
	f.calls++
	return domain.Feedback{ID: feedbackID, SessionID: sessionID, Text: text}, f.err
}

func (f *fakeAPI) Delete(context.Context, string, string) error {
	f.calls++
	return f.err
}

func newFeedback(api *fakeAPI) feedbackin.Usecase {
	return usecase.NewInteractor(service.NewFeedbackService(api, degrade.New(nil, nil)))
}

func TestAddRejectsEmptyTextBeforeNetwork(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := newFeedback(api)
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := uc.Add(context.Background(), dto.AddFeedbackInput{SessionID: "s1", Text: text}); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("text %q: expected invalid input, got %v", text, err)
		}
	}
	if _, err := uc.Update(context.Background(), dto.UpdateFeedbackInput{SessionID: "s1", FeedbackID: "f1", Text: " "}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank update should be invalid, got %v", err)
	}
	if api.calls != 0 {
		t.Fatalf("empty feedback must not reach the API, got %d calls", api.calls)
	}

	out, err := uc.Add(context.Background(), dto.AddFeedbackInput{SessionID: "s1", Text: "  great demo  "})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.Text != "great demo" || api.texts[0] != "great demo" {
		t.Fatalf("text should be trimmed, got %q", out.Text)
	}
}

func TestListDegradesButUnauthorizedPropagates(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{err: fmt.Errorf("%w: refused", apperrors.ErrTransport)}
	uc := newFeedback(api)
	out, err := uc.List(context.Background(), "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Items == nil || len(out.Items) != 0 || len(out.Warnings) != 1 {
		t.Fatalf("expected empty list with warning, got %+v", out)
	}

	api.err = &apperrors.APIError{Status: 401, Method: "GET", Path: "/sessions/s1/feedbacks", Message: "expired"}
	if _, err := uc.List(context.Background(), "s1"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if _, err := uc.List(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank session, got %v", err)
	}
}

func TestFeedbackOverHTTP(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "GET /sessions/s1/feedbacks":
			_, _ = w.Write([]byte(`{"data":[{"id":"f1","author":"Mentor","text":"keep going","createdAt":"2024-04-01T10:00:00Z"}]}`))
		case "POST /sessions/s1/feedbacks":
			_, _ = w.Write([]byte(`{"id":"f2","author":"Mentor","text":"nice"}`))
		case "DELETE /sessions/s1/feedbacks/f2":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	api := feedbackrest.NewRESTFeedbackAPI(apiclient.New(srv.URL, state.NewMemoryStore()))
	uc := usecase.NewInteractor(service.NewFeedbackService(api, degrade.New(nil, nil)))
	ctx := context.Background()

	list, err := uc.List(ctx, "s1")
	if err != nil || len(list.Items) != 1 || list.Items[0].Author != "Mentor" || list.Items[0].CreatedAt.IsZero() {
		t.Fatalf("list: %+v %v", list, err)
	}
	added, err := uc.Add(ctx, dto.AddFeedbackInput{SessionID: "s1", Text: "nice"})
	if err != nil || added.ID != "f2" || added.SessionID != "s1" {
		t.Fatalf("add: %+v %v", added, err)
	}
	if err := uc.Delete(ctx, "s1", "f2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := uc.Delete(ctx, "s1", "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
