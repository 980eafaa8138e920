package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"incubator/internal/modules/feedback/domain"
	feedbackout "incubator/internal/modules/feedback/port/out"
	"incubator/internal/platform/apiclient"
)

type feedbackWire struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}

func (w feedbackWire) toDomain(sessionID string) domain.Feedback {
	f := domain.Feedback{ID: w.ID, SessionID: w.SessionID, Author: w.Author, Text: w.Text}
	if f.SessionID == "" {
		f.SessionID = sessionID
	}
	if t, err := time.Parse(time.RFC3339Nano, w.CreatedAt); err == nil {
		f.CreatedAt = t
	}
	return f
}

type textWire struct {
	Text string `json:"text"`
}

type RESTFeedbackAPI struct {
	client *apiclient.Client
}

func NewRESTFeedbackAPI(client *apiclient.Client) feedbackout.FeedbackAPI {
	return &RESTFeedbackAPI{client: client}
}

func (a *RESTFeedbackAPI) List(ctx context.Context, sessionID string) ([]domain.Feedback, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "session.feedbacks",
		Path:     apiclient.Path("/sessions/%s/feedbacks", sessionID),
	})
	if err != nil {
		return nil, err
	}
	wires, err := apiclient.DecodeList[feedbackWire](raw)
	if err != nil {
		return nil, fmt.Errorf("feedback: %w", err)
	}
	out := make([]domain.Feedback, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain(sessionID))
	}
	return out, nil
}

func (a *RESTFeedbackAPI) Add(ctx context.Context, sessionID, text string) (domain.Feedback, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: "session.feedbacks.create",
		Path:     apiclient.Path("/sessions/%s/feedbacks", sessionID),
		Body:     textWire{Text: text},
	})
	if err != nil {
		return domain.Feedback{}, err
	}
	return decodeFeedback(raw, sessionID, text)
}

func (a *RESTFeedbackAPI) Update(ctx context.Context, sessionID, feedbackID, text string) (domain.Feedback, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Endpoint: "session.feedback.update",
		Path:     apiclient.Path("/sessions/%s/feedbacks/%s", sessionID, feedbackID),
		Body:     textWire{Text: text},
	})
	if err != nil {
		return domain.Feedback{}, err
	}
	f, err := decodeFeedback(raw, sessionID, text)
	if err != nil {
		return domain.Feedback{}, err
	}
	if f.ID == "" {
		f.ID = feedbackID
	}
	return f, nil
}

func (a *RESTFeedbackAPI) Delete(ctx context.Context, sessionID, feedbackID string) error {
	_, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodDelete,
		Endpoint: "session.feedback.delete",
		Path:     apiclient.Path("/sessions/%s/feedbacks/%s", sessionID, feedbackID),
	})
	return err
}

// decodeFeedback tolerates an empty body by echoing what was sent.
func decodeFeedback(raw json.RawMessage, sessionID, text string) (domain.Feedback, error) {
	if len(raw) == 0 {
		return domain.Feedback{SessionID: sessionID, Text: text}, nil
	}
	wire, err := apiclient.DecodeObject[feedbackWire](raw)
	if err != nil {
		return domain.Feedback{}, fmt.Errorf("feedback: %w", err)
	}
	return wire.toDomain(sessionID), nil
}
