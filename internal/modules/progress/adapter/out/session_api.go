package out

import (
	"context"
	"fmt"
	"net/http"

	"incubator/internal/modules/progress/domain"
	progressout "incubator/internal/modules/progress/port/out"
	"incubator/internal/platform/apiclient"
)

type RESTSessionAPI struct {
	client *apiclient.Client
}

func NewRESTSessionAPI(client *apiclient.Client) progressout.SessionAPI {
	return &RESTSessionAPI{client: client}
}

func (a *RESTSessionAPI) List(ctx context.Context, projectID string) ([]domain.Session, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "project.sessions",
		Path:     apiclient.Path("/projects/%s/sessions", projectID),
	})
	if err != nil {
		return nil, err
	}
	wires, err := apiclient.DecodeList[sessionWire](raw)
	if err != nil {
		return nil, fmt.Errorf("sessions: %w", err)
	}
	out := make([]domain.Session, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain(projectID))
	}
	return out, nil
}

func (a *RESTSessionAPI) Get(ctx context.Context, projectID, sessionID string) (domain.Session, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "project.session",
		Path:     apiclient.Path("/projects/%s/sessions/%s", projectID, sessionID),
	})
	if err != nil {
		return domain.Session{}, err
	}
	return decodeSession(raw, projectID)
}

func (a *RESTSessionAPI) Create(ctx context.Context, projectID string, draft domain.SessionDraft) (domain.Session, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: "project.sessions.create",
		Path:     apiclient.Path("/projects/%s/sessions", projectID),
		Body:     draftWire(draft),
	})
	if err != nil {
		return domain.Session{}, err
	}
	return decodeSession(raw, projectID)
}

func (a *RESTSessionAPI) Update(ctx context.Context, projectID, sessionID string, patch domain.SessionPatch) (domain.Session, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Endpoint: "project.session.update",
		Path:     apiclient.Path("/projects/%s/sessions/%s", projectID, sessionID),
		Body:     patchWire(patch),
	})
	if err != nil {
		return domain.Session{}, err
	}
	return decodeSession(raw, projectID)
}

func (a *RESTSessionAPI) Delete(ctx context.Context, projectID, sessionID string) error {
	_, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodDelete,
		Endpoint: "project.session.delete",
		Path:     apiclient.Path("/projects/%s/sessions/%s", projectID, sessionID),
	})
	return err
}

func decodeSession(raw []byte, projectID string) (domain.Session, error) {
	wire, err := apiclient.DecodeObject[sessionWire](raw)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session: %w", err)
	}
	return wire.toDomain(projectID), nil
}
