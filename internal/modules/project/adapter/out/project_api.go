package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"incubator/internal/modules/project/domain"
	projectout "incubator/internal/modules/project/port/out"
	"incubator/internal/platform/apiclient"
)

type RESTProjectAPI struct {
	client *apiclient.Client
}

func NewRESTProjectAPI(client *apiclient.Client) projectout.ProjectAPI {
	return &RESTProjectAPI{client: client}
}

func (a *RESTProjectAPI) Get(ctx context.Context, projectID string) (domain.Project, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "project.get",
		Path:     apiclient.Path("/projects/%s", projectID),
	})
	if err != nil {
		return domain.Project{}, err
	}
	return decodeProject(raw)
}

func (a *RESTProjectAPI) List(ctx context.Context) ([]domain.Project, error) {
	return a.list(ctx, "project.list", "/projects")
}

func (a *RESTProjectAPI) SearchByOwner(ctx context.Context, firstName string) ([]domain.Project, error) {
	return a.list(ctx, "project.search_owner", apiclient.Path("/projects/search/owner/%s", firstName))
}

func (a *RESTProjectAPI) SearchByName(ctx context.Context, name string) ([]domain.Project, error) {
	return a.list(ctx, "project.search_name", apiclient.Path("/projects/search/name/%s", name))
}

func (a *RESTProjectAPI) WithoutSupervisors(ctx context.Context) ([]domain.Summary, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "project.unsupervised",
		Path:     "/projects/noencadrants",
	})
	if err != nil {
		return nil, err
	}
	wires, err := apiclient.DecodeList[summaryWire](raw)
	if err != nil {
		return nil, fmt.Errorf("unsupervised projects: %w", err)
	}
	out := make([]domain.Summary, 0, len(wires))
	for _, w := range wires {
		out = append(out, domain.Summary{ID: w.ID, Name: w.Name, MembersCount: w.MembersCount})
	}
	return out, nil
}

func (a *RESTProjectAPI) Create(ctx context.Context, draft domain.Draft) (domain.Project, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: "project.create",
		Path:     "/projects",
		Body:     toDraftWire(draft),
	})
	if err != nil {
		return domain.Project{}, err
	}
	return decodeProject(raw)
}

func (a *RESTProjectAPI) Update(ctx context.Context, projectID string, patch domain.Patch) (domain.Project, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Endpoint: "project.update",
		Path:     apiclient.Path("/projects/%s", projectID),
		Body:     toPatchWire(patch),
	})
	if err != nil {
		return domain.Project{}, err
	}
	return decodeProject(raw)
}

func (a *RESTProjectAPI) Delete(ctx context.Context, projectID string) error {
	_, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodDelete,
		Endpoint: "project.delete",
		Path:     apiclient.Path("/projects/%s", projectID),
	})
	return err
}

func (a *RESTProjectAPI) list(ctx context.Context, endpoint, path string) ([]domain.Project, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{Endpoint: endpoint, Path: path})
	if err != nil {
		return nil, err
	}
	wires, err := apiclient.DecodeList[projectWire](raw)
	if err != nil {
		return nil, fmt.Errorf("projects: %w", err)
	}
	out := make([]domain.Project, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func decodeProject(raw json.RawMessage) (domain.Project, error) {
	wire, err := apiclient.DecodeObject[projectWire](raw)
	if err != nil {
		return domain.Project{}, fmt.Errorf("project: %w", err)
	}
	return wire.toDomain(), nil
}
