package out

import (
	"context"
	"fmt"
	"net/http"

	"incubator/internal/modules/progress/domain"
	progressout "incubator/internal/modules/progress/port/out"
	"incubator/internal/platform/apiclient"
)

type RESTModuleAPI struct {
	client *apiclient.Client
}

func NewRESTModuleAPI(client *apiclient.Client) progressout.ModuleAPI {
	return &RESTModuleAPI{client: client}
}

func (a *RESTModuleAPI) List(ctx context.Context, projectID string) ([]domain.Module, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Endpoint: "project.modules",
		Path:     apiclient.Path("/projects/%s/modules", projectID),
	})
	if err != nil {
		return nil, err
	}
	return decodeModules(raw)
}

func (a *RESTModuleAPI) Update(ctx context.Context, projectID, name string, percentage int) (domain.Module, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Endpoint: "project.modules.update",
		Path:     apiclient.Path("/projects/%s/modules", projectID),
		Body:     moduleUpdateWire{ModuleName: name, Percentage: percentage},
	})
	if err != nil {
		return domain.Module{}, err
	}
	if raw == nil {
		return domain.Module{Name: name, Percentage: percentage, ProjectID: projectID}, nil
	}
	wire, err := apiclient.DecodeObject[moduleWire](raw)
	if err != nil {
		return domain.Module{}, err
	}
	module := wire.toDomain()
	if module.ProjectID == "" {
		module.ProjectID = projectID
	}
	return module, nil
}

func (a *RESTModuleAPI) UpdateAll(ctx context.Context, projectID string, percentages [domain.SlotCount]int) ([]domain.Module, error) {
	raw, err := a.client.Do(ctx, apiclient.Request{
		Method:   http.MethodPatch,
		Endpoint: "project.modules.update_all",
		Path:     apiclient.Path("/projects/%s/all-modules", projectID),
		Body: allModulesWire{
			Research:      percentages[domain.SlotResearch],
			Development:   percentages[domain.SlotDevelopment],
			Testing:       percentages[domain.SlotTesting],
			Documentation: percentages[domain.SlotDocumentation],
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeModules(raw)
}

func decodeModules(raw []byte) ([]domain.Module, error) {
	wires, err := apiclient.DecodeList[moduleWire](raw)
	if err != nil {
		return nil, fmt.Errorf("modules: %w", err)
	}
	out := make([]domain.Module, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain())
	}
	return out, nil
}
