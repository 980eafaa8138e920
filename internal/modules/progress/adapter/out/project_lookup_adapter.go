package out

import (
	"context"

	progressout "incubator/internal/modules/progress/port/out"
	projectin "incubator/internal/modules/project/port/in"
)

type ProjectLookupAdapter struct {
	projects projectin.Usecase
}

func NewProjectLookupAdapter(projects projectin.Usecase) progressout.ProjectLookup {
	return &ProjectLookupAdapter{projects: projects}
}

func (a *ProjectLookupAdapter) ProjectName(ctx context.Context, projectID string) (string, error) {
	project, err := a.projects.Get(ctx, projectID)
	if err != nil {
		return "", err
	}
	return project.Name, nil
}
