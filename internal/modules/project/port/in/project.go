package in

import (
	"context"

	"incubator/internal/modules/project/dto"
)

type Usecase interface {
	Resolve(ctx context.Context, input dto.ResolveInput) (dto.ResolveOutput, error)
	Get(ctx context.Context, projectID string) (dto.ProjectOutput, error)
	List(ctx context.Context) (dto.ProjectListOutput, error)
	SearchByName(ctx context.Context, name string) (dto.ProjectListOutput, error)
	WithoutSupervisors(ctx context.Context) (dto.SummaryListOutput, error)
	Create(ctx context.Context, input dto.CreateProjectInput) (dto.ProjectOutput, error)
	Update(ctx context.Context, input dto.UpdateProjectInput) (dto.ProjectOutput, error)
	Delete(ctx context.Context, projectID string) error
	Team(ctx context.Context, input dto.TeamInput) (dto.TeamOutput, error)
	AddToTeam(ctx context.Context, input dto.AddToTeamInput) error
	Candidates(ctx context.Context, input dto.CandidatesInput) (dto.CandidatesOutput, error)
}
