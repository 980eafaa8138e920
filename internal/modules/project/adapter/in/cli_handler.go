package in

import (
	"context"

	"incubator/internal/modules/project/dto"
	projectin "incubator/internal/modules/project/port/in"
)

type CLIHandler struct {
	usecase projectin.Usecase
}

func NewCLIHandler(usecase projectin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Resolve(ctx context.Context, explicitID string, refresh bool) (dto.ResolveOutput, error) {
	return h.usecase.Resolve(ctx, dto.ResolveInput{ExplicitID: explicitID, Refresh: refresh})
}

func (h CLIHandler) Show(ctx context.Context, projectID string) (dto.ProjectOutput, error) {
	return h.usecase.Get(ctx, projectID)
}

func (h CLIHandler) List(ctx context.Context, withoutSupervisors bool) (dto.ProjectListOutput, dto.SummaryListOutput, error) {
	if withoutSupervisors {
		summaries, err := h.usecase.WithoutSupervisors(ctx)
		return dto.ProjectListOutput{}, summaries, err
	}
	projects, err := h.usecase.List(ctx)
	return projects, dto.SummaryListOutput{}, err
}

func (h CLIHandler) Search(ctx context.Context, name string) (dto.ProjectListOutput, error) {
	return h.usecase.SearchByName(ctx, name)
}

func (h CLIHandler) Create(ctx context.Context, input dto.CreateProjectInput) (dto.ProjectOutput, error) {
	return h.usecase.Create(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input dto.UpdateProjectInput) (dto.ProjectOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, projectID string) error {
	return h.usecase.Delete(ctx, projectID)
}

func (h CLIHandler) Team(ctx context.Context, projectID, relation string) (dto.TeamOutput, error) {
	return h.usecase.Team(ctx, dto.TeamInput{ProjectID: projectID, Relation: relation})
}

func (h CLIHandler) AddMember(ctx context.Context, projectID, userIdentifier string) error {
	return h.usecase.AddToTeam(ctx, dto.AddToTeamInput{ProjectID: projectID, Relation: "members", UserIdentifier: userIdentifier})
}

func (h CLIHandler) AddSupervisor(ctx context.Context, projectID, userID string) error {
	return h.usecase.AddToTeam(ctx, dto.AddToTeamInput{ProjectID: projectID, Relation: "encadrants", UserIdentifier: userID})
}

func (h CLIHandler) AddJuryMember(ctx context.Context, projectID, userID string) error {
	return h.usecase.AddToTeam(ctx, dto.AddToTeamInput{ProjectID: projectID, Relation: "juryMembers", UserIdentifier: userID})
}

func (h CLIHandler) Candidates(ctx context.Context, projectID, query string) (dto.CandidatesOutput, error) {
	return h.usecase.Candidates(ctx, dto.CandidatesInput{ProjectID: projectID, Query: query})
}
