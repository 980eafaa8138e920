package usecase

import (
	"context"

	"incubator/internal/modules/project/domain"
	"incubator/internal/modules/project/dto"
	projectin "incubator/internal/modules/project/port/in"
	"incubator/internal/modules/project/service"
)

type Interactor struct {
	resolver *service.Resolver
	svc      *service.ProjectService
}

func NewInteractor(resolver *service.Resolver, svc *service.ProjectService) projectin.Usecase {
	return &Interactor{resolver: resolver, svc: svc}
}

func (i *Interactor) Resolve(ctx context.Context, input dto.ResolveInput) (dto.ResolveOutput, error) {
	resolution, err := i.resolver.Resolve(ctx, input.ExplicitID, input.Refresh)
	if err != nil {
		return dto.ResolveOutput{}, err
	}
	return dto.ResolveOutput{
		ProjectID:  resolution.ProjectID,
		Source:     string(resolution.Source),
		Unassigned: resolution.Source == domain.SourceSentinel,
		Warning:    resolution.Warning,
	}, nil
}

func (i *Interactor) Get(ctx context.Context, projectID string) (dto.ProjectOutput, error) {
	project, err := i.svc.Get(ctx, projectID)
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toProjectOutput(project), nil
}

func (i *Interactor) List(ctx context.Context) (dto.ProjectListOutput, error) {
	projects, warnings, err := i.svc.List(ctx)
	if err != nil {
		return dto.ProjectListOutput{}, err
	}
	return dto.ProjectListOutput{Projects: toProjectOutputs(projects), Warnings: warnings}, nil
}

func (i *Interactor) SearchByName(ctx context.Context, name string) (dto.ProjectListOutput, error) {
	projects, warnings, err := i.svc.SearchByName(ctx, name)
	if err != nil {
		return dto.ProjectListOutput{}, err
	}
	return dto.ProjectListOutput{Projects: toProjectOutputs(projects), Warnings: warnings}, nil
}

func (i *Interactor) WithoutSupervisors(ctx context.Context) (dto.SummaryListOutput, error) {
	summaries, warnings, err := i.svc.WithoutSupervisors(ctx)
	if err != nil {
		return dto.SummaryListOutput{}, err
	}
	out := make([]dto.SummaryOutput, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, dto.SummaryOutput{ID: s.ID, Name: s.Name, MembersCount: s.MembersCount})
	}
	return dto.SummaryListOutput{Projects: out, Warnings: warnings}, nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateProjectInput) (dto.ProjectOutput, error) {
	project, err := i.svc.Create(ctx, domain.Draft{
		Name:                 input.Name,
		Industry:             input.Industry,
		About:                input.About,
		Problem:              input.Problem,
		Solution:             input.Solution,
		Idea:                 input.Idea,
		TargetAudience:       input.TargetAudience,
		CompetitiveAdvantage: input.CompetitiveAdvantage,
		Motivation:           input.Motivation,
		Stage:                input.Stage,
		MemberEmails:         input.MemberEmails,
		SupervisorEmails:     input.SupervisorEmails,
	})
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toProjectOutput(project), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateProjectInput) (dto.ProjectOutput, error) {
	project, err := i.svc.Update(ctx, input.ProjectID, domain.Patch{
		Name:                 input.Name,
		Industry:             input.Industry,
		About:                input.About,
		Problem:              input.Problem,
		Solution:             input.Solution,
		Idea:                 input.Idea,
		TargetAudience:       input.TargetAudience,
		CompetitiveAdvantage: input.CompetitiveAdvantage,
		Motivation:           input.Motivation,
		Status:               input.Status,
		Stage:                input.Stage,
	})
	if err != nil {
		return dto.ProjectOutput{}, err
	}
	return toProjectOutput(project), nil
}

func (i *Interactor) Delete(ctx context.Context, projectID string) error {
	return i.svc.Delete(ctx, projectID)
}

func (i *Interactor) Team(ctx context.Context, input dto.TeamInput) (dto.TeamOutput, error) {
	relation, err := domain.ParseRelation(input.Relation)
	if err != nil {
		return dto.TeamOutput{}, err
	}
	members, warnings, err := i.svc.Team(ctx, input.ProjectID, relation)
	if err != nil {
		return dto.TeamOutput{}, err
	}
	return dto.TeamOutput{
		ProjectID: input.ProjectID,
		Relation:  string(relation),
		Members:   toMemberOutputs(members),
		Warnings:  warnings,
	}, nil
}

func (i *Interactor) AddToTeam(ctx context.Context, input dto.AddToTeamInput) error {
	relation, err := domain.ParseRelation(input.Relation)
	if err != nil {
		return err
	}
	return i.svc.AddToTeam(ctx, input.ProjectID, relation, input.UserIdentifier)
}

func (i *Interactor) Candidates(ctx context.Context, input dto.CandidatesInput) (dto.CandidatesOutput, error) {
	users, warnings, err := i.svc.Candidates(ctx, input.ProjectID, input.Query)
	if err != nil {
		return dto.CandidatesOutput{}, err
	}
	return dto.CandidatesOutput{ProjectID: input.ProjectID, Users: toMemberOutputs(users), Warnings: warnings}, nil
}

func toProjectOutput(p domain.Project) dto.ProjectOutput {
	return dto.ProjectOutput{
		ID:                   p.ID,
		Name:                 p.Name,
		Industry:             p.Industry,
		About:                p.About,
		Problem:              p.Problem,
		Solution:             p.Solution,
		Idea:                 p.Idea,
		TargetAudience:       p.TargetAudience,
		CompetitiveAdvantage: p.CompetitiveAdvantage,
		Motivation:           p.Motivation,
		Status:               p.Status,
		Stage:                p.Stage,
		CreatedAt:            p.CreatedAt,
		Owners:               toMemberOutputs(p.Owners),
		Members:              toMemberOutputs(p.Members),
		Supervisors:          toMemberOutputs(p.Supervisors),
		JuryMembers:          toMemberOutputs(p.JuryMembers),
	}
}

func toProjectOutputs(projects []domain.Project) []dto.ProjectOutput {
	out := make([]dto.ProjectOutput, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectOutput(p))
	}
	return out
}

func toMemberOutputs(members []domain.Member) []dto.MemberOutput {
	out := make([]dto.MemberOutput, 0, len(members))
	for _, m := range members {
		out = append(out, dto.MemberOutput{ID: m.ID, FullName: m.FullName(), Email: m.Email, Role: m.Role})
	}
	return out
}
