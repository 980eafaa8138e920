package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"incubator/internal/modules/project/domain"
	projectout "incubator/internal/modules/project/port/out"
	"incubator/internal/platform/degrade"
	apperrors "incubator/internal/platform/errors"
	"incubator/internal/platform/state"
)

type ProjectService struct {
	projects projectout.ProjectAPI
	team     projectout.TeamAPI
	policy   degrade.Policy
}

func NewProjectService(projects projectout.ProjectAPI, team projectout.TeamAPI, policy degrade.Policy) *ProjectService {
	return &ProjectService{projects: projects, team: team, policy: policy}
}

func (s *ProjectService) Get(ctx context.Context, projectID string) (domain.Project, error) {
	if err := validateID(projectID); err != nil {
		return domain.Project{}, err
	}
	return s.projects.Get(ctx, projectID)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, []string, error) {
	projects, err := s.projects.List(ctx)
	return degradeList(s.policy, "list projects", projects, err)
}

func (s *ProjectService) SearchByName(ctx context.Context, name string) ([]domain.Project, []string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil, apperrors.Invalid("search term is required")
	}
	projects, err := s.projects.SearchByName(ctx, strings.TrimSpace(name))
	return degradeList(s.policy, "search projects", projects, err)
}

func (s *ProjectService) WithoutSupervisors(ctx context.Context) ([]domain.Summary, []string, error) {
	summaries, err := s.projects.WithoutSupervisors(ctx)
	return degradeList(s.policy, "list unsupervised projects", summaries, err)
}

func (s *ProjectService) Create(ctx context.Context, draft domain.Draft) (domain.Project, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if err := draft.Validate(); err != nil {
		return domain.Project{}, err
	}
	return s.projects.Create(ctx, draft)
}

func (s *ProjectService) Update(ctx context.Context, projectID string, patch domain.Patch) (domain.Project, error) {
	if err := validateID(projectID); err != nil {
		return domain.Project{}, err
	}
	if patch.Empty() {
		return domain.Project{}, apperrors.Invalid("nothing to update")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return domain.Project{}, apperrors.Invalid("project name cannot be blank")
	}
	return s.projects.Update(ctx, projectID, patch)
}

func (s *ProjectService) Delete(ctx context.Context, projectID string) error {
	if err := validateID(projectID); err != nil {
		return err
	}
	return s.projects.Delete(ctx, projectID)
}

func (s *ProjectService) Team(ctx context.Context, projectID string, relation domain.Relation) ([]domain.Member, []string, error) {
	if err := validateID(projectID); err != nil {
		return nil, nil, err
	}
	members, err := s.team.List(ctx, projectID, relation)
	return degradeList(s.policy, "load "+string(relation), members, err)
}

// Candidates suggests users to invite as members of projectID. A failed
// member listing only loses the filtering; a failed directory read degrades
// to no candidates.
func (s *ProjectService) Candidates(ctx context.Context, projectID, query string) ([]domain.Member, []string, error) {
	if err := validateID(projectID); err != nil {
		return nil, nil, err
	}
	var (
		users, members    []domain.Member
		usersErr, teamErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, usersErr = s.team.Users(gctx)
		return fatalOnly(usersErr)
	})
	g.Go(func() error {
		members, teamErr = s.team.List(gctx, projectID, domain.RelationMembers)
		return fatalOnly(teamErr)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	var warnings []string
	if warning, _ := s.policy.Handle("load members", teamErr); warning != "" {
		members = nil
		warnings = append(warnings, warning)
	}
	if warning, _ := s.policy.Handle("list users", usersErr); warning != "" {
		return []domain.Member{}, append(warnings, warning), nil
	}
	return domain.Candidates(users, members, query, domain.CandidateLimit), warnings, nil
}

func fatalOnly(err error) error {
	if apperrors.IsFatal(err) {
		return err
	}
	return nil
}

func (s *ProjectService) AddToTeam(ctx context.Context, projectID string, relation domain.Relation, userIdentifier string) error {
	if err := validateID(projectID); err != nil {
		return err
	}
	userIdentifier = strings.TrimSpace(userIdentifier)
	if userIdentifier == "" {
		return apperrors.Invalid("user is required")
	}
	switch relation {
	case domain.RelationSupervisors:
		return s.team.AddSupervisor(ctx, projectID, userIdentifier)
	case domain.RelationJury:
		return s.team.AddJuryMember(ctx, projectID, userIdentifier)
	default:
		return s.team.AddMember(ctx, projectID, userIdentifier)
	}
}

// validateID rejects blank ids and the sentinel, which names no real project.
func validateID(projectID string) error {
	trimmed := strings.TrimSpace(projectID)
	if trimmed == "" || trimmed == "undefined" {
		return apperrors.Invalid("project id is required")
	}
	if trimmed == state.SentinelProjectID {
		return apperrors.Invalid("no project assigned")
	}
	return nil
}

func degradeList[T any](policy degrade.Policy, op string, items []T, err error) ([]T, []string, error) {
	warning, err := policy.Handle(op, err)
	if err != nil {
		return nil, nil, err
	}
	if warning != "" {
		return []T{}, []string{warning}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil, nil
}
