package service

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"incubator/internal/modules/progress/domain"
	progressout "incubator/internal/modules/progress/port/out"
	"incubator/internal/platform/degrade"
	apperrors "incubator/internal/platform/errors"
)

const warnUnassigned = "no project assigned"

type ProgressService struct {
	modules  progressout.ModuleAPI
	sessions progressout.SessionAPI
	projects progressout.ProjectLookup
	policy   degrade.Policy
}

func NewProgressService(modules progressout.ModuleAPI, sessions progressout.SessionAPI, projects progressout.ProjectLookup, policy degrade.Policy) *ProgressService {
	return &ProgressService{modules: modules, sessions: sessions, projects: projects, policy: policy}
}

// Overview fetches project, sessions and modules concurrently and reconciles
// them. Recoverable fetch failures become warnings; the first fatal failure
// cancels the remaining fetches and is returned.
func (s *ProgressService) Overview(ctx context.Context, projectID string) (domain.Overview, error) {
	if err := domain.ValidateProjectID(projectID); err != nil {
		return domain.Overview{}, err
	}
	if domain.IsUnassigned(projectID) {
		return domain.Overview{ProjectID: projectID, Sessions: []domain.Session{}, Warnings: []string{warnUnassigned}}, nil
	}

	var (
		name                        string
		sessions                    []domain.Session
		modules                     []domain.Module
		nameErr, sessionErr, modErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.projects == nil {
			return nil
		}
		name, nameErr = s.projects.ProjectName(gctx, projectID)
		return fatalOnly(nameErr)
	})
	g.Go(func() error {
		sessions, sessionErr = s.sessions.List(gctx, projectID)
		return fatalOnly(sessionErr)
	})
	g.Go(func() error {
		modules, modErr = s.modules.List(gctx, projectID)
		return fatalOnly(modErr)
	})
	if err := g.Wait(); err != nil {
		return domain.Overview{}, err
	}

	overview := domain.Overview{ProjectID: projectID, ProjectName: name}
	if warning, _ := s.policy.Handle("load project", nameErr); warning != "" {
		overview.ProjectName = ""
		overview.Warnings = append(overview.Warnings, warning)
	}
	if warning, _ := s.policy.Handle("load sessions", sessionErr); warning != "" {
		sessions = nil
		overview.Warnings = append(overview.Warnings, warning)
	}
	if warning, _ := s.policy.Handle("load modules", modErr); warning != "" {
		modules = nil
		overview.Warnings = append(overview.Warnings, warning)
	}

	reconciled := domain.Reconcile(sessions, modules)
	domain.SortByDate(reconciled)
	overview.Sessions = reconciled
	overview.Modules = domain.ModulePercentages(modules)
	overview.ModuleProgress = domain.GlobalFromModules(modules)
	overview.GlobalProgress = domain.Global(reconciled)
	return overview, nil
}

func fatalOnly(err error) error {
	if apperrors.IsFatal(err) {
		return err
	}
	return nil
}

func (s *ProgressService) ListModules(ctx context.Context, projectID string) ([]domain.Module, []string, error) {
	if err := domain.ValidateProjectID(projectID); err != nil {
		return nil, nil, err
	}
	if domain.IsUnassigned(projectID) {
		return []domain.Module{}, []string{warnUnassigned}, nil
	}
	modules, err := s.modules.List(ctx, projectID)
	warning, err := s.policy.Handle("load modules", err)
	if err != nil {
		return nil, nil, err
	}
	if warning != "" {
		return []domain.Module{}, []string{warning}, nil
	}
	return modules, nil, nil
}

func (s *ProgressService) UpdateModule(ctx context.Context, projectID, name string, percentage int) (domain.Module, error) {
	if err := s.writable(projectID); err != nil {
		return domain.Module{}, err
	}
	if strings.TrimSpace(name) == "" {
		return domain.Module{}, apperrors.Invalid("module name is required")
	}
	if err := domain.ValidatePercent(percentage); err != nil {
		return domain.Module{}, err
	}
	return s.modules.Update(ctx, projectID, strings.TrimSpace(name), percentage)
}

func (s *ProgressService) UpdateAllModules(ctx context.Context, projectID string, percentages [domain.SlotCount]int) ([]domain.Module, error) {
	if err := s.writable(projectID); err != nil {
		return nil, err
	}
	for i, p := range percentages {
		if err := domain.ValidatePercent(p); err != nil {
			return nil, apperrors.Invalid("%s: percentage %d outside [0,100]", domain.Slot(i), p)
		}
	}
	return s.modules.UpdateAll(ctx, projectID, percentages)
}

func (s *ProgressService) ListSessions(ctx context.Context, projectID string) ([]domain.Session, []string, error) {
	if err := domain.ValidateProjectID(projectID); err != nil {
		return nil, nil, err
	}
	if domain.IsUnassigned(projectID) {
		return []domain.Session{}, []string{warnUnassigned}, nil
	}
	sessions, err := s.sessions.List(ctx, projectID)
	warning, err := s.policy.Handle("load sessions", err)
	if err != nil {
		return nil, nil, err
	}
	if warning != "" {
		return []domain.Session{}, []string{warning}, nil
	}
	sorted := slices.Clone(sessions)
	domain.SortByDate(sorted)
	return sorted, nil, nil
}

func (s *ProgressService) GetSession(ctx context.Context, projectID, sessionID string) (domain.Session, error) {
	if err := s.writable(projectID); err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(sessionID) == "" {
		return domain.Session{}, apperrors.Invalid("session id is required")
	}
	return s.sessions.Get(ctx, projectID, sessionID)
}

func (s *ProgressService) CreateSession(ctx context.Context, projectID string, draft domain.SessionDraft) (domain.Session, error) {
	if err := s.writable(projectID); err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(draft.Date) == "" {
		return domain.Session{}, apperrors.Invalid("session date is required")
	}
	if err := validateModuleValues(draft.Modules[:]); err != nil {
		return domain.Session{}, err
	}
	for i, raw := range draft.Modules {
		if strings.TrimSpace(raw) == "" {
			draft.Modules[i] = "0"
		}
	}
	return s.sessions.Create(ctx, projectID, draft)
}

func (s *ProgressService) UpdateSession(ctx context.Context, projectID, sessionID string, patch domain.SessionPatch) (domain.Session, error) {
	if err := s.writable(projectID); err != nil {
		return domain.Session{}, err
	}
	if strings.TrimSpace(sessionID) == "" {
		return domain.Session{}, apperrors.Invalid("session id is required")
	}
	if patch.Empty() {
		return domain.Session{}, apperrors.Invalid("nothing to update")
	}
	if patch.Date != nil && strings.TrimSpace(*patch.Date) == "" {
		return domain.Session{}, apperrors.Invalid("session date cannot be blank")
	}
	values := make([]string, 0, domain.SlotCount)
	for _, m := range patch.Modules {
		if m != nil {
			values = append(values, *m)
		}
	}
	if err := validateModuleValues(values); err != nil {
		return domain.Session{}, err
	}
	return s.sessions.Update(ctx, projectID, sessionID, patch)
}

func (s *ProgressService) DeleteSession(ctx context.Context, projectID, sessionID string) error {
	if err := s.writable(projectID); err != nil {
		return err
	}
	if strings.TrimSpace(sessionID) == "" {
		return apperrors.Invalid("session id is required")
	}
	return s.sessions.Delete(ctx, projectID, sessionID)
}

// SessionProgress reconciles one session against the current modules. A
// module fetch failure only loses the fill-in values.
func (s *ProgressService) SessionProgress(ctx context.Context, projectID, sessionID string) (domain.Session, error) {
	session, err := s.GetSession(ctx, projectID, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	modules, modErr := s.modules.List(ctx, projectID)
	if _, err := s.policy.Handle("load modules", modErr); err != nil {
		return domain.Session{}, err
	}
	if modErr != nil {
		modules = nil
	}
	return domain.Reconcile([]domain.Session{session}, modules)[0], nil
}

// writable guards operations that need a real project.
func (s *ProgressService) writable(projectID string) error {
	if err := domain.ValidateProjectID(projectID); err != nil {
		return err
	}
	if domain.IsUnassigned(projectID) {
		return apperrors.Invalid("no project assigned")
	}
	return nil
}

// validateModuleValues accepts blanks but rejects non-integers and values
// outside [0,100].
func validateModuleValues(values []string) error {
	for _, raw := range values {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return apperrors.Invalid("module value %q is not a whole number", raw)
		}
		if err := domain.ValidatePercent(n); err != nil {
			return err
		}
	}
	return nil
}
