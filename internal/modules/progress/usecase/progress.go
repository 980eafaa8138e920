package usecase

import (
	"context"

	"incubator/internal/modules/progress/domain"
	"incubator/internal/modules/progress/dto"
	progressin "incubator/internal/modules/progress/port/in"
	"incubator/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Overview(ctx context.Context, projectID string) (dto.OverviewOutput, error) {
	overview, err := i.svc.Overview(ctx, projectID)
	if err != nil {
		return dto.OverviewOutput{}, err
	}
	return dto.OverviewOutput{
		ProjectID:      overview.ProjectID,
		ProjectName:    overview.ProjectName,
		Unassigned:     domain.IsUnassigned(overview.ProjectID),
		GlobalProgress: overview.GlobalProgress,
		ModuleProgress: overview.ModuleProgress,
		Labels:         slotLabels(),
		Modules:        overview.Modules,
		Sessions:       toSessionOutputs(overview.Sessions),
		Warnings:       overview.Warnings,
	}, nil
}

func (i *Interactor) ListModules(ctx context.Context, projectID string) (dto.ModuleListOutput, error) {
	modules, warnings, err := i.svc.ListModules(ctx, projectID)
	if err != nil {
		return dto.ModuleListOutput{}, err
	}
	out := make([]dto.ModuleOutput, 0, len(modules))
	for _, m := range modules {
		out = append(out, toModuleOutput(m))
	}
	return dto.ModuleListOutput{
		ProjectID: projectID,
		Modules:   out,
		Global:    domain.GlobalFromModules(modules),
		Warnings:  warnings,
	}, nil
}

func (i *Interactor) UpdateModule(ctx context.Context, input dto.UpdateModuleInput) (dto.ModuleOutput, error) {
	module, err := i.svc.UpdateModule(ctx, input.ProjectID, input.ModuleName, input.Percentage)
	if err != nil {
		return dto.ModuleOutput{}, err
	}
	return toModuleOutput(module), nil
}

func (i *Interactor) UpdateAllModules(ctx context.Context, input dto.UpdateAllModulesInput) ([]dto.ModuleOutput, error) {
	modules, err := i.svc.UpdateAllModules(ctx, input.ProjectID, input.Percentages)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ModuleOutput, 0, len(modules))
	for _, m := range modules {
		out = append(out, toModuleOutput(m))
	}
	return out, nil
}

func (i *Interactor) ListSessions(ctx context.Context, projectID string) (dto.SessionListOutput, error) {
	sessions, warnings, err := i.svc.ListSessions(ctx, projectID)
	if err != nil {
		return dto.SessionListOutput{}, err
	}
	return dto.SessionListOutput{ProjectID: projectID, Sessions: toSessionOutputs(sessions), Warnings: warnings}, nil
}

func (i *Interactor) GetSession(ctx context.Context, projectID, sessionID string) (dto.SessionOutput, error) {
	session, err := i.svc.GetSession(ctx, projectID, sessionID)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) CreateSession(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error) {
	session, err := i.svc.CreateSession(ctx, input.ProjectID, domain.SessionDraft{
		Date:     input.Date,
		Summary:  input.Summary,
		Feedback: input.Feedback,
		Modules:  input.Modules,
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) UpdateSession(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error) {
	session, err := i.svc.UpdateSession(ctx, input.ProjectID, input.SessionID, domain.SessionPatch{
		Date:     input.Date,
		Summary:  input.Summary,
		Feedback: input.Feedback,
		Modules:  input.Modules,
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) DeleteSession(ctx context.Context, projectID, sessionID string) error {
	return i.svc.DeleteSession(ctx, projectID, sessionID)
}

func (i *Interactor) SessionProgress(ctx context.Context, projectID, sessionID string) (dto.SessionProgressOutput, error) {
	session, err := i.svc.SessionProgress(ctx, projectID, sessionID)
	if err != nil {
		return dto.SessionProgressOutput{}, err
	}
	return dto.SessionProgressOutput{
		SessionID:   session.ID,
		Date:        session.Date,
		Labels:      slotLabels(),
		Percentages: domain.SessionPercentages(session),
		Global:      domain.GlobalFromSession(session),
	}, nil
}

func slotLabels() [domain.SlotCount]string {
	var labels [domain.SlotCount]string
	for _, slot := range domain.Slots() {
		labels[slot] = slot.Title()
	}
	return labels
}

func toModuleOutput(m domain.Module) dto.ModuleOutput {
	return dto.ModuleOutput{ID: m.ID, Name: m.Name, Percentage: m.Percentage, Status: domain.Status(m.Percentage)}
}

func toSessionOutput(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{
		ID:          s.ID,
		Date:        s.Date,
		Summary:     s.Summary,
		Feedback:    s.Feedback,
		Modules:     s.Modules,
		Percentages: domain.SessionPercentages(s),
		Global:      domain.GlobalFromSession(s),
	}
}

func toSessionOutputs(sessions []domain.Session) []dto.SessionOutput {
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toSessionOutput(s))
	}
	return out
}
