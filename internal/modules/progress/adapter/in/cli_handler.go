package in

import (
	"context"

	"incubator/internal/modules/progress/dto"
	progressin "incubator/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context, projectID string) (dto.OverviewOutput, error) {
	return h.usecase.Overview(ctx, projectID)
}

func (h CLIHandler) Modules(ctx context.Context, projectID string) (dto.ModuleListOutput, error) {
	return h.usecase.ListModules(ctx, projectID)
}

func (h CLIHandler) SetModule(ctx context.Context, projectID, module string, percent int) (dto.ModuleOutput, error) {
	return h.usecase.UpdateModule(ctx, dto.UpdateModuleInput{ProjectID: projectID, ModuleName: module, Percentage: percent})
}

func (h CLIHandler) SetAllModules(ctx context.Context, projectID string, percentages [4]int) ([]dto.ModuleOutput, error) {
	return h.usecase.UpdateAllModules(ctx, dto.UpdateAllModulesInput{ProjectID: projectID, Percentages: percentages})
}

func (h CLIHandler) Sessions(ctx context.Context, projectID string) (dto.SessionListOutput, error) {
	return h.usecase.ListSessions(ctx, projectID)
}

func (h CLIHandler) Session(ctx context.Context, projectID, sessionID string) (dto.SessionProgressOutput, dto.SessionOutput, error) {
	session, err := h.usecase.GetSession(ctx, projectID, sessionID)
	if err != nil {
		return dto.SessionProgressOutput{}, dto.SessionOutput{}, err
	}
	progress, err := h.usecase.SessionProgress(ctx, projectID, sessionID)
	return progress, session, err
}

func (h CLIHandler) CreateSession(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error) {
	return h.usecase.CreateSession(ctx, input)
}

func (h CLIHandler) UpdateSession(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error) {
	return h.usecase.UpdateSession(ctx, input)
}

func (h CLIHandler) DeleteSession(ctx context.Context, projectID, sessionID string) error {
	return h.usecase.DeleteSession(ctx, projectID, sessionID)
}
