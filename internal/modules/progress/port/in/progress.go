package in

import (
	"context"

	"incubator/internal/modules/progress/dto"
)

type Usecase interface {
	Overview(ctx context.Context, projectID string) (dto.OverviewOutput, error)
	ListModules(ctx context.Context, projectID string) (dto.ModuleListOutput, error)
	UpdateModule(ctx context.Context, input dto.UpdateModuleInput) (dto.ModuleOutput, error)
	UpdateAllModules(ctx context.Context, input dto.UpdateAllModulesInput) ([]dto.ModuleOutput, error)
	ListSessions(ctx context.Context, projectID string) (dto.SessionListOutput, error)
	GetSession(ctx context.Context, projectID, sessionID string) (dto.SessionOutput, error)
	CreateSession(ctx context.Context, input dto.CreateSessionInput) (dto.SessionOutput, error)
	UpdateSession(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error)
	DeleteSession(ctx context.Context, projectID, sessionID string) error
	SessionProgress(ctx context.Context, projectID, sessionID string) (dto.SessionProgressOutput, error)
}
