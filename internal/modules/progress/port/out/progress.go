package out

import (
	"context"

	"incubator/internal/modules/progress/domain"
)

type ModuleAPI interface {
	List(ctx context.Context, projectID string) ([]domain.Module, error)
	Update(ctx context.Context, projectID, name string, percentage int) (domain.Module, error)
	UpdateAll(ctx context.Context, projectID string, percentages [domain.SlotCount]int) ([]domain.Module, error)
}

type SessionAPI interface {
	List(ctx context.Context, projectID string) ([]domain.Session, error)
	Get(ctx context.Context, projectID, sessionID string) (domain.Session, error)
	Create(ctx context.Context, projectID string, draft domain.SessionDraft) (domain.Session, error)
	Update(ctx context.Context, projectID, sessionID string, patch domain.SessionPatch) (domain.Session, error)
	Delete(ctx context.Context, projectID, sessionID string) error
}

// ProjectLookup resolves the display name of a project.
type ProjectLookup interface {
	ProjectName(ctx context.Context, projectID string) (string, error)
}
