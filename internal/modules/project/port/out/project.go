package out

import (
	"context"

	"incubator/internal/modules/project/domain"
)

type ProjectAPI interface {
	Get(ctx context.Context, projectID string) (domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	SearchByOwner(ctx context.Context, firstName string) ([]domain.Project, error)
	SearchByName(ctx context.Context, name string) ([]domain.Project, error)
	WithoutSupervisors(ctx context.Context) ([]domain.Summary, error)
	Create(ctx context.Context, draft domain.Draft) (domain.Project, error)
	Update(ctx context.Context, projectID string, patch domain.Patch) (domain.Project, error)
	Delete(ctx context.Context, projectID string) error
}

type TeamAPI interface {
	List(ctx context.Context, projectID string, relation domain.Relation) ([]domain.Member, error)
	AddMember(ctx context.Context, projectID, userIdentifier string) error
	AddSupervisor(ctx context.Context, projectID, userID string) error
	AddJuryMember(ctx context.Context, projectID, userID string) error
	// Users lists every account on the platform; the member picker filters it.
	Users(ctx context.Context) ([]domain.Member, error)
}

// SelectionStore remembers the project the user last worked on.
type SelectionStore interface {
	Load(ctx context.Context) (string, bool, error)
	Save(ctx context.Context, projectID string) error
	Forget(ctx context.Context) error
}

// UserSource yields the authenticated user, or nil when nobody is logged in.
type UserSource interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}
