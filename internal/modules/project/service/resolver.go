package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"incubator/internal/modules/project/domain"
	projectout "incubator/internal/modules/project/port/out"
	"incubator/internal/platform/degrade"
	"incubator/internal/platform/logging"
	"incubator/internal/platform/state"
)

// Resolver decides which project the current user is looking at.
type Resolver struct {
	users     projectout.UserSource
	projects  projectout.ProjectAPI
	selection projectout.SelectionStore
	policy    degrade.Policy
	log       *zap.Logger
}

func NewResolver(users projectout.UserSource, projects projectout.ProjectAPI, selection projectout.SelectionStore, policy degrade.Policy, log *zap.Logger) *Resolver {
	return &Resolver{users: users, projects: projects, selection: selection, policy: policy, log: logging.OrNop(log)}
}

// Resolve applies, in order: explicit id, cached id, first project owned by
// the user, sentinel. Explicit, searched and sentinel ids are persisted.
func (r *Resolver) Resolve(ctx context.Context, explicitID string, refresh bool) (domain.Resolution, error) {
	user, err := r.users.CurrentUser(ctx)
	if err != nil {
		return domain.Resolution{}, err
	}
	if err := user.Validate(); err != nil {
		return domain.Resolution{}, err
	}

	if id := strings.TrimSpace(explicitID); id != "" {
		if err := r.selection.Save(ctx, id); err != nil {
			return domain.Resolution{}, err
		}
		return domain.Resolution{ProjectID: id, Source: domain.SourceExplicit}, nil
	}

	if refresh {
		if err := r.selection.Forget(ctx); err != nil {
			return domain.Resolution{}, err
		}
	} else {
		cached, ok, err := r.selection.Load(ctx)
		if err != nil {
			return domain.Resolution{}, err
		}
		if ok && strings.TrimSpace(cached) != "" {
			return domain.Resolution{ProjectID: cached, Source: domain.SourceCached}, nil
		}
	}

	projects, searchErr := r.projects.SearchByOwner(ctx, user.FirstName())
	warning, err := r.policy.Handle("search owned projects", searchErr)
	if err != nil {
		return domain.Resolution{}, err
	}
	if searchErr == nil {
		if project, ok := domain.FirstOwned(projects, user.ID); ok {
			if err := r.selection.Save(ctx, project.ID); err != nil {
				return domain.Resolution{}, err
			}
			r.log.Debug("project resolved by owner search", zap.String("project_id", project.ID), zap.Int("candidates", len(projects)))
			return domain.Resolution{ProjectID: project.ID, Source: domain.SourceOwnerSearch}, nil
		}
	}

	if err := r.selection.Save(ctx, state.SentinelProjectID); err != nil {
		return domain.Resolution{}, err
	}
	r.log.Info("no owned project found; using sentinel", zap.String("user_id", user.ID))
	return domain.Resolution{ProjectID: state.SentinelProjectID, Source: domain.SourceSentinel, Warning: warning}, nil
}
