package out

import (
	"context"
	"strings"

	accountout "incubator/internal/modules/account/port/out"
	"incubator/internal/platform/state"
)

type StateSessionStore struct {
	store state.Store
}

func NewStateSessionStore(store state.Store) accountout.SessionStore {
	return &StateSessionStore{store: store}
}

func (s *StateSessionStore) Token(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, state.KeyAuthToken)
}

func (s *StateSessionStore) SaveToken(ctx context.Context, token string) error {
	return s.store.Set(ctx, state.KeyAuthToken, token)
}

// HasProject is true when a real project, not the sentinel, is selected.
func (s *StateSessionStore) HasProject(ctx context.Context) (bool, error) {
	id, ok, err := s.store.Get(ctx, state.KeyProjectID)
	if err != nil || !ok {
		return false, err
	}
	id = strings.TrimSpace(id)
	return id != "" && id != state.SentinelProjectID, nil
}

func (s *StateSessionStore) PromptSeen(ctx context.Context) (bool, error) {
	return state.StartupPromptSeen(ctx, s.store)
}

func (s *StateSessionStore) MarkPromptSeen(ctx context.Context) error {
	return state.MarkStartupPromptSeen(ctx, s.store)
}

func (s *StateSessionStore) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}
