package out

import (
	"context"

	projectout "incubator/internal/modules/project/port/out"
	"incubator/internal/platform/state"
)

// StateSelectionStore keeps the selected project under the projectId key.
type StateSelectionStore struct {
	store state.Store
}

func NewStateSelectionStore(store state.Store) projectout.SelectionStore {
	return &StateSelectionStore{store: store}
}

func (s *StateSelectionStore) Load(ctx context.Context) (string, bool, error) {
	return s.store.Get(ctx, state.KeyProjectID)
}

func (s *StateSelectionStore) Save(ctx context.Context, projectID string) error {
	return s.store.Set(ctx, state.KeyProjectID, projectID)
}

func (s *StateSelectionStore) Forget(ctx context.Context) error {
	return s.store.Delete(ctx, state.KeyProjectID)
}
