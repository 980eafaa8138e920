package state

import (
	"context"
	"sync"
)

// Persisted keys. Values are plain strings with no schema version.
const (
	KeyAuthToken          = "authToken"
	KeyProjectID          = "projectId"
	KeyStartupPromptSeen  = "hasSeenStartupPrompt"
	startupPromptSeenTrue = "true"
)

// SentinelProjectID is persisted under KeyProjectID when no real project can
// be resolved for the user.
const SentinelProjectID = "dummy-project-id"

// Store is the process-wide key/value state that survives between runs.
// Clear wipes every key and is called whenever the backend rejects the
// stored credentials.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

func StartupPromptSeen(ctx context.Context, store Store) (bool, error) {
	v, ok, err := store.Get(ctx, KeyStartupPromptSeen)
	if err != nil {
		return false, err
	}
	return ok && v == startupPromptSeenTrue, nil
}

func MarkStartupPromptSeen(ctx context.Context, store Store) error {
	return store.Set(ctx, KeyStartupPromptSeen, startupPromptSeenTrue)
}

type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = map[string]string{}
	return nil
}

// Len is used by tests to assert a wholesale clear.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
