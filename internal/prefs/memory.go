package prefs

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for tests and Redis-less development.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[uuid.UUID]Preferences
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[uuid.UUID]Preferences)}
}

func (s *MemoryStore) Get(_ context.Context, userID uuid.UUID) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.data[userID]
	if !ok {
		return Defaults(), nil
	}
	return p, nil
}

func (s *MemoryStore) Set(_ context.Context, userID uuid.UUID, p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = p
	return nil
}
