package viewgate

import (
	"context"
	"sync"
)

// MemoryStore keeps viewed sets in process memory. It is the default store
// when Redis is not configured, and the store used in tests. Sets do not
// survive a restart, which only ever resets the gate in the visitor's
// favor.
type MemoryStore struct {
	mu     sync.RWMutex
	viewed map[string][]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{viewed: make(map[string][]string)}
}

// Viewed implements Store.
func (s *MemoryStore) Viewed(_ context.Context, visitorID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.viewed[visitorID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

// Record implements Store.
func (s *MemoryStore) Record(_ context.Context, visitorID, articleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.viewed[visitorID] {
		if id == articleID {
			return nil
		}
	}
	s.viewed[visitorID] = append(s.viewed[visitorID], articleID)
	return nil
}
