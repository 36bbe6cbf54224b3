// internal/profile/memory.go
package profile

import (
	"context"
	"sync"

	"career-workers/internal/models"
)

// MemoryStore keeps profiles in memory and is safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]models.WorkerProfile
}

func NewMemoryStore(profiles ...models.WorkerProfile) *MemoryStore {
	s := &MemoryStore{profiles: make(map[string]models.WorkerProfile)}
	for _, p := range profiles {
		s.profiles[p.UserID] = p
	}
	return s
}

func (s *MemoryStore) Put(p models.WorkerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p
}

func (s *MemoryStore) Get(ctx context.Context, userID string) (*models.WorkerProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}
