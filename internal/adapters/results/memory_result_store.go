package results

import (
	"context"
	"errors"
	"sync"

	"route-suggestion-service/internal/domain"
)

// MemoryResultStore keeps plan results in process memory. Suitable for
// single-instance deployments and tests; results vanish on restart.
type MemoryResultStore struct {
	mu      sync.RWMutex
	results map[string]*domain.PlanResult
}

func NewMemoryResultStore() *MemoryResultStore {
	return &MemoryResultStore{results: make(map[string]*domain.PlanResult)}
}

func (s *MemoryResultStore) Put(ctx context.Context, jobID string, res *domain.PlanResult) error {
	if jobID == "" {
		return errors.New("result store: job id must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[jobID] = res
	return nil
}

func (s *MemoryResultStore) Get(ctx context.Context, jobID string) (*domain.PlanResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.results[jobID]
	return res, ok, nil
}
