package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/concursos/internal/domain/model"
	"github.com/okian/concursos/pkg/metrics"
)

// MemoryStore keeps the collection in memory behind an RWMutex. Writers
// replace the whole slice, so readers never observe a partial update.
type MemoryStore struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

// NewMemoryStore creates an empty store in the pending state.
func NewMemoryStore(_ context.Context, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		snap: Snapshot{State: StatePending, Contests: []model.Contest{}},
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace swaps the collection and marks the store ready.
func (s *MemoryStore) Replace(_ context.Context, contests []model.Contest, fetchErr error) {
	next := make([]model.Contest, 0, len(contests))
	if fetchErr == nil {
		next = append(next, contests...)
	}

	s.mu.Lock()
	s.snap = Snapshot{
		State:     StateReady,
		Contests:  next,
		LoadedAt:  s.now(),
		LastError: fetchErr,
		Loads:     s.snap.Loads + 1,
	}
	s.mu.Unlock()

	metrics.UpdateContestsLoaded(len(next))
}

// Snapshot returns the current view.
func (s *MemoryStore) Snapshot(_ context.Context) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Count returns the number of stored contests.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snap.Contests)
}
