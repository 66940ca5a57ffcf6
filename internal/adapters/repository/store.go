// Package repository holds the last fetched contest collection and the
// lifecycle of the data source that produced it.
package repository

import (
	"context"
	"time"

	"github.com/okian/concursos/internal/domain/model"
)

// State is the data source lifecycle: pending until the first fetch
// completes, ready afterwards. A failed fetch is stored as ready with an
// empty collection.
type State string

// Lifecycle states.
const (
	StatePending State = "pending"
	StateReady   State = "ready"
)

// Snapshot is an immutable view of the stored collection.
// Contests must be treated as read-only by callers.
type Snapshot struct {
	State     State
	Contests  []model.Contest
	LoadedAt  time.Time
	LastError error
	Loads     int
}

// Failed reports whether the collection was substituted after a fetch error.
func (s Snapshot) Failed() bool {
	return s.LastError != nil
}

// Store provides read/write access to the contest collection.
type Store interface {
	// Replace swaps the whole collection. When fetchErr is non-nil the
	// collection becomes empty and fetchErr is kept for diagnostics.
	Replace(ctx context.Context, contests []model.Contest, fetchErr error)

	// Snapshot returns the current collection and lifecycle state.
	Snapshot(ctx context.Context) Snapshot

	// Count returns the number of stored contests.
	Count(ctx context.Context) int
}
