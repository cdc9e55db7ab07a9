package repository

import (
	"context"
	"sync"

	"github.com/sproutly/matchengine/internal/domain/model"
	"github.com/sproutly/matchengine/pkg/metrics"
)

// MemoryStore implements Store with a mutex-guarded in-process snapshot.
// Reads copy the slices so callers always work on private data.
type MemoryStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewMemoryStore creates an empty in-memory catalog store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace swaps in a new snapshot atomically.
func (s *MemoryStore) Replace(_ context.Context, snap Snapshot) error {
	if len(snap.Trainers) == 0 && len(snap.Activities) == 0 && len(snap.Bindings) == 0 {
		return ErrEmptySnapshot
	}

	s.mu.Lock()
	s.snap = copySnapshot(snap)
	s.mu.Unlock()

	metrics.SetCatalogSizes(len(snap.Trainers), len(snap.Activities), len(snap.Bindings))
	return nil
}

// Trainers returns a copy of the current trainer collection.
func (s *MemoryStore) Trainers(_ context.Context) []model.Trainer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.snap.Trainers)
}

// Activities returns a copy of the current activity collection.
func (s *MemoryStore) Activities(_ context.Context) []model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.snap.Activities)
}

// Bindings returns a copy of the current package-activity bindings.
func (s *MemoryStore) Bindings(_ context.Context) []model.PackageActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.snap.Bindings)
}

// Counts returns the collection sizes of the current snapshot.
func (s *MemoryStore) Counts(_ context.Context) (int, int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snap.Trainers), len(s.snap.Activities), len(s.snap.Bindings)
}

func copySnapshot(snap Snapshot) Snapshot {
	return Snapshot{
		Trainers:   copySlice(snap.Trainers),
		Activities: copySlice(snap.Activities),
		Bindings:   copySlice(snap.Bindings),
	}
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
