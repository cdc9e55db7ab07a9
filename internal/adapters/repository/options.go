package repository

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithInitial seeds the store with a starting snapshot.
func WithInitial(snap Snapshot) Option {
	return func(s *MemoryStore) {
		s.snap = copySnapshot(snap)
	}
}
