package session

import "sync/atomic"

// Store holds the current credential as an atomically swapped immutable
// snapshot. Reads are lock-free; concurrent refreshes race benignly with
// last-writer-wins, which at worst costs one extra authentication.
type Store struct {
	snapshot atomic.Pointer[Credential]
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load() Credential {
	if c := s.snapshot.Load(); c != nil {
		return *c
	}
	return Credential{}
}

func (s *Store) Save(c Credential) {
	s.snapshot.Store(&c)
}
