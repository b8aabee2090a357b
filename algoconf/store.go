package algoconf

import "sync"

// Store serializes registry mutation against dispatch.
//
// Writers go through Update or Replace; a dispatch either takes a Snapshot
// (a private clone) or runs inside View, which holds the read lock throughout.
type Store struct {
	mu  sync.RWMutex
	reg *Registry
}

// NewStore wraps reg. A nil reg starts from New().
func NewStore(reg *Registry) *Store {
	if reg == nil {
		reg = New()
	}

	return &Store{reg: reg}
}

// Update applies fn under the write lock.
func (s *Store) Update(fn func(r *Registry)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.reg)
}

// Replace swaps the stored registry.
func (s *Store) Replace(reg *Registry) {
	if reg == nil {
		reg = New()
	}
	s.mu.Lock()
	s.reg = reg
	s.mu.Unlock()
}

// Snapshot returns a clone taken under the read lock.
func (s *Store) Snapshot() *Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reg.Clone()
}

// View runs fn with the read lock held. fn must not retain r or mutate it.
func (s *Store) View(fn func(r *Registry)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.reg)
}

// Mask returns the current activation bitfield.
func (s *Store) Mask() uint8 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reg.Mask()
}
