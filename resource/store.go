package resource

import "sync"

// Store mirrors the last successful fetch for one entity.
// It is never patched after a mutation; callers refetch instead.
type Store[T any] struct {
	mu       sync.RWMutex
	items    []T
	loaded   bool
	selected *T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Items returns a copy of the cached collection
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store[T]) SetItems(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = cp
	s.loaded = true
}

// Loaded reports whether a list fetch ever succeeded
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

func (s *Store[T]) SetSelected(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &item
}
