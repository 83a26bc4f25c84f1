package hierarchy

import "sync"

// Store owns the forest of a single open view.
type Store struct {
	mu     sync.RWMutex
	forest Forest
}

func NewStore(f Forest) *Store {
	return &Store{forest: f}
}

// Forest returns the current forest. Callers must treat it as read-only.
func (s *Store) Forest() Forest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forest
}

func (s *Store) Toggle(id NodeID) (Forest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := Toggle(s.forest, id)
	s.forest = next
	return next, ok
}
