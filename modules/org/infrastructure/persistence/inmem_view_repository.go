package persistence

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
)

type SafeMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		m: make(map[K]V),
	}
}

func (s *SafeMap[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *SafeMap[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, found := s.m[key]
	return val, found
}

func (s *SafeMap[K, V]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

func (s *SafeMap[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Collect(maps.Keys(s.m))
}

func (s *SafeMap[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

type inmemView struct {
	store     *hierarchy.Store
	createdAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

func (v *inmemView) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *inmemView) idleSince() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastSeen
}

type InmemViewRepository struct {
	storage *SafeMap[uuid.UUID, *inmemView]
	ttl     time.Duration
	now     func() time.Time
}

// NewInmemViewRepository keeps views in process memory. Views idle for
// longer than ttl are dropped by RunJanitor; ttl <= 0 keeps them forever.
func NewInmemViewRepository(ttl time.Duration) *InmemViewRepository {
	return &InmemViewRepository{
		storage: NewSafeMap[uuid.UUID, *inmemView](),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (r *InmemViewRepository) Create(ctx context.Context, forest hierarchy.Forest) (hierarchy.View, error) {
	now := r.now()
	v := &inmemView{
		store:     hierarchy.NewStore(forest),
		createdAt: now,
		lastSeen:  now,
	}
	id := uuid.New()
	r.storage.Set(id, v)
	return hierarchy.View{ID: id, Forest: forest, CreatedAt: now}, nil
}

func (r *InmemViewRepository) lookup(id uuid.UUID) (*inmemView, error) {
	v, found := r.storage.Get(id)
	if !found || r.expired(v, r.now()) {
		return nil, hierarchy.ErrViewNotFound
	}
	return v, nil
}

func (r *InmemViewRepository) GetByID(ctx context.Context, id uuid.UUID) (hierarchy.View, error) {
	v, err := r.lookup(id)
	if err != nil {
		return hierarchy.View{}, err
	}
	v.touch(r.now())
	return hierarchy.View{ID: id, Forest: v.store.Forest(), CreatedAt: v.createdAt}, nil
}

func (r *InmemViewRepository) Toggle(ctx context.Context, id uuid.UUID, nodeID hierarchy.NodeID) (hierarchy.View, bool, error) {
	v, err := r.lookup(id)
	if err != nil {
		return hierarchy.View{}, false, err
	}
	v.touch(r.now())
	forest, toggled := v.store.Toggle(nodeID)
	return hierarchy.View{ID: id, Forest: forest, CreatedAt: v.createdAt}, toggled, nil
}

func (r *InmemViewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.storage.Delete(id)
	return nil
}

func (r *InmemViewRepository) Len() int {
	return r.storage.Len()
}

func (r *InmemViewRepository) expired(v *inmemView, now time.Time) bool {
	return r.ttl > 0 && now.Sub(v.idleSince()) > r.ttl
}

// Sweep removes expired views and reports how many were dropped.
func (r *InmemViewRepository) Sweep() int {
	now := r.now()
	removed := 0
	for _, id := range r.storage.Keys() {
		v, found := r.storage.Get(id)
		if found && r.expired(v, now) {
			r.storage.Delete(id)
			removed++
		}
	}
	return removed
}

// RunJanitor sweeps every interval until ctx is done.
func (r *InmemViewRepository) RunJanitor(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := r.Sweep()
			if onSweep != nil && removed > 0 {
				onSweep(removed)
			}
		}
	}
}
