package persistence

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/contactmessage"
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

func (s *SafeMap[K, V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Collect(maps.Values(s.m))
}

func (s *SafeMap[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}

// InmemMessageRepository keeps contact messages for the process lifetime.
type InmemMessageRepository struct {
	storage *SafeMap[uuid.UUID, contactmessage.ContactMessage]
}

func NewInmemMessageRepository() *InmemMessageRepository {
	return &InmemMessageRepository{
		storage: NewSafeMap[uuid.UUID, contactmessage.ContactMessage](),
	}
}

func (r *InmemMessageRepository) GetByID(ctx context.Context, id uuid.UUID) (contactmessage.ContactMessage, error) {
	msg, found := r.storage.Get(id)
	if !found {
		return nil, contactmessage.ErrMessageNotFound
	}
	return msg, nil
}

func (r *InmemMessageRepository) Save(ctx context.Context, msg contactmessage.ContactMessage) (contactmessage.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.storage.Set(msg.ID(), msg)
	return msg, nil
}

func (r *InmemMessageRepository) List(ctx context.Context, limit int) ([]contactmessage.ContactMessage, error) {
	messages := r.storage.Values()
	slices.SortFunc(messages, func(a, b contactmessage.ContactMessage) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}

func (r *InmemMessageRepository) Count(ctx context.Context) (int, error) {
	return r.storage.Len(), nil
}
