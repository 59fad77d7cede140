package key

import (
	"context"
	"sync"
	"time"

	"dict-bridge/internal/claims/models"
	id "dict-bridge/pkg/domain"
	"dict-bridge/pkg/platform/sentinel"
)

// InMemoryStore is a map-backed KeyStore for tests and local runs.
type InMemoryStore struct {
	mu   sync.RWMutex
	keys map[id.KeyID]*models.Key
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{keys: make(map[id.KeyID]*models.Key)}
}

// Put inserts or replaces a key record. Test seeding helper.
func (s *InMemoryStore) Put(_ context.Context, key *models.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *key
	s.keys[key.ID] = &cp
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, keyID id.KeyID) (*models.Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[keyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *key
	return &cp, nil
}

// UpdateState performs the compare-and-swap under the store lock, mirroring
// the atomic read-modify-write the Postgres store gets from a conditional
// UPDATE.
func (s *InMemoryStore) UpdateState(_ context.Context, keyID id.KeyID, from, to models.KeyState) (*models.Key, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, ok := s.keys[keyID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if key.State != from {
		return nil, sentinel.ErrInvalidState
	}
	key.State = to
	key.UpdatedAt = time.Now()
	cp := *key
	return &cp, nil
}

func (s *InMemoryStore) ListByState(_ context.Context, state models.KeyState) ([]*models.Key, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Key
	for _, key := range s.keys {
		if key.State == state {
			cp := *key
			out = append(out, &cp)
		}
	}
	return out, nil
}
