package claim

import (
	"context"
	"sync"
	"time"

	"dict-bridge/internal/claims/models"
	id "dict-bridge/pkg/domain"
	"dict-bridge/pkg/platform/sentinel"
)

// InMemoryStore is a map-backed ClaimStore for tests and local runs.
type InMemoryStore struct {
	mu     sync.RWMutex
	claims map[id.ClaimID]*models.Claim
}

func NewMemory() *InMemoryStore {
	return &InMemoryStore{claims: make(map[id.ClaimID]*models.Claim)}
}

// Put inserts or replaces a claim record. Test seeding helper.
func (s *InMemoryStore) Put(_ context.Context, claim *models.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *claim
	s.claims[claim.ID] = &cp
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, claimID id.ClaimID) (*models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	claim, ok := s.claims[claimID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	cp := *claim
	return &cp, nil
}

// GetByIDAndOpenedBefore qualifies a claim for forced expiry: it is returned
// only when it exists and was opened strictly before the cutoff.
func (s *InMemoryStore) GetByIDAndOpenedBefore(_ context.Context, claimID id.ClaimID, cutoff time.Time) (*models.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	claim, ok := s.claims[claimID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !claim.OpenedAt.Before(cutoff) {
		return nil, sentinel.ErrNotFound
	}
	cp := *claim
	return &cp, nil
}
