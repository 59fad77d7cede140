//go:build integration

package key_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dict-bridge/internal/claims/models"
	claimstore "dict-bridge/internal/claims/store/claim"
	"dict-bridge/internal/claims/store/key"
	id "dict-bridge/pkg/domain"
	"dict-bridge/pkg/platform/sentinel"
	"dict-bridge/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *key.PostgresStore
	claims   *claimstore.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = key.NewPostgres(s.postgres.Pool)
	s.claims = claimstore.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	// Truncate in dependency order
	err := s.postgres.TruncateTables(ctx, "dict_keys", "dict_claims")
	s.Require().NoError(err)
}

func newTestKey(state models.KeyState) *models.Key {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Key{
		ID:        id.KeyID(uuid.New()),
		Value:     "key-" + uuid.NewString(),
		State:     state,
		UserID:    id.UserID(uuid.New()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PostgresStoreSuite) TestInsertAndGet() {
	ctx := context.Background()

	claim := &models.Claim{
		ID:       id.ClaimID(uuid.New()),
		Type:     models.ClaimTypeOwnership,
		OpenedAt: time.Now().UTC(),
		Reason:   models.ReasonUserRequested,
	}
	s.Require().NoError(s.claims.Insert(ctx, claim))

	k := newTestKey(models.KeyStateClaimPending)
	k.ClaimID = &claim.ID
	s.Require().NoError(s.store.Insert(ctx, k))

	got, err := s.store.Get(ctx, k.ID)
	s.Require().NoError(err)
	s.Equal(k.Value, got.Value)
	s.Equal(models.KeyStateClaimPending, got.State)
	s.Require().NotNil(got.ClaimID)
	s.Equal(claim.ID, *got.ClaimID)
}

func (s *PostgresStoreSuite) TestGetNotFound() {
	_, err := s.store.Get(context.Background(), id.KeyID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUpdateStateGuards() {
	ctx := context.Background()
	k := newTestKey(models.KeyStateReady)
	s.Require().NoError(s.store.Insert(ctx, k))

	s.Run("matching from state swaps", func() {
		got, err := s.store.UpdateState(ctx, k.ID, models.KeyStateReady, models.KeyStateOwnershipOpened)
		s.Require().NoError(err)
		s.Equal(models.KeyStateOwnershipOpened, got.State)
	})

	s.Run("stale from state is invalid-state, not not-found", func() {
		_, err := s.store.UpdateState(ctx, k.ID, models.KeyStateReady, models.KeyStateOwnershipOpened)
		s.ErrorIs(err, sentinel.ErrInvalidState)
	})

	s.Run("missing key is not-found", func() {
		_, err := s.store.UpdateState(ctx, id.KeyID(uuid.New()), models.KeyStateReady, models.KeyStateOwnershipOpened)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

// TestConcurrentUpdateState verifies that of N racing compare-and-swaps on
// one key, exactly one commits.
func (s *PostgresStoreSuite) TestConcurrentUpdateState() {
	ctx := context.Background()
	k := newTestKey(models.KeyStateOwnershipOpened)
	s.Require().NoError(s.store.Insert(ctx, k))

	const goroutines = 50
	var wg sync.WaitGroup
	var wins, losses atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.UpdateState(ctx, k.ID,
				models.KeyStateOwnershipOpened, models.KeyStateOwnershipConfirmStarted)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, sentinel.ErrInvalidState):
				losses.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load(), "exactly one swap should commit")
	s.Equal(int32(goroutines-1), losses.Load(), "all others should see the lost race")

	got, err := s.store.Get(ctx, k.ID)
	s.Require().NoError(err)
	s.Equal(models.KeyStateOwnershipConfirmStarted, got.State)
}

func (s *PostgresStoreSuite) TestListByState() {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s.Require().NoError(s.store.Insert(ctx, newTestKey(models.KeyStateClaimPending)))
	}
	s.Require().NoError(s.store.Insert(ctx, newTestKey(models.KeyStateReady)))

	pending, err := s.store.ListByState(ctx, models.KeyStateClaimPending)
	s.Require().NoError(err)
	s.Len(pending, 3)

	none, err := s.store.ListByState(ctx, models.KeyStateCanceled)
	s.Require().NoError(err)
	s.Empty(none)
}
