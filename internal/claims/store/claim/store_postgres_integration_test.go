//go:build integration

package claim_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/store/claim"
	id "dict-bridge/pkg/domain"
	"dict-bridge/pkg/platform/sentinel"
	"dict-bridge/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *claim.PostgresStore
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
	s.store = claim.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.postgres.TruncateTables(ctx, "dict_keys", "dict_claims")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestInsertAndGet() {
	ctx := context.Background()
	c := &models.Claim{
		ID:       id.ClaimID(uuid.New()),
		Type:     models.ClaimTypePortability,
		OpenedAt: time.Now().UTC().Truncate(time.Microsecond),
		Reason:   models.ReasonFraud,
	}
	s.Require().NoError(s.store.Insert(ctx, c))

	got, err := s.store.Get(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(models.ClaimTypePortability, got.Type)
	s.Equal(models.ReasonFraud, got.Reason)
	s.WithinDuration(c.OpenedAt, got.OpenedAt, time.Millisecond)
}

func (s *PostgresStoreSuite) TestNullReasonReadsAsEmpty() {
	ctx := context.Background()
	c := &models.Claim{
		ID:       id.ClaimID(uuid.New()),
		Type:     models.ClaimTypeOwnership,
		OpenedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.store.Insert(ctx, c))

	got, err := s.store.Get(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal(models.ClaimReason(""), got.Reason)
}

func (s *PostgresStoreSuite) TestGetNotFound() {
	_, err := s.store.Get(context.Background(), id.ClaimID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

// TestOpenedBeforeCutoff verifies the expiry predicate lives in the query:
// the claim qualifies only when opened strictly before the cutoff.
func (s *PostgresStoreSuite) TestOpenedBeforeCutoff() {
	ctx := context.Background()
	opened := time.Now().UTC().Add(-time.Hour).Truncate(time.Microsecond)
	c := &models.Claim{
		ID:       id.ClaimID(uuid.New()),
		Type:     models.ClaimTypeOwnership,
		OpenedAt: opened,
	}
	s.Require().NoError(s.store.Insert(ctx, c))

	s.Run("before cutoff qualifies", func() {
		got, err := s.store.GetByIDAndOpenedBefore(ctx, c.ID, opened.Add(time.Second))
		s.Require().NoError(err)
		s.Equal(c.ID, got.ID)
	})

	s.Run("at cutoff does not qualify", func() {
		_, err := s.store.GetByIDAndOpenedBefore(ctx, c.ID, opened)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("after cutoff does not qualify", func() {
		_, err := s.store.GetByIDAndOpenedBefore(ctx, c.ID, opened.Add(-time.Second))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}
