package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/ports/mocks"
	keystore "dict-bridge/internal/claims/store/key"
	id "dict-bridge/pkg/domain"
	dErrors "dict-bridge/pkg/domain-errors"
)

// =============================================================================
// DeadLetter Test Suite
// =============================================================================

type DeadLetterSuite struct {
	suite.Suite
	ctx context.Context

	keys    *keystore.InMemoryStore
	emitter *mocks.MockEventEmitter
	svc     *DeadLetter
}

func TestDeadLetterSuite(t *testing.T) {
	suite.Run(t, new(DeadLetterSuite))
}

func (s *DeadLetterSuite) SetupTest() {
	s.ctx = context.Background()
	ctrl := gomock.NewController(s.T())
	s.keys = keystore.NewMemory()
	s.emitter = mocks.NewMockEventEmitter(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var err error
	s.svc, err = NewDeadLetter(s.keys, s.emitter, logger)
	s.Require().NoError(err)
}

func (s *DeadLetterSuite) seedKey(state models.KeyState) *models.Key {
	key := &models.Key{
		ID:        id.KeyID(uuid.New()),
		Value:     "user@example.com",
		State:     state,
		UserID:    id.UserID(uuid.New()),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.Require().NoError(s.keys.Put(s.ctx, key))
	return key
}

func (s *DeadLetterSuite) TestMarkFailedSetsPhaseFailureState() {
	key := s.seedKey(models.KeyStateReady)

	s.emitter.EXPECT().
		PhaseFailed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.KeyEvent) error {
			s.Equal(key.ID, ev.ID)
			s.Equal(models.KeyStateOwnershipFailed, ev.State)
			return nil
		})

	got, err := s.svc.MarkFailed(s.ctx, models.ClaimTypeOwnership, event(key, models.KeyStateOwnershipOpened))
	s.Require().NoError(err)
	s.Equal(models.KeyStateOwnershipFailed, got.State)

	stored, err := s.keys.Get(s.ctx, key.ID)
	s.Require().NoError(err)
	s.Equal(models.KeyStateOwnershipFailed, stored.State)
}

func (s *DeadLetterSuite) TestDenyPhaseGetsItsOwnFailureState() {
	key := s.seedKey(models.KeyStateClaimPending)

	s.emitter.EXPECT().PhaseFailed(gomock.Any(), gomock.Any()).Return(nil)

	ev := event(key, models.KeyStateReady)
	ev.Reason = models.ReasonUserRequested
	got, err := s.svc.MarkFailed(s.ctx, models.ClaimTypeOwnership, ev)
	s.Require().NoError(err)
	s.Equal(models.KeyStateClaimDenyFailed, got.State)
}

func (s *DeadLetterSuite) TestTerminalKeyIsLeftUntouched() {
	// Dead-letter redelivery after the key already failed: no update, no
	// event. The emitter mock has no expectations.
	key := s.seedKey(models.KeyStateOwnershipFailed)

	got, err := s.svc.MarkFailed(s.ctx, models.ClaimTypeOwnership, event(key, models.KeyStateOwnershipOpened))
	s.Require().NoError(err)
	s.Equal(models.KeyStateOwnershipFailed, got.State)
}

func (s *DeadLetterSuite) TestEmitFailureDoesNotUndoTheMark() {
	key := s.seedKey(models.KeyStateReady)

	s.emitter.EXPECT().PhaseFailed(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	got, err := s.svc.MarkFailed(s.ctx, models.ClaimTypeOwnership, event(key, models.KeyStateOwnershipOpened))
	s.Require().NoError(err)
	s.Equal(models.KeyStateOwnershipFailed, got.State)
}

func (s *DeadLetterSuite) TestValidation() {
	key := s.seedKey(models.KeyStateReady)

	s.Run("unknown claim type", func() {
		_, err := s.svc.MarkFailed(s.ctx, "LEASE", event(key, models.KeyStateOwnershipOpened))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("nil id", func() {
		ev := models.ClaimEvent{State: models.KeyStateOwnershipOpened}
		_, err := s.svc.MarkFailed(s.ctx, models.ClaimTypeOwnership, ev)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("state with no transition", func() {
		_, err := s.svc.MarkFailed(s.ctx, models.ClaimTypeOwnership, event(key, models.KeyStateActive))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("unknown key", func() {
		ev := models.ClaimEvent{
			ID:     id.KeyID(uuid.New()),
			State:  models.KeyStateOwnershipOpened,
			UserID: id.UserID(uuid.New()),
		}
		_, err := s.svc.MarkFailed(s.ctx, models.ClaimTypeOwnership, ev)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
