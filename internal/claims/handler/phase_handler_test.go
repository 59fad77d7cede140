package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/ports/mocks"
	"dict-bridge/internal/claims/service"
	claimstore "dict-bridge/internal/claims/store/claim"
	keystore "dict-bridge/internal/claims/store/key"
	"dict-bridge/internal/platform/kafka/consumer"
	id "dict-bridge/pkg/domain"
)

// =============================================================================
// PhaseHandler Test Suite
// =============================================================================
// The handler wraps the transitioner with a real service over memory stores;
// only the gateway and the emit side are mocked. Handler errors never bubble:
// every message commits.

type PhaseHandlerSuite struct {
	suite.Suite
	ctx context.Context

	keys       *keystore.InMemoryStore
	claims     *claimstore.InMemoryStore
	gateway    *mocks.MockDirectoryGateway
	emitter    *mocks.MockEventEmitter
	deadLetter *mocks.MockDeadLetterPublisher
	handler    *PhaseHandler
}

func TestPhaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PhaseHandlerSuite))
}

func (s *PhaseHandlerSuite) SetupTest() {
	s.ctx = context.Background()
	ctrl := gomock.NewController(s.T())
	s.keys = keystore.NewMemory()
	s.claims = claimstore.NewMemory()
	s.gateway = mocks.NewMockDirectoryGateway(ctrl)
	s.emitter = mocks.NewMockEventEmitter(ctrl)
	s.deadLetter = mocks.NewMockDeadLetterPublisher(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, err := service.NewTransitioner(s.keys, s.claims, s.gateway, s.emitter, s.deadLetter, "12345678", logger)
	s.Require().NoError(err)
	s.handler = NewPhaseHandler(svc, models.ClaimTypeOwnership, logger)
}

func (s *PhaseHandlerSuite) message(ev models.ClaimEvent) *consumer.Message {
	payload, err := json.Marshal(ev)
	s.Require().NoError(err)
	return &consumer.Message{
		Topic:     "dict.claims.ownership.v1",
		Key:       []byte(ev.ID.String()),
		Value:     payload,
		Timestamp: time.Now(),
	}
}

func (s *PhaseHandlerSuite) TestAppliesDecodedEvent() {
	key := &models.Key{
		ID:     id.KeyID(uuid.New()),
		Value:  "+5511999990000",
		State:  models.KeyStateReady,
		UserID: id.UserID(uuid.New()),
	}
	s.Require().NoError(s.keys.Put(s.ctx, key))

	s.gateway.EXPECT().OpenOwnership(gomock.Any(), gomock.Any()).Return(nil)
	s.emitter.EXPECT().PhaseSucceeded(gomock.Any(), gomock.Any()).Return(nil)

	ev := models.ClaimEvent{ID: key.ID, State: models.KeyStateOwnershipOpened, UserID: key.UserID}
	s.Require().NoError(s.handler.Handle(s.ctx, s.message(ev)))

	stored, err := s.keys.Get(s.ctx, key.ID)
	s.Require().NoError(err)
	s.Equal(models.KeyStateOwnershipOpened, stored.State)
}

func (s *PhaseHandlerSuite) TestUndecodablePayloadCommits() {
	msg := &consumer.Message{Topic: "dict.claims.ownership.v1", Value: []byte("{not json")}
	s.NoError(s.handler.Handle(s.ctx, msg))
}

func (s *PhaseHandlerSuite) TestRejectedEventCommits() {
	// Key missing: the service returns not-found, the handler logs and
	// commits so the topic does not spin.
	ev := models.ClaimEvent{
		ID:     id.KeyID(uuid.New()),
		State:  models.KeyStateOwnershipOpened,
		UserID: id.UserID(uuid.New()),
	}
	s.NoError(s.handler.Handle(s.ctx, s.message(ev)))
}

// =============================================================================
// Router
// =============================================================================

type recordingHandler struct {
	got []*consumer.Message
}

func (h *recordingHandler) Handle(_ context.Context, msg *consumer.Message) error {
	h.got = append(h.got, msg)
	return nil
}

func (s *PhaseHandlerSuite) TestRouterDispatchesByTopic() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger)
	ownership := &recordingHandler{}
	router.Register("dict.claims.ownership.v1", ownership)

	msg := &consumer.Message{Topic: "dict.claims.ownership.v1", Value: []byte("{}")}
	s.Require().NoError(router.Handle(s.ctx, msg))
	s.Len(ownership.got, 1)

	s.Run("unknown topic commits without dispatch", func() {
		s.NoError(router.Handle(s.ctx, &consumer.Message{Topic: "dict.claims.other.v1"}))
		s.Len(ownership.got, 1)
	})
}
