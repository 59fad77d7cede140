package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/service"
	"dict-bridge/internal/platform/kafka/consumer"
	dErrors "dict-bridge/pkg/domain-errors"
)

// PhaseHandler consumes phase-start events for one claim type and drives the
// transitioner. Validation, not-found, and invalid-state failures are
// delivery bugs, not transient faults: they are logged and the message is
// committed so the pipeline never spins on them. Transport failures were
// already dead-lettered by the service, so they commit too.
type PhaseHandler struct {
	svc       *service.Transitioner
	claimType models.ClaimType
	logger    *slog.Logger
}

// NewPhaseHandler creates the inbound handler for one claim type's topic.
func NewPhaseHandler(svc *service.Transitioner, claimType models.ClaimType, logger *slog.Logger) *PhaseHandler {
	return &PhaseHandler{svc: svc, claimType: claimType, logger: logger}
}

// Handle decodes one phase event and applies it.
func (h *PhaseHandler) Handle(ctx context.Context, msg *consumer.Message) error {
	var ev models.ClaimEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		h.logger.Error("undecodable phase event, dropping",
			"topic", msg.Topic, "key", string(msg.Key), "error", err)
		return nil
	}

	if _, err := h.svc.Apply(ctx, h.claimType, ev); err != nil {
		h.log(err, msg, ev)
	}
	return nil
}

func (h *PhaseHandler) log(err error, msg *consumer.Message, ev models.ClaimEvent) {
	attrs := []any{
		"topic", msg.Topic,
		"key_id", ev.ID,
		"phase_state", ev.State,
		"error", err,
	}
	switch dErrors.CodeOf(err) {
	case dErrors.CodeUnavailable:
		// Already re-dispatched to the dead-letter channel.
		h.logger.Warn("phase deferred to dead-letter channel", attrs...)
	case dErrors.CodeInvalidInput, dErrors.CodeNotFound, dErrors.CodeInvalidState:
		h.logger.Error("phase event rejected", attrs...)
	default:
		h.logger.Error("phase handling failed", attrs...)
	}
}
