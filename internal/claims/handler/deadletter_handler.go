package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/service"
	"dict-bridge/internal/platform/kafka/consumer"
)

// DeadLetterHandler consumes a phase topic's dead-letter sibling. While the
// event's dispatch count is below the configured bound it re-drives the
// gateway through the transitioner; once the bound is reached it marks the
// key terminally failed. With the default bound of 1 every dead-lettered
// event goes straight to failure marking, which is the single re-dispatch
// semantics of the protocol.
type DeadLetterHandler struct {
	transitioner *service.Transitioner
	deadLetter   *service.DeadLetter
	claimType    models.ClaimType
	logger       *slog.Logger
}

// NewDeadLetterHandler creates the dead-letter handler for one claim type.
func NewDeadLetterHandler(
	transitioner *service.Transitioner,
	deadLetter *service.DeadLetter,
	claimType models.ClaimType,
	logger *slog.Logger,
) *DeadLetterHandler {
	return &DeadLetterHandler{
		transitioner: transitioner,
		deadLetter:   deadLetter,
		claimType:    claimType,
		logger:       logger,
	}
}

// Handle decodes one dead-lettered event and either retries or buries it.
// Errors are logged only; there is no second-level retry channel.
func (h *DeadLetterHandler) Handle(ctx context.Context, msg *consumer.Message) error {
	var ev models.ClaimEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		h.logger.Error("undecodable dead-letter event, dropping",
			"topic", msg.Topic, "key", string(msg.Key), "error", err)
		return nil
	}

	if ev.Dispatches < h.transitioner.MaxDispatches() {
		if _, err := h.transitioner.Apply(ctx, h.claimType, ev); err != nil {
			h.logger.Warn("dead-letter retry failed",
				"key_id", ev.ID, "dispatches", ev.Dispatches, "error", err)
		}
		return nil
	}

	if _, err := h.deadLetter.MarkFailed(ctx, h.claimType, ev); err != nil {
		h.logger.Error("dead-letter failure marking failed",
			"key_id", ev.ID, "phase_state", ev.State, "error", err)
	}
	return nil
}
