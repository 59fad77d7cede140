package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dict-bridge/internal/claims/metrics"
	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/ports"
	"dict-bridge/internal/claims/transitions"
	dErrors "dict-bridge/pkg/domain-errors"
	"dict-bridge/pkg/platform/sentinel"
)

// DeadLetter is the terminal path for phase events whose gateway call failed
// transport-wise and exhausted the redelivery bound. It performs no gateway
// call: it marks the key with the phase's FAILED state and emits a failed
// event. There is no second-level retry beyond this point; failures here are
// logged for manual follow-up.
//
// TODO: operator escalation for keys stuck in FAILED is still a runbook,
// not an automated path.
type DeadLetter struct {
	keys    ports.KeyStore
	emitter ports.EventEmitter
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// DeadLetterOption configures a DeadLetter service.
type DeadLetterOption func(*DeadLetter)

// WithDeadLetterMetrics attaches Prometheus metrics.
func WithDeadLetterMetrics(m *metrics.Metrics) DeadLetterOption {
	return func(d *DeadLetter) { d.metrics = m }
}

// NewDeadLetter wires the terminal failure handler.
func NewDeadLetter(keys ports.KeyStore, emitter ports.EventEmitter, logger *slog.Logger, opts ...DeadLetterOption) (*DeadLetter, error) {
	if keys == nil {
		return nil, fmt.Errorf("key store is required")
	}
	if emitter == nil {
		return nil, fmt.Errorf("event emitter is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	d := &DeadLetter{keys: keys, emitter: emitter, logger: logger}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// MarkFailed transitions the event's key into the phase-specific FAILED
// state. Keys already in a terminal failed or cancelled state are left
// untouched (idempotent redelivery). Emit failures are logged only.
func (d *DeadLetter) MarkFailed(ctx context.Context, claimType models.ClaimType, ev models.ClaimEvent) (*models.Key, error) {
	if !claimType.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown claim type %q", claimType)
	}
	if ev.ID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "event id is required")
	}
	tr, ok := transitions.Lookup(claimType, ev.State)
	if !ok {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "no %s transition targets state %s", claimType, ev.State)
	}

	key, err := d.keys.Get(ctx, ev.ID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("key %s not found", ev.ID))
	case err != nil:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load key")
	}

	if key.State.IsTerminal() {
		d.logger.Debug("key already terminal, dead-letter redelivery ignored",
			"key_id", key.ID, "state", key.State)
		return key, nil
	}

	updated, err := d.keys.UpdateState(ctx, key.ID, key.State, tr.Failed)
	switch {
	case errors.Is(err, sentinel.ErrInvalidState):
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidState, "key state changed concurrently")
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "key disappeared while marking failure")
	case err != nil:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "persist failed state")
	}

	if err := d.emitter.PhaseFailed(ctx, models.NewKeyEvent(updated, ev.Reason)); err != nil {
		d.logger.Error("emit phase-failed event", "key_id", updated.ID, "error", err)
	}

	if d.metrics != nil {
		d.metrics.FailuresMarked.WithLabelValues(string(claimType), string(tr.Failed)).Inc()
	}
	d.logger.Warn("key marked failed after exhausted gateway retries",
		"key_id", updated.ID, "claim_type", claimType, "state", tr.Failed)
	return updated, nil
}
