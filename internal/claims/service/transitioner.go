// Package service implements the claim lifecycle: a generic transitioner
// dispatching over the transition table, the dead-letter terminal path, and
// the expiry sweeper. All state changes flow through the transitioner's
// compare-and-swap so concurrent phase messages for one key serialize on it.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"dict-bridge/internal/claims/metrics"
	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/ports"
	"dict-bridge/internal/claims/transitions"
	id "dict-bridge/pkg/domain"
	dErrors "dict-bridge/pkg/domain-errors"
	"dict-bridge/pkg/platform/sentinel"
)

const tracerName = "dict-bridge/claims"

// Transitioner drives keys through claim phases. One instance serves every
// (claim type, phase) pair; the transition table decides pre/post states and
// the gateway operation.
type Transitioner struct {
	keys       ports.KeyStore
	claims     ports.ClaimStore
	gateway    ports.DirectoryGateway
	emitter    ports.EventEmitter
	deadLetter ports.DeadLetterPublisher

	// participant is this institution's routing code, sent on every call.
	participant string
	// maxDispatches bounds dead-letter redeliveries before a key is marked
	// failed. The default of 1 is a single re-dispatch.
	maxDispatches int

	metrics *metrics.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// TransitionerOption configures a Transitioner.
type TransitionerOption func(*Transitioner)

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) TransitionerOption {
	return func(t *Transitioner) { t.metrics = m }
}

// WithMaxDispatches overrides the dead-letter redelivery bound.
func WithMaxDispatches(n int) TransitionerOption {
	return func(t *Transitioner) {
		if n > 0 {
			t.maxDispatches = n
		}
	}
}

// NewTransitioner wires the generic phase handler.
func NewTransitioner(
	keys ports.KeyStore,
	claims ports.ClaimStore,
	gateway ports.DirectoryGateway,
	emitter ports.EventEmitter,
	deadLetter ports.DeadLetterPublisher,
	participant string,
	logger *slog.Logger,
	opts ...TransitionerOption,
) (*Transitioner, error) {
	if keys == nil {
		return nil, fmt.Errorf("key store is required")
	}
	if claims == nil {
		return nil, fmt.Errorf("claim store is required")
	}
	if gateway == nil {
		return nil, fmt.Errorf("directory gateway is required")
	}
	if emitter == nil {
		return nil, fmt.Errorf("event emitter is required")
	}
	if deadLetter == nil {
		return nil, fmt.Errorf("dead-letter publisher is required")
	}
	if participant == "" {
		return nil, fmt.Errorf("participant routing code is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	t := &Transitioner{
		keys:          keys,
		claims:        claims,
		gateway:       gateway,
		emitter:       emitter,
		deadLetter:    deadLetter,
		participant:   participant,
		maxDispatches: 1,
		logger:        logger,
		tracer:        otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Apply runs one phase of the claim lifecycle for the key named by the event.
//
// Replay of an already-completed phase returns the key unchanged: no gateway
// call, no event. A key in any state other than the phase's pre- or target
// state is an invalid-state error and is never coerced. A transport failure
// of the gateway re-dispatches the original event to the dead-letter channel
// and leaves the key untouched; a directory rejection is logged and dropped.
func (t *Transitioner) Apply(ctx context.Context, claimType models.ClaimType, ev models.ClaimEvent) (*models.Key, error) {
	ctx, span := t.tracer.Start(ctx, "claims.Apply", trace.WithAttributes(
		attribute.String("claim.type", string(claimType)),
		attribute.String("claim.phase_state", string(ev.State)),
	))
	defer span.End()

	tr, err := t.resolve(claimType, ev)
	if err != nil {
		return nil, err
	}

	key, err := t.loadKey(ctx, ev.ID)
	if err != nil {
		return nil, err
	}

	// Already completed: duplicate delivery, treated as success.
	if key.State == tr.Target {
		t.logger.Debug("phase already completed, replay ignored",
			"key_id", ev.ID, "state", key.State)
		if t.metrics != nil {
			t.metrics.Replays.WithLabelValues(string(claimType), string(tr.Target)).Inc()
		}
		return key, nil
	}

	if key.State != tr.Pre {
		return nil, dErrors.Newf(dErrors.CodeInvalidState,
			"key %s is %s, phase expects %s or %s", ev.ID, key.State, tr.Pre, tr.Target)
	}

	reason := ev.Reason
	if tr.RequiresClaim {
		claim, err := t.loadClaim(ctx, claimType, key)
		if err != nil {
			return nil, err
		}
		if reason == "" {
			reason = claim.Reason
		}
	}

	req := ports.DirectoryRequest{
		Participant: t.participant,
		Key:         key.Value,
		Reason:      reason,
	}
	if err := t.invoke(ctx, tr.Op, req); err != nil {
		return t.handleGatewayError(ctx, claimType, tr, ev, key, err)
	}

	updated, err := t.keys.UpdateState(ctx, key.ID, tr.Pre, tr.Target)
	switch {
	case errors.Is(err, sentinel.ErrInvalidState):
		// Lost the read-modify-write race to a concurrent message.
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidState, "key state changed concurrently")
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, "key disappeared during transition")
	case err != nil:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "persist key state")
	}

	if err := t.emitter.PhaseSucceeded(ctx, models.NewKeyEvent(updated, reason)); err != nil {
		// The state is already committed; a redelivery hits the replay path
		// and will not re-emit, so surface the miss instead of hiding it.
		return updated, dErrors.Wrap(err, dErrors.CodeInternal, "emit phase-succeeded event")
	}

	if t.metrics != nil {
		t.metrics.Transitions.WithLabelValues(string(claimType), string(tr.Target)).Inc()
	}
	t.logger.Info("claim phase completed",
		"key_id", updated.ID, "claim_type", claimType,
		"from", tr.Pre, "to", tr.Target, "op", tr.Op)
	return updated, nil
}

// resolve validates the event and finds its transition.
func (t *Transitioner) resolve(claimType models.ClaimType, ev models.ClaimEvent) (transitions.Transition, error) {
	if !claimType.IsValid() {
		return transitions.Transition{}, dErrors.Newf(dErrors.CodeInvalidInput, "unknown claim type %q", claimType)
	}
	if ev.ID.IsNil() {
		return transitions.Transition{}, dErrors.New(dErrors.CodeInvalidInput, "event id is required")
	}
	if !ev.State.IsValid() {
		return transitions.Transition{}, dErrors.Newf(dErrors.CodeInvalidInput, "unknown key state %q", ev.State)
	}
	if ev.UserID.IsNil() {
		return transitions.Transition{}, dErrors.New(dErrors.CodeInvalidInput, "event userId is required")
	}
	if ev.Reason != "" && !ev.Reason.IsValid() {
		return transitions.Transition{}, dErrors.Newf(dErrors.CodeInvalidInput, "unknown claim reason %q", ev.Reason)
	}

	tr, ok := transitions.Lookup(claimType, ev.State)
	if !ok {
		return transitions.Transition{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"no %s transition targets state %s", claimType, ev.State)
	}
	if tr.RequiresReason && ev.Reason == "" {
		return transitions.Transition{}, dErrors.Newf(dErrors.CodeInvalidInput,
			"reason is required to reach %s", tr.Target)
	}
	return tr, nil
}

func (t *Transitioner) loadKey(ctx context.Context, keyID id.KeyID) (*models.Key, error) {
	key, err := t.keys.Get(ctx, keyID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("key %s not found", keyID))
	case err != nil:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load key")
	}
	return key, nil
}

// loadClaim fetches the key's active claim for phases that need its reason
// and opening metadata. A key that should reference a claim but does not is
// a validation failure; a dangling reference is a data-integrity not-found.
func (t *Transitioner) loadClaim(ctx context.Context, claimType models.ClaimType, key *models.Key) (*models.Claim, error) {
	if key.ClaimID == nil {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "key %s has no claim reference", key.ID)
	}
	claim, err := t.claims.Get(ctx, *key.ClaimID)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, fmt.Sprintf("claim %s not found", key.ClaimID))
	case err != nil:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load claim")
	}
	if claim.Type != claimType {
		return nil, dErrors.Newf(dErrors.CodeInvalidState,
			"claim %s is %s, pipeline handles %s", claim.ID, claim.Type, claimType)
	}
	return claim, nil
}

// invoke dispatches the table's operation onto the gateway interface.
func (t *Transitioner) invoke(ctx context.Context, op transitions.Op, req ports.DirectoryRequest) error {
	start := time.Now()
	var err error
	switch op {
	case transitions.OpOpenOwnership:
		err = t.gateway.OpenOwnership(ctx, req)
	case transitions.OpConfirmOwnership:
		err = t.gateway.ConfirmOwnership(ctx, req)
	case transitions.OpCancelOwnership:
		err = t.gateway.CancelOwnership(ctx, req)
	case transitions.OpDenyClaim:
		err = t.gateway.DenyClaim(ctx, req)
	case transitions.OpOpenPortability:
		err = t.gateway.OpenPortability(ctx, req)
	case transitions.OpConfirmPortability:
		err = t.gateway.ConfirmPortability(ctx, req)
	case transitions.OpCancelPortability:
		err = t.gateway.CancelPortability(ctx, req)
	default:
		return dErrors.Newf(dErrors.CodeInternal, "unmapped gateway operation %q", op)
	}
	if t.metrics != nil {
		t.metrics.GatewayDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())
	}
	return err
}

// handleGatewayError routes the two gateway failure classes. Transport
// failures re-dispatch the original payload to the dead-letter channel with
// the dispatch count bumped; rejections are soft failures that leave the key
// unchanged and are not retried.
func (t *Transitioner) handleGatewayError(
	ctx context.Context,
	claimType models.ClaimType,
	tr transitions.Transition,
	ev models.ClaimEvent,
	key *models.Key,
	gwErr error,
) (*models.Key, error) {
	switch {
	case ports.IsGatewayTransport(gwErr):
		redispatch := ev
		redispatch.Dispatches++
		if err := t.deadLetter.Publish(ctx, claimType, redispatch); err != nil {
			t.logger.Error("dead-letter dispatch failed",
				"key_id", ev.ID, "claim_type", claimType, "error", err)
			return nil, dErrors.Wrap(errors.Join(gwErr, err), dErrors.CodeUnavailable,
				"directory unreachable and dead-letter dispatch failed")
		}
		if t.metrics != nil {
			t.metrics.DeadLetters.WithLabelValues(string(claimType), string(tr.Target)).Inc()
		}
		t.logger.Warn("directory unreachable, event dead-lettered",
			"key_id", ev.ID, "claim_type", claimType, "op", tr.Op,
			"dispatches", redispatch.Dispatches, "error", gwErr)
		return nil, dErrors.Wrap(gwErr, dErrors.CodeUnavailable, "directory unreachable")

	case ports.IsGatewayRejection(gwErr):
		// Business-level refusal: no state change, no retry. The caller must
		// re-drive with a new event if applicable.
		if t.metrics != nil {
			t.metrics.Rejections.WithLabelValues(string(claimType), string(tr.Op)).Inc()
		}
		t.logger.Warn("directory rejected claim operation",
			"key_id", ev.ID, "claim_type", claimType, "op", tr.Op, "error", gwErr)
		return key, nil

	default:
		return nil, dErrors.Wrap(gwErr, dErrors.CodeInternal, "directory call failed")
	}
}

// MaxDispatches exposes the configured dead-letter bound to the transport
// layer, which decides between a gateway retry and terminal failure marking.
func (t *Transitioner) MaxDispatches() int { return t.maxDispatches }
