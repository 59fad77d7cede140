package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dict-bridge/internal/claims/metrics"
	"dict-bridge/internal/claims/models"
	"dict-bridge/internal/claims/ports"
	dErrors "dict-bridge/pkg/domain-errors"
	"dict-bridge/pkg/platform/sentinel"
)

// Clock supplies the current time; injected for expiry boundary tests.
type Clock func() time.Time

// Locker serializes sweeps cluster-wide. TryLock returns ok=false when
// another instance holds the lock; release must be called when ok is true.
type Locker interface {
	TryLock(ctx context.Context) (release func(), ok bool, err error)
}

// Sweeper force-expires claims left pending past the configured threshold.
// It never mutates key state directly: for each qualifying key it emits a
// pending-expired event that re-enters the transition pipeline as a
// cancellation, keeping a single code path for all state changes.
type Sweeper struct {
	keys      ports.KeyStore
	claims    ports.ClaimStore
	emitter   ports.EventEmitter
	threshold time.Duration
	clock     Clock
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// SweeperOption configures a Sweeper.
type SweeperOption func(*Sweeper)

// WithSweeperClock sets the clock used to compute the expiry cutoff.
func WithSweeperClock(clock Clock) SweeperOption {
	return func(s *Sweeper) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithSweeperMetrics attaches Prometheus metrics.
func WithSweeperMetrics(m *metrics.Metrics) SweeperOption {
	return func(s *Sweeper) { s.metrics = m }
}

// NewSweeper wires the expiry sweep. threshold is how long a claim may sit
// pending before it becomes eligible for forced expiry.
func NewSweeper(
	keys ports.KeyStore,
	claims ports.ClaimStore,
	emitter ports.EventEmitter,
	threshold time.Duration,
	logger *slog.Logger,
	opts ...SweeperOption,
) (*Sweeper, error) {
	if keys == nil {
		return nil, fmt.Errorf("key store is required")
	}
	if claims == nil {
		return nil, fmt.Errorf("claim store is required")
	}
	if emitter == nil {
		return nil, fmt.Errorf("event emitter is required")
	}
	if threshold <= 0 {
		return nil, fmt.Errorf("expiry threshold must be positive")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sweeper{
		keys:      keys,
		claims:    claims,
		emitter:   emitter,
		threshold: threshold,
		clock:     time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SweepExpired scans keys in CLAIM_PENDING and emits a pending-expired event
// for every key whose claim was opened before now minus the threshold. The
// returned slice holds exactly the keys for which an event was emitted.
func (s *Sweeper) SweepExpired(ctx context.Context, reason models.ClaimReason) ([]*models.Key, error) {
	if reason == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "sweep reason is required")
	}
	if !reason.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown claim reason %q", reason)
	}

	pending, err := s.keys.ListByState(ctx, models.KeyStateClaimPending)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list pending keys")
	}

	cutoff := s.clock().Add(-s.threshold)
	expired := make([]*models.Key, 0, len(pending))
	for _, key := range pending {
		if key.ClaimID == nil {
			// Pending without a claim reference is a data-integrity fault;
			// surface it but keep sweeping the rest.
			s.logger.Error("pending key has no claim reference", "key_id", key.ID)
			continue
		}
		claim, err := s.claims.GetByIDAndOpenedBefore(ctx, *key.ClaimID, cutoff)
		if errors.Is(err, sentinel.ErrNotFound) {
			// Still inside the pending window (or the claim is gone); leave
			// the key untouched.
			continue
		}
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "check claim opening date")
		}

		ev := models.ClaimEvent{
			ID:     key.ID,
			State:  models.KeyStateCanceled,
			UserID: key.UserID,
			Reason: reason,
		}
		if err := s.emitter.ClaimPendingExpired(ctx, claim.Type, ev); err != nil {
			s.logger.Error("emit pending-expired event", "key_id", key.ID, "error", err)
			continue
		}
		expired = append(expired, key)
	}

	if s.metrics != nil {
		s.metrics.ClaimsSwept.Add(float64(len(expired)))
	}
	if len(expired) > 0 {
		s.logger.Info("expired pending claims", "count", len(expired), "reason", reason)
	}
	return expired, nil
}

// Run sweeps on a fixed interval until ctx is cancelled. Each tick acquires
// the cluster-wide lock first so at most one sweep executes at a time across
// instances.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration, locker Locker, reason models.ClaimReason) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx, locker, reason)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context, locker Locker, reason models.ClaimReason) {
	release, ok, err := locker.TryLock(ctx)
	if err != nil {
		s.logger.Error("acquire sweep lock", "error", err)
		return
	}
	if !ok {
		if s.metrics != nil {
			s.metrics.SweepsSkipped.Inc()
		}
		s.logger.Debug("sweep skipped, another instance holds the lock")
		return
	}
	defer release()

	if _, err := s.SweepExpired(ctx, reason); err != nil {
		s.logger.Error("sweep failed", "error", err)
	}
}
