// Package ports defines the interfaces consumed by the claim lifecycle
// services. Persistence, the directory gateway, and event transport are
// collaborators; only their contracts live in this module.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/ports_mocks.go -package=mocks

import (
	"context"
	"time"

	"dict-bridge/internal/claims/models"
	id "dict-bridge/pkg/domain"
)

// KeyStore persists alias keys. Implementations return sentinel errors
// (pkg/platform/sentinel) for not-found and lost-update conditions.
type KeyStore interface {
	// Get loads a key by id. Returns sentinel.ErrNotFound when absent.
	Get(ctx context.Context, keyID id.KeyID) (*models.Key, error)

	// UpdateState atomically moves a key from 'from' to 'to' and returns the
	// updated record. The write succeeds only if the key is still in 'from'
	// at commit time: concurrent phase messages for the same key serialize
	// here, and the loser gets sentinel.ErrInvalidState.
	UpdateState(ctx context.Context, keyID id.KeyID, from, to models.KeyState) (*models.Key, error)

	// ListByState returns all keys currently in the given state.
	ListByState(ctx context.Context, state models.KeyState) ([]*models.Key, error)
}

// ClaimStore persists claims.
type ClaimStore interface {
	// Get loads a claim by id. Returns sentinel.ErrNotFound when absent.
	Get(ctx context.Context, claimID id.ClaimID) (*models.Claim, error)

	// GetByIDAndOpenedBefore returns the claim only if it exists AND was
	// opened strictly before the cutoff. Claims opened at or after the cutoff
	// report sentinel.ErrNotFound, which is how the sweeper excludes claims
	// still inside the pending window.
	GetByIDAndOpenedBefore(ctx context.Context, claimID id.ClaimID, cutoff time.Time) (*models.Claim, error)
}

// DirectoryRequest is the per-phase payload sent to the national directory.
type DirectoryRequest struct {
	// Participant is this institution's routing code (ISPB).
	Participant string
	// Key is the alias value being claimed.
	Key string
	// Reason is set on cancel, deny, and expiry phases.
	Reason models.ClaimReason
}

// DirectoryGateway is the consumed capability brokering claims between
// institutions. One operation per phase. Errors are classified by
// GatewayError: transport failures are dead-letter eligible, rejections are
// not retried.
type DirectoryGateway interface {
	OpenOwnership(ctx context.Context, req DirectoryRequest) error
	ConfirmOwnership(ctx context.Context, req DirectoryRequest) error
	CancelOwnership(ctx context.Context, req DirectoryRequest) error
	DenyClaim(ctx context.Context, req DirectoryRequest) error
	OpenPortability(ctx context.Context, req DirectoryRequest) error
	ConfirmPortability(ctx context.Context, req DirectoryRequest) error
	CancelPortability(ctx context.Context, req DirectoryRequest) error
}

// EventEmitter publishes phase-completion events for downstream consumers.
type EventEmitter interface {
	// PhaseSucceeded announces that a key reached a phase's target state.
	PhaseSucceeded(ctx context.Context, event models.KeyEvent) error

	// PhaseFailed announces that a key was terminally marked failed.
	PhaseFailed(ctx context.Context, event models.KeyEvent) error

	// ClaimPendingExpired injects a synthetic cancellation event for a key
	// whose claim sat pending past the configured window. It re-enters the
	// normal transition pipeline; the sweeper never mutates state itself.
	ClaimPendingExpired(ctx context.Context, claimType models.ClaimType, event models.ClaimEvent) error
}

// DeadLetterPublisher re-dispatches a phase event whose gateway call failed
// transport-wise, preserving the original payload.
type DeadLetterPublisher interface {
	Publish(ctx context.Context, claimType models.ClaimType, event models.ClaimEvent) error
}
