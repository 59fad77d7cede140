// Package transitions declares the claim lifecycle as data: one table entry
// per (claim type, phase) instead of one handler type per pair. The generic
// transitioner in the service package dispatches over this table.
package transitions

import (
	"dict-bridge/internal/claims/models"
)

// Op names a directory gateway operation bound to a phase.
type Op string

const (
	OpOpenOwnership      Op = "open-ownership"
	OpConfirmOwnership   Op = "confirm-ownership"
	OpCancelOwnership    Op = "cancel-ownership"
	OpDenyClaim          Op = "deny-claim"
	OpOpenPortability    Op = "open-portability"
	OpConfirmPortability Op = "confirm-portability"
	OpCancelPortability  Op = "cancel-portability"
)

// Transition describes one phase of a claim protocol: the state the key must
// be in, the gateway call that resolves the phase, and the states reached on
// success or on exhausted dead-letter retries.
type Transition struct {
	Type   models.ClaimType
	Pre    models.KeyState
	Target models.KeyState
	Failed models.KeyState
	Op     Op

	// RequiresClaim: the key's claim record must be loaded before the gateway
	// call (confirm, cancel, deny, expiry phases).
	RequiresClaim bool
	// RequiresReason: the inbound event must carry a reason code.
	RequiresReason bool
}

// table is keyed by claim type, then by the phase's target state. Target
// states are unique within a claim type, which is what lets inbound events
// name phases by the state they drive the key into.
var table = map[models.ClaimType]map[models.KeyState]Transition{
	models.ClaimTypeOwnership: {
		models.KeyStateOwnershipOpened: {
			Type:   models.ClaimTypeOwnership,
			Pre:    models.KeyStateReady,
			Target: models.KeyStateOwnershipOpened,
			Failed: models.KeyStateOwnershipFailed,
			Op:     OpOpenOwnership,
		},
		models.KeyStateOwnershipConfirmStarted: {
			Type:          models.ClaimTypeOwnership,
			Pre:           models.KeyStateOwnershipOpened,
			Target:        models.KeyStateOwnershipConfirmStarted,
			Failed:        models.KeyStateOwnershipFailed,
			Op:            OpConfirmOwnership,
			RequiresClaim: true,
		},
		models.KeyStateOwnershipCancelStarted: {
			Type:           models.ClaimTypeOwnership,
			Pre:            models.KeyStateOwnershipOpened,
			Target:         models.KeyStateOwnershipCancelStarted,
			Failed:         models.KeyStateOwnershipFailed,
			Op:             OpCancelOwnership,
			RequiresClaim:  true,
			RequiresReason: true,
		},
		models.KeyStateReady: {
			Type:           models.ClaimTypeOwnership,
			Pre:            models.KeyStateClaimPending,
			Target:         models.KeyStateReady,
			Failed:         models.KeyStateClaimDenyFailed,
			Op:             OpDenyClaim,
			RequiresClaim:  true,
			RequiresReason: true,
		},
		models.KeyStateCanceled: {
			Type:           models.ClaimTypeOwnership,
			Pre:            models.KeyStateClaimPending,
			Target:         models.KeyStateCanceled,
			Failed:         models.KeyStateOwnershipFailed,
			Op:             OpCancelOwnership,
			RequiresClaim:  true,
			RequiresReason: true,
		},
	},
	models.ClaimTypePortability: {
		models.KeyStatePortabilityConfirmOpened: {
			Type:   models.ClaimTypePortability,
			Pre:    models.KeyStateActive,
			Target: models.KeyStatePortabilityConfirmOpened,
			Failed: models.KeyStatePortabilityFailed,
			Op:     OpOpenPortability,
		},
		models.KeyStatePortabilityConfirmStarted: {
			Type:          models.ClaimTypePortability,
			Pre:           models.KeyStatePortabilityConfirmOpened,
			Target:        models.KeyStatePortabilityConfirmStarted,
			Failed:        models.KeyStatePortabilityFailed,
			Op:            OpConfirmPortability,
			RequiresClaim: true,
		},
		models.KeyStatePortabilityCancelStarted: {
			Type:           models.ClaimTypePortability,
			Pre:            models.KeyStatePortabilityConfirmOpened,
			Target:         models.KeyStatePortabilityCancelStarted,
			Failed:         models.KeyStatePortabilityFailed,
			Op:             OpCancelPortability,
			RequiresClaim:  true,
			RequiresReason: true,
		},
		models.KeyStateReady: {
			Type:           models.ClaimTypePortability,
			Pre:            models.KeyStateClaimPending,
			Target:         models.KeyStateReady,
			Failed:         models.KeyStateClaimDenyFailed,
			Op:             OpDenyClaim,
			RequiresClaim:  true,
			RequiresReason: true,
		},
		models.KeyStateCanceled: {
			Type:           models.ClaimTypePortability,
			Pre:            models.KeyStateClaimPending,
			Target:         models.KeyStateCanceled,
			Failed:         models.KeyStatePortabilityFailed,
			Op:             OpCancelPortability,
			RequiresClaim:  true,
			RequiresReason: true,
		},
	},
}

// Lookup returns the transition whose target state is 'target' for the given
// claim type.
func Lookup(claimType models.ClaimType, target models.KeyState) (Transition, bool) {
	byTarget, ok := table[claimType]
	if !ok {
		return Transition{}, false
	}
	t, ok := byTarget[target]
	return t, ok
}

// ForType returns all transitions registered for a claim type.
func ForType(claimType models.ClaimType) []Transition {
	byTarget := table[claimType]
	out := make([]Transition, 0, len(byTarget))
	for _, t := range byTarget {
		out = append(out, t)
	}
	return out
}
