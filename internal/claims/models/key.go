// Package models holds the claim lifecycle domain types: alias keys, claims,
// and the event payloads that move them between phases.
package models

import (
	"time"

	id "dict-bridge/pkg/domain"
)

// KeyState enumerates every state an alias key can be in. Normal states
// (READY, ACTIVE) and terminal states (CANCELED, *_FAILED) bracket the
// per-phase claim states. A key's state only ever reflects the most recent
// phase reached.
type KeyState string

const (
	// KeyStateReady: the alias is registered locally and usable. Also the
	// landing state when a claim against the key is denied.
	KeyStateReady KeyState = "READY"
	// KeyStateActive: the alias is confirmed active in the national directory.
	KeyStateActive KeyState = "ACTIVE"
	// KeyStateClaimPending: another institution opened a claim against this
	// key; the owner must confirm or deny before the claim expires. Entry into
	// this state happens in the alias registration flow, outside this core.
	KeyStateClaimPending KeyState = "CLAIM_PENDING"
	// KeyStateCanceled: terminal; the alias no longer belongs to this
	// institution.
	KeyStateCanceled KeyState = "CANCELED"

	KeyStateOwnershipOpened         KeyState = "OWNERSHIP_OPENED"
	KeyStateOwnershipConfirmStarted KeyState = "OWNERSHIP_CONFIRM_STARTED"
	KeyStateOwnershipCancelStarted  KeyState = "OWNERSHIP_CANCEL_STARTED"
	KeyStateOwnershipFailed         KeyState = "OWNERSHIP_FAILED"

	KeyStatePortabilityConfirmOpened  KeyState = "PORTABILITY_REQUEST_CONFIRM_OPENED"
	KeyStatePortabilityConfirmStarted KeyState = "PORTABILITY_REQUEST_CONFIRM_STARTED"
	KeyStatePortabilityCancelStarted  KeyState = "PORTABILITY_REQUEST_CANCEL_STARTED"
	KeyStatePortabilityFailed         KeyState = "PORTABILITY_REQUEST_FAILED"

	KeyStateClaimDenyFailed KeyState = "CLAIM_DENY_FAILED"
)

var validKeyStates = map[KeyState]struct{}{
	KeyStateReady:                     {},
	KeyStateActive:                    {},
	KeyStateClaimPending:              {},
	KeyStateCanceled:                  {},
	KeyStateOwnershipOpened:           {},
	KeyStateOwnershipConfirmStarted:   {},
	KeyStateOwnershipCancelStarted:    {},
	KeyStateOwnershipFailed:           {},
	KeyStatePortabilityConfirmOpened:  {},
	KeyStatePortabilityConfirmStarted: {},
	KeyStatePortabilityCancelStarted:  {},
	KeyStatePortabilityFailed:         {},
	KeyStateClaimDenyFailed:           {},
}

// IsValid reports whether s is a known key state.
func (s KeyState) IsValid() bool {
	_, ok := validKeyStates[s]
	return ok
}

// IsTerminal reports whether no further claim transition can move the key.
func (s KeyState) IsTerminal() bool {
	switch s {
	case KeyStateCanceled, KeyStateOwnershipFailed, KeyStatePortabilityFailed, KeyStateClaimDenyFailed:
		return true
	}
	return false
}

// Key is a registered alias mapped to a bank account in the directory.
// Invariant: at most one non-terminal claim is referenced at a time; ClaimID
// keeps pointing at the last claim after it resolves, for auditing.
type Key struct {
	ID        id.KeyID
	Value     string // the alias itself (phone, email, tax id, random)
	State     KeyState
	UserID    id.UserID
	ClaimID   *id.ClaimID
	CreatedAt time.Time
	UpdatedAt time.Time
}
