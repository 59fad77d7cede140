package models

import (
	id "dict-bridge/pkg/domain"
)

// ClaimEvent is the inbound phase-start payload. State names the phase being
// driven: it must equal the target state of a registered transition for the
// topic's claim type. Reason is required only for cancel, deny, and expiry
// phases. Dispatches counts dead-letter redeliveries; the original producer
// leaves it zero.
type ClaimEvent struct {
	ID         id.KeyID    `json:"id"`
	State      KeyState    `json:"state"`
	UserID     id.UserID   `json:"userId"`
	Reason     ClaimReason `json:"reason,omitempty"`
	Dispatches int         `json:"dispatches,omitempty"`
}

// KeyEvent is the outbound phase-completion payload carrying the updated key.
type KeyEvent struct {
	ID      id.KeyID    `json:"id"`
	Key     string      `json:"key"`
	State   KeyState    `json:"state"`
	UserID  id.UserID   `json:"userId"`
	ClaimID *id.ClaimID `json:"claimId,omitempty"`
	Reason  ClaimReason `json:"reason,omitempty"`
}

// NewKeyEvent builds the outbound payload for a key after a transition.
func NewKeyEvent(key *Key, reason ClaimReason) KeyEvent {
	return KeyEvent{
		ID:      key.ID,
		Key:     key.Value,
		State:   key.State,
		UserID:  key.UserID,
		ClaimID: key.ClaimID,
		Reason:  reason,
	}
}
