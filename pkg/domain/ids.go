// Package domain holds identifier types shared across features. IDs are typed
// UUIDs so a ClaimID can never be passed where a KeyID is expected.
package domain

import (
	"github.com/google/uuid"

	dErrors "dict-bridge/pkg/domain-errors"
)

// KeyID identifies a registered alias key.
type KeyID uuid.UUID

// ClaimID identifies an ownership or portability claim.
type ClaimID uuid.UUID

// UserID identifies the account holder owning a key.
type UserID uuid.UUID

func (id KeyID) String() string   { return uuid.UUID(id).String() }
func (id ClaimID) String() string { return uuid.UUID(id).String() }
func (id UserID) String() string  { return uuid.UUID(id).String() }

func (id KeyID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id ClaimID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }

// ParseKeyID parses and validates a key identifier.
func ParseKeyID(raw string) (KeyID, error) {
	u, err := parseUUID(raw)
	if err != nil {
		return KeyID{}, err
	}
	return KeyID(u), nil
}

// ParseClaimID parses and validates a claim identifier.
func ParseClaimID(raw string) (ClaimID, error) {
	u, err := parseUUID(raw)
	if err != nil {
		return ClaimID{}, err
	}
	return ClaimID(u), nil
}

// ParseUserID parses and validates a user identifier.
func ParseUserID(raw string) (UserID, error) {
	u, err := parseUUID(raw)
	if err != nil {
		return UserID{}, err
	}
	return UserID(u), nil
}

// parseUUID enforces the shared invariant: IDs must be valid, non-empty,
// non-nil UUIDs. Enforced at trust boundaries (event decoding, HTTP).
func parseUUID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id is required")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be the nil UUID")
	}
	return u, nil
}
