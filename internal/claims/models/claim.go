package models

import (
	"time"

	id "dict-bridge/pkg/domain"
)

// ClaimType distinguishes the two claim protocols.
type ClaimType string

const (
	// ClaimTypeOwnership transfers the registered owner of an alias.
	ClaimTypeOwnership ClaimType = "OWNERSHIP"
	// ClaimTypePortability moves an alias to a new institution, same owner.
	ClaimTypePortability ClaimType = "PORTABILITY"
)

// IsValid reports whether t is a known claim type.
func (t ClaimType) IsValid() bool {
	return t == ClaimTypeOwnership || t == ClaimTypePortability
}

// ClaimReason records why a claim was resolved the way it was. Values are
// opaque protocol codes; DEFAULT_OPERATION means system-initiated as opposed
// to user-initiated and carries no further semantics.
type ClaimReason string

const (
	ReasonUserRequested    ClaimReason = "USER_REQUESTED"
	ReasonDefaultOperation ClaimReason = "DEFAULT_OPERATION"
	ReasonFraud            ClaimReason = "FRAUD"
)

// IsValid reports whether r is a known reason code.
func (r ClaimReason) IsValid() bool {
	switch r {
	case ReasonUserRequested, ReasonDefaultOperation, ReasonFraud:
		return true
	}
	return false
}

// Claim is one ownership or portability transfer attempt against a key.
// OpenedAt is the protocol clock anchor: together with the configured expiry
// threshold it decides when a pending claim may be force-expired. It is never
// mutated after creation.
type Claim struct {
	ID       id.ClaimID
	Type     ClaimType
	OpenedAt time.Time
	Reason   ClaimReason // optional; set when the claim was opened with one
}
