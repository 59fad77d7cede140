// Package domainerrors provides coded errors for the service layer. Stores
// return sentinel errors (pkg/platform/sentinel); services translate them into
// coded errors here so transports and handlers can branch on the code without
// string matching.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers.
type Code string

const (
	// CodeInvalidInput marks validation failures: missing or malformed fields.
	CodeInvalidInput Code = "invalid_input"
	// CodeNotFound marks references to entities that do not exist.
	CodeNotFound Code = "not_found"
	// CodeInvalidState marks operations attempted against an entity whose
	// current state matches neither the expected pre- nor post-condition.
	CodeInvalidState Code = "invalid_state"
	// CodeUnavailable marks transport-level failures of a downstream
	// dependency. This is the only code eligible for redelivery.
	CodeUnavailable Code = "unavailable"
	// CodeTimeout marks deadline expiry on a blocking operation.
	CodeTimeout Code = "timeout"
	// CodeInternal marks unexpected failures with no better classification.
	CodeInternal Code = "internal"
)

// Error is a coded error. The zero value is not usable; construct via New,
// Newf, or Wrap.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a coded error with a static message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message, preserving the chain for
// errors.Is / errors.As.
func Wrap(err error, code Code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether any error in the chain carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf returns the code of the outermost coded error in the chain, or
// CodeInternal when the chain carries no coded error.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeInternal
}
