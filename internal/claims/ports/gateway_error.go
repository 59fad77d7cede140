package ports

import (
	"errors"
	"fmt"
)

// GatewayErrorKind splits directory failures into the two classes the
// lifecycle cares about.
type GatewayErrorKind string

const (
	// GatewayTransport: the directory could not be reached or did not answer
	// in time. The only retried class; routed to the dead-letter channel.
	GatewayTransport GatewayErrorKind = "transport"
	// GatewayRejected: the directory answered and refused the operation.
	// Logged, no state change, no retry.
	GatewayRejected GatewayErrorKind = "rejected"
)

// GatewayError is returned by DirectoryGateway implementations.
type GatewayError struct {
	Kind   GatewayErrorKind
	Op     string
	Status int // HTTP status when the directory answered, zero otherwise
	Err    error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("directory %s (%s): %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("directory %s (%s): status %d", e.Op, e.Kind, e.Status)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// IsGatewayTransport reports whether err is a transport-class gateway failure.
func IsGatewayTransport(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Kind == GatewayTransport
}

// IsGatewayRejection reports whether err is a directory business refusal.
func IsGatewayRejection(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Kind == GatewayRejected
}
