package gateway

import (
	"errors"
	"fmt"
)

// Sentinel errors the use-case layer (internal/usecase) maps onto the
// stable error-code taxonomy of spec §7. Gateway methods never return a
// raw transport or correlator error directly — they translate into one of
// these first.
var (
	// ErrValidation means an input failed a domain rule before any packet
	// was sent (spec §4.4). Never touches the wire.
	ErrValidation = errors.New("gateway: validation failed")

	// ErrNotConnected means a use case requiring connectivity ran while
	// the transport was not connected.
	ErrNotConnected = errors.New("gateway: not connected")

	// ErrCommunication covers timeouts, cancelled waits, and send failures
	// — anything that prevented a round trip from completing. A malformed
	// datagram is dropped by the transport and so surfaces here as a
	// timeout; an empty reply is reported as ErrProtocol.
	ErrCommunication = errors.New("gateway: osc communication error")

	// ErrProtocol means the remote responded, but not in the shape this
	// gateway method expected.
	ErrProtocol = errors.New("gateway: unexpected response shape")
)

// ValidationError wraps ErrValidation with the specific rule that failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("gateway: validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
