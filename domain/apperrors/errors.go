package apperrors

import (
	"errors"
	"fmt"
)

// ErrNoThumbnail is returned when a video carries no thumbnail variant at all.
// The API contract guarantees at least a default variant, so hitting this
// indicates a broken upstream response rather than a user mistake.
var ErrNoThumbnail = errors.New("no thumbnail variant available")

// ConfigurationError indicates missing or unusable ambient configuration
// (typically the API key). It is terminal for the session: there is no retry
// path until the operator fixes the configuration.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// QuotaError indicates the upstream API rejected the call for quota or
// permission reasons. Recoverable by waiting; surfaced as a retry-later
// message, never fatal to the process.
type QuotaError struct {
	Reason string
	Err    error
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("api quota/permission error (%s): %v", e.Reason, e.Err)
}

func (e *QuotaError) Unwrap() error { return e.Err }

// ParameterError indicates the upstream API rejected a request parameter
// (e.g. a malformed region code). Carries the offending parameter so the
// boundary can point the user at it.
type ParameterError struct {
	Param  string
	Reason string
	Err    error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

func (e *ParameterError) Unwrap() error { return e.Err }

// TransportError wraps network-level failures (timeouts, DNS, connection
// resets). Recoverable; the user may simply retry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
