package sixpack

import "errors"

// Input errors are returned before any network I/O. Each is wrapped with
// the offending value, match them with errors.Is.
var (
	ErrInvalidExperimentName    = errors.New("invalid experiment name")
	ErrInvalidAlternativeName   = errors.New("invalid alternative name")
	ErrTooFewAlternatives       = errors.New("at least two alternatives are required")
	ErrInvalidTrafficFraction   = errors.New("invalid traffic fraction")
	ErrInvalidForcedAlternative = errors.New("invalid forced alternative")
)

// ErrInvalidConfig is joined with the underlying parse or validation error.
var ErrInvalidConfig = errors.New("invalid sixpack configuration")

// ErrEmptyResponse is returned by Response.Decode when the call produced no body.
var ErrEmptyResponse = errors.New("empty sixpack response body")

// Transport errors. Session never returns them, a failed call is reported
// through Response.Success, but they are logged and seen by custom
// Transport implementations.
var (
	ErrTransport = errors.New("sixpack request failed")
	ErrTimeout   = errors.New("sixpack request timed out")
)
