package domain

import "go.trai.ch/zerr"

var (
	// ErrToolUnavailable is returned when a required external program cannot be located in PATH.
	ErrToolUnavailable = zerr.New("required tool not found")

	// ErrExternalTool is returned when an external program invocation exits non-zero.
	ErrExternalTool = zerr.New("external tool failed")

	// ErrParse is returned when external tool output does not match the expected grammar.
	ErrParse = zerr.New("unexpected tool output")

	// ErrValidation is returned when a configuration or structural invariant is violated.
	ErrValidation = zerr.New("validation failed")

	// ErrConfiguration is returned when a required environment value is absent.
	ErrConfiguration = zerr.New("configuration error")

	// ErrLockFailed is the top-level error returned when lockfile generation fails.
	ErrLockFailed = zerr.New("lock generation failed")
)
