package telemetry

import "errors"

// Precondition violations. Callers control every input, so any of these
// reaching the HTTP layer is reported as a bad request.
var (
	ErrEmptyEnumeration = errors.New("empty device enumeration")
	ErrInvalidOrdinal   = errors.New("ordinal outside enumeration")
	ErrNegativePower    = errors.New("negative power rating")
	ErrNegativeRuntime  = errors.New("negative runtime")
	ErrInvalidInterval  = errors.New("invalid interval: want 0 <= start <= end <= 24")
	ErrInvalidDays      = errors.New("day count must be positive")
)
