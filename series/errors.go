package series

import "errors"

// Sentinel errors. Operations wrap them with context; match with errors.Is.
var (
	// ErrUnsupported marks an expansion the engine cannot represent: negative
	// ring powers, substitution, integrating x^-1, inverting a series without
	// a constant term, or a function it has no recurrence for.
	ErrUnsupported = errors.New("series: operation not supported")

	// ErrUndefined marks a mathematically undefined value such as 0^0 or 1/0.
	ErrUndefined = errors.New("series: undefined value")

	// ErrEmptySeries is returned by LowDegree for a polynomial with no terms.
	ErrEmptySeries = errors.New("series: empty series")

	// ErrInvalidPrecision is returned for a negative precision.
	ErrInvalidPrecision = errors.New("series: precision must be non-negative")
)
