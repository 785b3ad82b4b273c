package models

import "errors"

// Forecast pipeline error taxonomy. Stages wrap these sentinels with
// fmt.Errorf("...: %w", ...) so handlers can map them to HTTP statuses
// with errors.Is.
var (
	// ErrInvalidRequest marks bad client input (empty ticker, non-positive
	// horizon). Raised before any upstream fetch happens.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDataUnavailable marks an upstream fetch that failed or returned no
	// data. Not retried; terminal for the request.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrInsufficientData marks a series too short to fit or compare.
	ErrInsufficientData = errors.New("insufficient data")
)
