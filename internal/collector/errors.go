package collector

import "errors"

// Failure classes surfaced in error results. Fallback exhaustion and missing
// credentials are not errors: they produce status documents instead
// (StatusNoFallbackData, StatusNotConfigured).
var (
	// ErrEmptyHistory marks a price fetch that returned zero bars. Reported,
	// never retried.
	ErrEmptyHistory = errors.New("no historical data available")
	// ErrProvider marks a failed or malformed response from a primary API.
	ErrProvider = errors.New("provider error")
)

const (
	// StatusNoFallbackData is set when every fallback news source came up empty.
	StatusNoFallbackData = "no articles found through alternative sources"
	// StatusNotConfigured is set when the social credential set is absent.
	StatusNotConfigured = "social platform credentials not provided"

	fallbackReliabilityNote = "data collected through alternative sources - limited reliability"
)
