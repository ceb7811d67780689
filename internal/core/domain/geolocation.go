package domain

import "errors"

// Geolocation failure taxonomy. Every locator error surfaced to callers is
// one of these five sentinels; anything unrecognised collapses into
// ErrGeoUnknown.
var (
	ErrGeoUnsupported      = errors.New("geolocation is not supported")
	ErrGeoPermissionDenied = errors.New("location permission denied")
	ErrGeoUnavailable      = errors.New("location information is unavailable")
	ErrGeoTimeout          = errors.New("location request timed out")
	ErrGeoUnknown          = errors.New("an unknown error occurred")
)
