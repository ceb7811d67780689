package ports

import "context"

// Position is a resolved device location. Formatted is a fixed placeholder:
// coordinates are never reverse-geocoded into a real address.
type Position struct {
	Latitude  float64
	Longitude float64
	Formatted string
}

// Locator wraps the device positioning capability. Resolve either returns a
// coordinate fix or one of the categorized geolocation failures from domain.
type Locator interface {
	Resolve(ctx context.Context) (*Position, error)
}

// GeolocationService is the async contract the location-entry control uses.
type GeolocationService interface {
	// Current requests a position fix. It fails immediately with
	// domain.ErrGeoUnsupported when no capability is available, and
	// otherwise maps locator failures onto the four error categories.
	Current(ctx context.Context) (*Position, error)
	// Loading reports whether a request is currently outstanding. Overlapping
	// calls are tracked, not serialized.
	Loading() bool
}
