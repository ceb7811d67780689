package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// FormattedCurrentLocation is the placeholder returned with every successful
// fix. Coordinates are never reverse-geocoded into a real address.
const FormattedCurrentLocation = "Current location (detected)"

// GeolocationService wraps a device locator behind a small async contract.
type GeolocationService struct {
	locator ports.Locator
	logger  zerolog.Logger
	loading atomic.Bool
}

// NewGeolocationService builds the service. A nil locator models a device
// without positioning capability.
func NewGeolocationService(locator ports.Locator, logger zerolog.Logger) *GeolocationService {
	return &GeolocationService{locator: locator, logger: logger}
}

// Current requests a position fix. Failures surface as exactly one of the
// categorized geolocation errors. The loading flag tracks the request but
// overlapping calls are not serialized.
func (s *GeolocationService) Current(ctx context.Context) (*ports.Position, error) {
	if s.locator == nil {
		return nil, domain.ErrGeoUnsupported
	}

	s.loading.Store(true)
	defer s.loading.Store(false)

	pos, err := s.locator.Resolve(ctx)
	if err != nil {
		err = categorize(err)
		s.logger.Warn().Err(err).Msg("geolocation request failed")
		return nil, err
	}

	return &ports.Position{
		Latitude:  pos.Latitude,
		Longitude: pos.Longitude,
		Formatted: FormattedCurrentLocation,
	}, nil
}

// Loading reports whether a request is currently outstanding.
func (s *GeolocationService) Loading() bool {
	return s.loading.Load()
}

// categorize collapses any locator failure onto the four-error taxonomy.
func categorize(err error) error {
	switch {
	case errors.Is(err, domain.ErrGeoPermissionDenied),
		errors.Is(err, domain.ErrGeoUnavailable),
		errors.Is(err, domain.ErrGeoTimeout):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return domain.ErrGeoTimeout
	default:
		return domain.ErrGeoUnknown
	}
}
