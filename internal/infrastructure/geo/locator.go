// Package geo provides the locator implementations standing in for the
// device positioning capability.
package geo

import (
	"context"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// Failure modes a StaticLocator can be configured to simulate.
const (
	ModeFixed       = "fixed"
	ModeDenied      = "denied"
	ModeUnavailable = "unavailable"
	ModeTimeout     = "timeout"
)

// StaticLocator resolves to a fixed configured coordinate pair, or simulates
// one of the categorized failures. It is the deployable stand-in for real
// device hardware: the service layer only sees the ports.Locator contract.
type StaticLocator struct {
	mode string
	lat  float64
	lng  float64
}

// NewStaticLocator builds a locator for the given mode. Unrecognised modes
// behave like ModeFixed.
func NewStaticLocator(mode string, lat, lng float64) *StaticLocator {
	return &StaticLocator{mode: mode, lat: lat, lng: lng}
}

func (l *StaticLocator) Resolve(ctx context.Context) (*ports.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.ErrGeoTimeout
	}

	switch l.mode {
	case ModeDenied:
		return nil, domain.ErrGeoPermissionDenied
	case ModeUnavailable:
		return nil, domain.ErrGeoUnavailable
	case ModeTimeout:
		return nil, domain.ErrGeoTimeout
	}

	return &ports.Position{Latitude: l.lat, Longitude: l.lng}, nil
}
