package service

import (
	"context"
	"errors"
	"testing"

	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

type stubLocator struct {
	pos ports.Position
	err error
}

func (l *stubLocator) Resolve(_ context.Context) (*ports.Position, error) {
	if l.err != nil {
		return nil, l.err
	}
	clone := l.pos
	return &clone, nil
}

func TestGeolocationService_NilLocatorIsUnsupported(t *testing.T) {
	svc := NewGeolocationService(nil, discardLogger)

	_, err := svc.Current(context.Background())
	if !errors.Is(err, domain.ErrGeoUnsupported) {
		t.Fatalf("expected ErrGeoUnsupported, got %v", err)
	}
}

func TestGeolocationService_SuccessfulFix(t *testing.T) {
	svc := NewGeolocationService(&stubLocator{pos: ports.Position{Latitude: 40.7128, Longitude: -74.0060}}, discardLogger)

	pos, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if pos.Latitude != 40.7128 || pos.Longitude != -74.0060 {
		t.Fatalf("unexpected coordinates: %+v", pos)
	}
	if pos.Formatted != FormattedCurrentLocation {
		t.Fatalf("expected placeholder label, got %q", pos.Formatted)
	}
	if svc.Loading() {
		t.Fatalf("loading flag must clear after the request")
	}
}

func TestGeolocationService_ErrorCategories(t *testing.T) {
	cases := []struct {
		name    string
		locator error
		want    error
	}{
		{"permission denied", domain.ErrGeoPermissionDenied, domain.ErrGeoPermissionDenied},
		{"unavailable", domain.ErrGeoUnavailable, domain.ErrGeoUnavailable},
		{"timeout", domain.ErrGeoTimeout, domain.ErrGeoTimeout},
		{"deadline maps to timeout", context.DeadlineExceeded, domain.ErrGeoTimeout},
		{"anything else is unknown", errors.New("gps glitch"), domain.ErrGeoUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewGeolocationService(&stubLocator{err: tc.locator}, discardLogger)
			_, err := svc.Current(context.Background())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
