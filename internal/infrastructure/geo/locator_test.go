package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/toyshare/toyshare-api/internal/core/domain"
)

func TestStaticLocator_FixedMode(t *testing.T) {
	locator := NewStaticLocator(ModeFixed, 40.7128, -74.0060)

	pos, err := locator.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if pos.Latitude != 40.7128 || pos.Longitude != -74.0060 {
		t.Fatalf("unexpected position: %+v", pos)
	}
}

func TestStaticLocator_FailureModes(t *testing.T) {
	cases := []struct {
		mode string
		want error
	}{
		{ModeDenied, domain.ErrGeoPermissionDenied},
		{ModeUnavailable, domain.ErrGeoUnavailable},
		{ModeTimeout, domain.ErrGeoTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			locator := NewStaticLocator(tc.mode, 0, 0)
			if _, err := locator.Resolve(context.Background()); !errors.Is(err, tc.want) {
				t.Fatalf("mode %s: expected %v, got %v", tc.mode, tc.want, err)
			}
		})
	}
}

func TestStaticLocator_UnknownModeActsFixed(t *testing.T) {
	locator := NewStaticLocator("satellite", 1, 2)

	pos, err := locator.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if pos.Latitude != 1 || pos.Longitude != 2 {
		t.Fatalf("unexpected position: %+v", pos)
	}
}

func TestStaticLocator_CancelledContext(t *testing.T) {
	locator := NewStaticLocator(ModeFixed, 1, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := locator.Resolve(ctx); !errors.Is(err, domain.ErrGeoTimeout) {
		t.Fatalf("expected ErrGeoTimeout, got %v", err)
	}
}
