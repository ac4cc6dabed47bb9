package sim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

func newUnparkedTelescope(t *testing.T) (*Telescope, *fakeClock) {
	t.Helper()

	clock := newFakeClock()
	mount := NewTelescope()
	mount.now = clock.now
	ctx := context.Background()
	if err := mount.SetConnected(ctx, true); err != nil {
		t.Fatalf("SetConnected: %v", err)
	}
	if err := mount.Unpark(ctx); err != nil {
		t.Fatalf("Unpark: %v", err)
	}
	return mount, clock
}

func TestTelescopeStartsParked(t *testing.T) {
	mount := NewTelescope()
	ctx := context.Background()
	if err := mount.SetConnected(ctx, true); err != nil {
		t.Fatalf("SetConnected: %v", err)
	}

	parked, err := mount.AtPark(ctx)
	if err != nil {
		t.Fatalf("AtPark: %v", err)
	}
	if !parked {
		t.Error("new telescope should be parked")
	}
}

func TestTelescopeSlewInterpolates(t *testing.T) {
	mount, clock := newUnparkedTelescope(t)
	ctx := context.Background()

	// From the park position (0h, +90) to (0h, +40): 50 degrees at 10
	// deg/s is a five second slew.
	if err := mount.SlewToCoordinatesAsync(ctx, 0, 40); err != nil {
		t.Fatalf("SlewToCoordinatesAsync: %v", err)
	}
	if slewing, _ := mount.Slewing(ctx); !slewing {
		t.Fatal("Slewing = false right after slew start")
	}

	clock.advance(2500 * time.Millisecond)
	dec, err := mount.Declination(ctx)
	if err != nil {
		t.Fatalf("Declination: %v", err)
	}
	if dec != 65 {
		t.Errorf("mid-slew declination = %v, want 65", dec)
	}

	clock.advance(3 * time.Second)
	if slewing, _ := mount.Slewing(ctx); slewing {
		t.Error("Slewing = true after slew should have finished")
	}
	dec, _ = mount.Declination(ctx)
	if dec != 40 {
		t.Errorf("final declination = %v, want 40", dec)
	}
}

func TestTelescopeSlewWhileParked(t *testing.T) {
	mount := NewTelescope()
	ctx := context.Background()
	if err := mount.SetConnected(ctx, true); err != nil {
		t.Fatalf("SetConnected: %v", err)
	}

	err := mount.SlewToCoordinatesAsync(ctx, 12, 0)
	if !errors.Is(err, ascom.ErrInvalidWhileParked) {
		t.Errorf("slew while parked = %v, want InvalidWhileParked", err)
	}
	if err := mount.SetTracking(ctx, true); !errors.Is(err, ascom.ErrInvalidWhileParked) {
		t.Errorf("SetTracking while parked = %v, want InvalidWhileParked", err)
	}
}

func TestTelescopeAbortSlewHoldsPosition(t *testing.T) {
	mount, clock := newUnparkedTelescope(t)
	ctx := context.Background()

	if err := mount.SlewToCoordinatesAsync(ctx, 0, 40); err != nil {
		t.Fatalf("SlewToCoordinatesAsync: %v", err)
	}
	clock.advance(time.Second)
	if err := mount.AbortSlew(ctx); err != nil {
		t.Fatalf("AbortSlew: %v", err)
	}

	if slewing, _ := mount.Slewing(ctx); slewing {
		t.Error("Slewing = true after abort")
	}
	dec, _ := mount.Declination(ctx)
	if dec != 80 {
		t.Errorf("declination after abort = %v, want 80", dec)
	}
}

func TestTelescopeParkReturnsToPole(t *testing.T) {
	mount, clock := newUnparkedTelescope(t)
	ctx := context.Background()

	if err := mount.SyncToCoordinates(ctx, 6, 30); err != nil {
		t.Fatalf("SyncToCoordinates: %v", err)
	}
	if err := mount.SetTracking(ctx, true); err != nil {
		t.Fatalf("SetTracking: %v", err)
	}
	clock.advance(time.Second)

	if err := mount.Park(ctx); err != nil {
		t.Fatalf("Park: %v", err)
	}
	if parked, _ := mount.AtPark(ctx); !parked {
		t.Error("AtPark = false after Park")
	}
	if tracking, _ := mount.Tracking(ctx); tracking {
		t.Error("Tracking survived Park")
	}
	dec, _ := mount.Declination(ctx)
	ra, _ := mount.RightAscension(ctx)
	if ra != 0 || dec != 90 {
		t.Errorf("park position = (%v, %v), want (0, 90)", ra, dec)
	}
}

func TestTelescopeTargetsUnsetUntilWritten(t *testing.T) {
	mount, _ := newUnparkedTelescope(t)
	ctx := context.Background()

	if _, err := mount.TargetRightAscension(ctx); !errors.Is(err, ascom.ErrValueNotSet) {
		t.Errorf("TargetRightAscension = %v, want ValueNotSet", err)
	}
	if _, err := mount.TargetDeclination(ctx); !errors.Is(err, ascom.ErrValueNotSet) {
		t.Errorf("TargetDeclination = %v, want ValueNotSet", err)
	}

	if err := mount.SetTargetRightAscension(ctx, 5.5); err != nil {
		t.Fatalf("SetTargetRightAscension: %v", err)
	}
	ra, err := mount.TargetRightAscension(ctx)
	if err != nil || ra != 5.5 {
		t.Errorf("TargetRightAscension = %v, %v, want 5.5", ra, err)
	}
}

func TestTelescopeSlewSetsTargets(t *testing.T) {
	mount, _ := newUnparkedTelescope(t)
	ctx := context.Background()

	if err := mount.SlewToCoordinatesAsync(ctx, 10, -20); err != nil {
		t.Fatalf("SlewToCoordinatesAsync: %v", err)
	}
	ra, err := mount.TargetRightAscension(ctx)
	if err != nil || ra != 10 {
		t.Errorf("TargetRightAscension = %v, %v, want 10", ra, err)
	}
	dec, err := mount.TargetDeclination(ctx)
	if err != nil || dec != -20 {
		t.Errorf("TargetDeclination = %v, %v, want -20", dec, err)
	}
}

func TestTelescopeCoordinateValidation(t *testing.T) {
	mount, _ := newUnparkedTelescope(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"ra negative", func() error { return mount.SlewToCoordinatesAsync(ctx, -1, 0) }},
		{"ra 24", func() error { return mount.SlewToCoordinatesAsync(ctx, 24, 0) }},
		{"dec below -90", func() error { return mount.SyncToCoordinates(ctx, 0, -91) }},
		{"target ra", func() error { return mount.SetTargetRightAscension(ctx, 25) }},
		{"target dec", func() error { return mount.SetTargetDeclination(ctx, 91) }},
		{"site latitude", func() error { return mount.SetSiteLatitude(ctx, 100) }},
		{"site longitude", func() error { return mount.SetSiteLongitude(ctx, -181) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ascom.ErrInvalidValue) {
				t.Errorf("err = %v, want InvalidValue", err)
			}
		})
	}
}

func TestTelescopeRequiresConnection(t *testing.T) {
	mount := NewTelescope()
	ctx := context.Background()

	if _, err := mount.RightAscension(ctx); !errors.Is(err, ascom.ErrNotConnected) {
		t.Errorf("RightAscension while disconnected = %v, want NotConnected", err)
	}
	if err := mount.Park(ctx); !errors.Is(err, ascom.ErrNotConnected) {
		t.Errorf("Park while disconnected = %v, want NotConnected", err)
	}
}
