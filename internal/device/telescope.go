package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// Telescope is the capability interface for telescope mounts.
//
// Coordinates follow the ASCOM conventions: right ascension in decimal
// hours, declination, altitude and azimuth in decimal degrees.
type Telescope interface {
	Device

	Altitude(ctx context.Context) (float64, error)
	AtHome(ctx context.Context) (bool, error)
	AtPark(ctx context.Context) (bool, error)
	Azimuth(ctx context.Context) (float64, error)
	CanFindHome(ctx context.Context) (bool, error)
	CanPark(ctx context.Context) (bool, error)
	CanSetTracking(ctx context.Context) (bool, error)
	CanSlew(ctx context.Context) (bool, error)
	CanSlewAsync(ctx context.Context) (bool, error)
	CanSync(ctx context.Context) (bool, error)
	CanUnpark(ctx context.Context) (bool, error)
	Declination(ctx context.Context) (float64, error)
	RightAscension(ctx context.Context) (float64, error)
	SiderealTime(ctx context.Context) (float64, error)
	SiteLatitude(ctx context.Context) (float64, error)
	SetSiteLatitude(ctx context.Context, degrees float64) error
	SiteLongitude(ctx context.Context) (float64, error)
	SetSiteLongitude(ctx context.Context, degrees float64) error
	// Slewing reports whether a slew started by SlewToCoordinatesAsync
	// is still in progress.
	Slewing(ctx context.Context) (bool, error)
	TargetDeclination(ctx context.Context) (float64, error)
	SetTargetDeclination(ctx context.Context, degrees float64) error
	TargetRightAscension(ctx context.Context) (float64, error)
	SetTargetRightAscension(ctx context.Context, hours float64) error
	Tracking(ctx context.Context) (bool, error)
	SetTracking(ctx context.Context, tracking bool) error
	AbortSlew(ctx context.Context) error
	FindHome(ctx context.Context) error
	Park(ctx context.Context) error
	Unpark(ctx context.Context) error
	SlewToCoordinatesAsync(ctx context.Context, rightAscension, declination float64) error
	SyncToCoordinates(ctx context.Context, rightAscension, declination float64) error
}

// UnimplementedTelescope implements Telescope with Can* probes returning
// false and operational methods reporting NotImplemented.
type UnimplementedTelescope struct {
	UnimplementedDevice
}

func (UnimplementedTelescope) Altitude(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) AtHome(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) AtPark(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) Azimuth(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) CanFindHome(context.Context) (bool, error)    { return false, nil }
func (UnimplementedTelescope) CanPark(context.Context) (bool, error)        { return false, nil }
func (UnimplementedTelescope) CanSetTracking(context.Context) (bool, error) { return false, nil }
func (UnimplementedTelescope) CanSlew(context.Context) (bool, error)        { return false, nil }
func (UnimplementedTelescope) CanSlewAsync(context.Context) (bool, error)   { return false, nil }
func (UnimplementedTelescope) CanSync(context.Context) (bool, error)        { return false, nil }
func (UnimplementedTelescope) CanUnpark(context.Context) (bool, error)      { return false, nil }

func (UnimplementedTelescope) Declination(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) RightAscension(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SiderealTime(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SiteLatitude(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SetSiteLatitude(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SiteLongitude(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SetSiteLongitude(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedTelescope) Slewing(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) TargetDeclination(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SetTargetDeclination(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedTelescope) TargetRightAscension(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SetTargetRightAscension(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedTelescope) Tracking(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SetTracking(context.Context, bool) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedTelescope) AbortSlew(context.Context) error { return ascom.ErrNotImplemented }
func (UnimplementedTelescope) FindHome(context.Context) error  { return ascom.ErrNotImplemented }
func (UnimplementedTelescope) Park(context.Context) error      { return ascom.ErrNotImplemented }
func (UnimplementedTelescope) Unpark(context.Context) error    { return ascom.ErrNotImplemented }

func (UnimplementedTelescope) SlewToCoordinatesAsync(context.Context, float64, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedTelescope) SyncToCoordinates(context.Context, float64, float64) error {
	return ascom.ErrNotImplemented
}
