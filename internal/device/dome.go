package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// ShutterStatus reports the dome shutter condition.
type ShutterStatus int32

const (
	ShutterOpen    ShutterStatus = 0
	ShutterClosed  ShutterStatus = 1
	ShutterOpening ShutterStatus = 2
	ShutterClosing ShutterStatus = 3
	ShutterError   ShutterStatus = 4
)

// Dome is the capability interface for dome and roll-off roof controllers.
type Dome interface {
	Device

	Altitude(ctx context.Context) (float64, error)
	AtHome(ctx context.Context) (bool, error)
	AtPark(ctx context.Context) (bool, error)
	Azimuth(ctx context.Context) (float64, error)
	CanFindHome(ctx context.Context) (bool, error)
	CanPark(ctx context.Context) (bool, error)
	CanSetAltitude(ctx context.Context) (bool, error)
	CanSetAzimuth(ctx context.Context) (bool, error)
	CanSetShutter(ctx context.Context) (bool, error)
	CanSlave(ctx context.Context) (bool, error)
	CanSyncAzimuth(ctx context.Context) (bool, error)
	ShutterStatus(ctx context.Context) (ShutterStatus, error)
	Slaved(ctx context.Context) (bool, error)
	SetSlaved(ctx context.Context, slaved bool) error
	Slewing(ctx context.Context) (bool, error)
	AbortSlew(ctx context.Context) error
	CloseShutter(ctx context.Context) error
	FindHome(ctx context.Context) error
	OpenShutter(ctx context.Context) error
	Park(ctx context.Context) error
	SetPark(ctx context.Context) error
	SlewToAltitude(ctx context.Context, altitude float64) error
	SlewToAzimuth(ctx context.Context, azimuth float64) error
	SyncToAzimuth(ctx context.Context, azimuth float64) error
}

// UnimplementedDome implements Dome with Can* probes returning false and
// operational methods reporting NotImplemented.
type UnimplementedDome struct {
	UnimplementedDevice
}

func (UnimplementedDome) Altitude(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedDome) AtHome(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedDome) AtPark(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedDome) Azimuth(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedDome) CanFindHome(context.Context) (bool, error)    { return false, nil }
func (UnimplementedDome) CanPark(context.Context) (bool, error)        { return false, nil }
func (UnimplementedDome) CanSetAltitude(context.Context) (bool, error) { return false, nil }
func (UnimplementedDome) CanSetAzimuth(context.Context) (bool, error)  { return false, nil }
func (UnimplementedDome) CanSetShutter(context.Context) (bool, error)  { return false, nil }
func (UnimplementedDome) CanSlave(context.Context) (bool, error)       { return false, nil }
func (UnimplementedDome) CanSyncAzimuth(context.Context) (bool, error) { return false, nil }

func (UnimplementedDome) ShutterStatus(context.Context) (ShutterStatus, error) {
	return ShutterError, ascom.ErrNotImplemented
}

func (UnimplementedDome) Slaved(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedDome) SetSlaved(context.Context, bool) error { return ascom.ErrNotImplemented }

func (UnimplementedDome) Slewing(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedDome) AbortSlew(context.Context) error    { return ascom.ErrNotImplemented }
func (UnimplementedDome) CloseShutter(context.Context) error { return ascom.ErrNotImplemented }
func (UnimplementedDome) FindHome(context.Context) error     { return ascom.ErrNotImplemented }
func (UnimplementedDome) OpenShutter(context.Context) error  { return ascom.ErrNotImplemented }
func (UnimplementedDome) Park(context.Context) error         { return ascom.ErrNotImplemented }
func (UnimplementedDome) SetPark(context.Context) error      { return ascom.ErrNotImplemented }

func (UnimplementedDome) SlewToAltitude(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedDome) SlewToAzimuth(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedDome) SyncToAzimuth(context.Context, float64) error {
	return ascom.ErrNotImplemented
}
