package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// Switch is the capability interface for multi-channel switch devices
// (power controllers, relays, dew heaters). Channels are addressed by a
// zero-based id below MaxSwitch.
type Switch interface {
	Device

	MaxSwitch(ctx context.Context) (int32, error)
	CanWrite(ctx context.Context, id int32) (bool, error)
	GetSwitch(ctx context.Context, id int32) (bool, error)
	GetSwitchDescription(ctx context.Context, id int32) (string, error)
	GetSwitchName(ctx context.Context, id int32) (string, error)
	GetSwitchValue(ctx context.Context, id int32) (float64, error)
	MinSwitchValue(ctx context.Context, id int32) (float64, error)
	MaxSwitchValue(ctx context.Context, id int32) (float64, error)
	SwitchStep(ctx context.Context, id int32) (float64, error)
	SetSwitch(ctx context.Context, id int32, state bool) error
	SetSwitchName(ctx context.Context, id int32, name string) error
	SetSwitchValue(ctx context.Context, id int32, value float64) error
}

// UnimplementedSwitch implements Switch; CanWrite defaults to false and
// operational methods report NotImplemented.
type UnimplementedSwitch struct {
	UnimplementedDevice
}

func (UnimplementedSwitch) MaxSwitch(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedSwitch) CanWrite(context.Context, int32) (bool, error) { return false, nil }

func (UnimplementedSwitch) GetSwitch(context.Context, int32) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedSwitch) GetSwitchDescription(context.Context, int32) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedSwitch) GetSwitchName(context.Context, int32) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedSwitch) GetSwitchValue(context.Context, int32) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedSwitch) MinSwitchValue(context.Context, int32) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedSwitch) MaxSwitchValue(context.Context, int32) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedSwitch) SwitchStep(context.Context, int32) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedSwitch) SetSwitch(context.Context, int32, bool) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedSwitch) SetSwitchName(context.Context, int32, string) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedSwitch) SetSwitchValue(context.Context, int32, float64) error {
	return ascom.ErrNotImplemented
}
