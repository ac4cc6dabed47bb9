package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// defaultInterfaceVersion is reported by drivers that do not override
// InterfaceVersion.
const defaultInterfaceVersion int32 = 3

// UnimplementedDevice provides protocol-correct defaults for the base Device
// interface. Metadata methods return baseline values; everything else
// reports NotImplemented. Embed it (directly or via a category
// Unimplemented* struct) in every concrete driver.
type UnimplementedDevice struct{}

func (UnimplementedDevice) Connected(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedDevice) SetConnected(context.Context, bool) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedDevice) Description(context.Context) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedDevice) DriverInfo(context.Context) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedDevice) DriverVersion(context.Context) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedDevice) InterfaceVersion(context.Context) (int32, error) {
	return defaultInterfaceVersion, nil
}

func (UnimplementedDevice) Name(context.Context) (string, error) {
	return "", nil
}

func (UnimplementedDevice) SupportedActions(context.Context) ([]string, error) {
	return []string{}, nil
}

func (UnimplementedDevice) Action(context.Context, string, string) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedDevice) CommandBlind(context.Context, string, bool) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedDevice) CommandBool(context.Context, string, bool) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedDevice) CommandString(context.Context, string, bool) (string, error) {
	return "", ascom.ErrNotImplemented
}
