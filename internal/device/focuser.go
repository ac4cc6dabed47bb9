package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// Focuser is the capability interface for focusers.
type Focuser interface {
	Device

	// Absolute reports whether the focuser moves to absolute positions
	// (true) or by relative steps (false).
	Absolute(ctx context.Context) (bool, error)
	IsMoving(ctx context.Context) (bool, error)
	MaxIncrement(ctx context.Context) (int32, error)
	MaxStep(ctx context.Context) (int32, error)
	Position(ctx context.Context) (int32, error)
	StepSize(ctx context.Context) (float64, error)
	TempComp(ctx context.Context) (bool, error)
	SetTempComp(ctx context.Context, on bool) error
	TempCompAvailable(ctx context.Context) (bool, error)
	Temperature(ctx context.Context) (float64, error)
	Halt(ctx context.Context) error
	Move(ctx context.Context, position int32) error
}

// UnimplementedFocuser implements Focuser reporting NotImplemented
// throughout; TempCompAvailable defaults to false.
type UnimplementedFocuser struct {
	UnimplementedDevice
}

func (UnimplementedFocuser) Absolute(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) IsMoving(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) MaxIncrement(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) MaxStep(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) Position(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) StepSize(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) TempComp(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) SetTempComp(context.Context, bool) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedFocuser) TempCompAvailable(context.Context) (bool, error) { return false, nil }

func (UnimplementedFocuser) Temperature(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedFocuser) Halt(context.Context) error        { return ascom.ErrNotImplemented }
func (UnimplementedFocuser) Move(context.Context, int32) error { return ascom.ErrNotImplemented }
