package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// Rotator is the capability interface for field rotators. Positions and
// offsets are in degrees.
type Rotator interface {
	Device

	CanReverse(ctx context.Context) (bool, error)
	IsMoving(ctx context.Context) (bool, error)
	MechanicalPosition(ctx context.Context) (float64, error)
	Position(ctx context.Context) (float64, error)
	Reverse(ctx context.Context) (bool, error)
	SetReverse(ctx context.Context, reversed bool) error
	StepSize(ctx context.Context) (float64, error)
	TargetPosition(ctx context.Context) (float64, error)
	Halt(ctx context.Context) error
	Move(ctx context.Context, offset float64) error
	MoveAbsolute(ctx context.Context, position float64) error
	MoveMechanical(ctx context.Context, position float64) error
	Sync(ctx context.Context, position float64) error
}

// UnimplementedRotator implements Rotator with CanReverse returning false
// and operational methods reporting NotImplemented.
type UnimplementedRotator struct {
	UnimplementedDevice
}

func (UnimplementedRotator) CanReverse(context.Context) (bool, error) { return false, nil }

func (UnimplementedRotator) IsMoving(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedRotator) MechanicalPosition(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedRotator) Position(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedRotator) Reverse(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedRotator) SetReverse(context.Context, bool) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedRotator) StepSize(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedRotator) TargetPosition(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedRotator) Halt(context.Context) error { return ascom.ErrNotImplemented }

func (UnimplementedRotator) Move(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedRotator) MoveAbsolute(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedRotator) MoveMechanical(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedRotator) Sync(context.Context, float64) error {
	return ascom.ErrNotImplemented
}
