package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// FilterWheel is the capability interface for filter wheels.
type FilterWheel interface {
	Device

	// FocusOffsets returns the focus offset for each filter slot.
	FocusOffsets(ctx context.Context) ([]int32, error)
	// Names returns the display name of each filter slot.
	Names(ctx context.Context) ([]string, error)
	// Position returns the current zero-based slot, or -1 while moving.
	Position(ctx context.Context) (int32, error)
	SetPosition(ctx context.Context, position int32) error
}

// UnimplementedFilterWheel implements FilterWheel reporting NotImplemented.
type UnimplementedFilterWheel struct {
	UnimplementedDevice
}

func (UnimplementedFilterWheel) FocusOffsets(context.Context) ([]int32, error) {
	return nil, ascom.ErrNotImplemented
}

func (UnimplementedFilterWheel) Names(context.Context) ([]string, error) {
	return nil, ascom.ErrNotImplemented
}

func (UnimplementedFilterWheel) Position(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedFilterWheel) SetPosition(context.Context, int32) error {
	return ascom.ErrNotImplemented
}
