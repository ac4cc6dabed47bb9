package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

var filterWheelActions = map[actionKey]actionHandler{
	{"focusoffsets", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		offsets, err := d.(device.FilterWheel).FocusOffsets(ctx)
		if err != nil {
			return nil, err
		}
		if offsets == nil {
			offsets = []int32{}
		}
		return offsets, nil
	},
	{"names", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		names, err := d.(device.FilterWheel).Names(ctx)
		if err != nil {
			return nil, err
		}
		if names == nil {
			names = []string{}
		}
		return names, nil
	},
	{"position", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.FilterWheel).Position(ctx)
	},
	{"position", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		position, err := p.Int32("Position")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.FilterWheel).SetPosition(ctx, position)
	},
}
