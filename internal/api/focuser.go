package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

var focuserActions = map[actionKey]actionHandler{
	{"absolute", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).Absolute(ctx)
	},
	{"ismoving", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).IsMoving(ctx)
	},
	{"maxincrement", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).MaxIncrement(ctx)
	},
	{"maxstep", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).MaxStep(ctx)
	},
	{"position", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).Position(ctx)
	},
	{"stepsize", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).StepSize(ctx)
	},
	{"tempcomp", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).TempComp(ctx)
	},
	{"tempcomp", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		on, err := p.Bool("TempComp")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Focuser).SetTempComp(ctx, on)
	},
	{"tempcompavailable", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).TempCompAvailable(ctx)
	},
	{"temperature", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Focuser).Temperature(ctx)
	},
	{"halt", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Focuser).Halt(ctx)
	},
	{"move", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		position, err := p.Int32("Position")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Focuser).Move(ctx, position)
	},
}
