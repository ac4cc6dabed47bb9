package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

// switchActions maps switch capability actions onto the Switch interface.
// Channel-addressed actions take a required Id parameter.
var switchActions = map[actionKey]actionHandler{
	{"maxswitch", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Switch).MaxSwitch(ctx)
	},
	{"canwrite", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).CanWrite(ctx, id)
	},
	{"getswitch", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).GetSwitch(ctx, id)
	},
	{"getswitchdescription", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).GetSwitchDescription(ctx, id)
	},
	{"getswitchname", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).GetSwitchName(ctx, id)
	},
	{"getswitchvalue", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).GetSwitchValue(ctx, id)
	},
	{"minswitchvalue", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).MinSwitchValue(ctx, id)
	},
	{"maxswitchvalue", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).MaxSwitchValue(ctx, id)
	},
	{"switchstep", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		return d.(device.Switch).SwitchStep(ctx, id)
	},
	{"setswitch", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		state, err := p.Bool("State")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Switch).SetSwitch(ctx, id, state)
	},
	{"setswitchname", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		name, err := p.String("Name")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Switch).SetSwitchName(ctx, id, name)
	},
	{"setswitchvalue", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		id, err := p.Int32("Id")
		if err != nil {
			return nil, err
		}
		value, err := p.Float64("Value")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Switch).SetSwitchValue(ctx, id, value)
	},
}
