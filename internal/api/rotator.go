package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

var rotatorActions = map[actionKey]actionHandler{
	{"canreverse", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Rotator).CanReverse(ctx)
	},
	{"ismoving", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Rotator).IsMoving(ctx)
	},
	{"mechanicalposition", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Rotator).MechanicalPosition(ctx)
	},
	{"position", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Rotator).Position(ctx)
	},
	{"reverse", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Rotator).Reverse(ctx)
	},
	{"reverse", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		reversed, err := p.Bool("Reverse")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Rotator).SetReverse(ctx, reversed)
	},
	{"stepsize", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Rotator).StepSize(ctx)
	},
	{"targetposition", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Rotator).TargetPosition(ctx)
	},
	{"halt", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Rotator).Halt(ctx)
	},
	{"move", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		offset, err := p.Float64("Position")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Rotator).Move(ctx, offset)
	},
	{"moveabsolute", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		position, err := p.Float64("Position")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Rotator).MoveAbsolute(ctx, position)
	},
	{"movemechanical", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		position, err := p.Float64("Position")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Rotator).MoveMechanical(ctx, position)
	},
	{"sync", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		position, err := p.Float64("Position")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Rotator).Sync(ctx, position)
	},
}
