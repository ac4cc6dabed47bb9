package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

var coverCalibratorActions = map[actionKey]actionHandler{
	{"brightness", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.CoverCalibrator).Brightness(ctx)
	},
	{"calibratorstate", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		state, err := d.(device.CoverCalibrator).CalibratorState(ctx)
		return int32(state), err
	},
	{"coverstate", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		state, err := d.(device.CoverCalibrator).CoverState(ctx)
		return int32(state), err
	},
	{"maxbrightness", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.CoverCalibrator).MaxBrightness(ctx)
	},
	{"calibratoroff", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.CoverCalibrator).CalibratorOff(ctx)
	},
	{"calibratoron", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		brightness, err := p.Int32("Brightness")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.CoverCalibrator).CalibratorOn(ctx, brightness)
	},
	{"closecover", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.CoverCalibrator).CloseCover(ctx)
	},
	{"haltcover", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.CoverCalibrator).HaltCover(ctx)
	},
	{"opencover", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.CoverCalibrator).OpenCover(ctx)
	},
}
