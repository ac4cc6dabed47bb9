package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

var domeActions = map[actionKey]actionHandler{
	{"altitude", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).Altitude(ctx)
	},
	{"athome", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).AtHome(ctx)
	},
	{"atpark", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).AtPark(ctx)
	},
	{"azimuth", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).Azimuth(ctx)
	},
	{"canfindhome", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).CanFindHome(ctx)
	},
	{"canpark", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).CanPark(ctx)
	},
	{"cansetaltitude", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).CanSetAltitude(ctx)
	},
	{"cansetazimuth", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).CanSetAzimuth(ctx)
	},
	{"cansetshutter", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).CanSetShutter(ctx)
	},
	{"canslave", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).CanSlave(ctx)
	},
	{"cansyncazimuth", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).CanSyncAzimuth(ctx)
	},
	{"shutterstatus", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		status, err := d.(device.Dome).ShutterStatus(ctx)
		return int32(status), err
	},
	{"slaved", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).Slaved(ctx)
	},
	{"slaved", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		slaved, err := p.Bool("Slaved")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Dome).SetSlaved(ctx, slaved)
	},
	{"slewing", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Dome).Slewing(ctx)
	},
	{"abortslew", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Dome).AbortSlew(ctx)
	},
	{"closeshutter", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Dome).CloseShutter(ctx)
	},
	{"findhome", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Dome).FindHome(ctx)
	},
	{"openshutter", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Dome).OpenShutter(ctx)
	},
	{"park", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Dome).Park(ctx)
	},
	{"setpark", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Dome).SetPark(ctx)
	},
	{"slewtoaltitude", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		altitude, err := p.Float64("Altitude")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Dome).SlewToAltitude(ctx, altitude)
	},
	{"slewtoazimuth", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		azimuth, err := p.Float64("Azimuth")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Dome).SlewToAzimuth(ctx, azimuth)
	},
	{"synctoazimuth", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		azimuth, err := p.Float64("Azimuth")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Dome).SyncToAzimuth(ctx, azimuth)
	},
}
