package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

var observingConditionsActions = map[actionKey]actionHandler{
	{"averageperiod", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).AveragePeriod(ctx)
	},
	{"averageperiod", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		hours, err := p.Float64("AveragePeriod")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.ObservingConditions).SetAveragePeriod(ctx, hours)
	},
	{"cloudcover", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).CloudCover(ctx)
	},
	{"dewpoint", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).DewPoint(ctx)
	},
	{"humidity", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).Humidity(ctx)
	},
	{"pressure", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).Pressure(ctx)
	},
	{"rainrate", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).RainRate(ctx)
	},
	{"skybrightness", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).SkyBrightness(ctx)
	},
	{"skyquality", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).SkyQuality(ctx)
	},
	{"skytemperature", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).SkyTemperature(ctx)
	},
	{"starfwhm", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).StarFWHM(ctx)
	},
	{"temperature", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).Temperature(ctx)
	},
	{"winddirection", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).WindDirection(ctx)
	},
	{"windgust", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).WindGust(ctx)
	},
	{"windspeed", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.ObservingConditions).WindSpeed(ctx)
	},
	{"refresh", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.ObservingConditions).Refresh(ctx)
	},
	{"sensordescription", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		sensorName, err := p.String("SensorName")
		if err != nil {
			return nil, err
		}
		return d.(device.ObservingConditions).SensorDescription(ctx, sensorName)
	},
	{"timesincelastupdate", false}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		sensorName, err := p.String("SensorName")
		if err != nil {
			return nil, err
		}
		return d.(device.ObservingConditions).TimeSinceLastUpdate(ctx, sensorName)
	},
}
