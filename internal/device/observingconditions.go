package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// ObservingConditions is the capability interface for weather and sky
// condition sensors. Sensors a station does not carry report
// NotImplemented individually.
type ObservingConditions interface {
	Device

	AveragePeriod(ctx context.Context) (float64, error)
	SetAveragePeriod(ctx context.Context, hours float64) error
	CloudCover(ctx context.Context) (float64, error)
	DewPoint(ctx context.Context) (float64, error)
	Humidity(ctx context.Context) (float64, error)
	Pressure(ctx context.Context) (float64, error)
	RainRate(ctx context.Context) (float64, error)
	SkyBrightness(ctx context.Context) (float64, error)
	SkyQuality(ctx context.Context) (float64, error)
	SkyTemperature(ctx context.Context) (float64, error)
	StarFWHM(ctx context.Context) (float64, error)
	Temperature(ctx context.Context) (float64, error)
	WindDirection(ctx context.Context) (float64, error)
	WindGust(ctx context.Context) (float64, error)
	WindSpeed(ctx context.Context) (float64, error)
	Refresh(ctx context.Context) error
	SensorDescription(ctx context.Context, sensorName string) (string, error)
	TimeSinceLastUpdate(ctx context.Context, sensorName string) (float64, error)
}

// UnimplementedObservingConditions implements ObservingConditions reporting
// NotImplemented for every sensor.
type UnimplementedObservingConditions struct {
	UnimplementedDevice
}

func (UnimplementedObservingConditions) AveragePeriod(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) SetAveragePeriod(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) CloudCover(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) DewPoint(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) Humidity(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) Pressure(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) RainRate(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) SkyBrightness(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) SkyQuality(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) SkyTemperature(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) StarFWHM(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) Temperature(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) WindDirection(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) WindGust(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) WindSpeed(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) Refresh(context.Context) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) SensorDescription(context.Context, string) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedObservingConditions) TimeSinceLastUpdate(context.Context, string) (float64, error) {
	return 0, ascom.ErrNotImplemented
}
