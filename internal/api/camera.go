package api

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/device"
)

// cameraActions maps camera capability actions onto the Camera interface.
// Enum-valued getters are widened to int32 for the envelope.
var cameraActions = map[actionKey]actionHandler{
	{"binx", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).BinX(ctx)
	},
	{"binx", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		v, err := p.Int32("BinX")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetBinX(ctx, v)
	},
	{"biny", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).BinY(ctx)
	},
	{"biny", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		v, err := p.Int32("BinY")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetBinY(ctx, v)
	},
	{"camerastate", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		state, err := d.(device.Camera).CameraState(ctx)
		return int32(state), err
	},
	{"cameraxsize", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CameraXSize(ctx)
	},
	{"cameraysize", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CameraYSize(ctx)
	},
	{"canabortexposure", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CanAbortExposure(ctx)
	},
	{"canasymmetricbin", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CanAsymmetricBin(ctx)
	},
	{"canfastreadout", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CanFastReadout(ctx)
	},
	{"cangetcoolerpower", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CanGetCoolerPower(ctx)
	},
	{"canpulseguide", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CanPulseGuide(ctx)
	},
	{"cansetccdtemperature", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CanSetCCDTemperature(ctx)
	},
	{"canstopexposure", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CanStopExposure(ctx)
	},
	{"ccdtemperature", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CCDTemperature(ctx)
	},
	{"cooleron", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CoolerOn(ctx)
	},
	{"cooleron", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		on, err := p.Bool("CoolerOn")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetCoolerOn(ctx, on)
	},
	{"coolerpower", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).CoolerPower(ctx)
	},
	{"electronsperadu", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ElectronsPerADU(ctx)
	},
	{"exposuremax", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ExposureMax(ctx)
	},
	{"exposuremin", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ExposureMin(ctx)
	},
	{"exposureresolution", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ExposureResolution(ctx)
	},
	{"gain", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).Gain(ctx)
	},
	{"gain", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		gain, err := p.Int32("Gain")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetGain(ctx, gain)
	},
	{"gainmax", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).GainMax(ctx)
	},
	{"gainmin", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).GainMin(ctx)
	},
	{"hasshutter", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).HasShutter(ctx)
	},
	{"imagearray", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ImageArray(ctx)
	},
	// imagearrayvariant is served from the same frame; the variant
	// distinction only matters to COM clients.
	{"imagearrayvariant", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ImageArray(ctx)
	},
	{"imageready", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ImageReady(ctx)
	},
	{"lastexposureduration", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).LastExposureDuration(ctx)
	},
	{"lastexposurestarttime", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).LastExposureStartTime(ctx)
	},
	{"maxadu", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).MaxADU(ctx)
	},
	{"maxbinx", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).MaxBinX(ctx)
	},
	{"maxbiny", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).MaxBinY(ctx)
	},
	{"numx", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).NumX(ctx)
	},
	{"numx", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		v, err := p.Int32("NumX")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetNumX(ctx, v)
	},
	{"numy", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).NumY(ctx)
	},
	{"numy", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		v, err := p.Int32("NumY")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetNumY(ctx, v)
	},
	{"percentcompleted", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).PercentCompleted(ctx)
	},
	{"pixelsizex", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).PixelSizeX(ctx)
	},
	{"pixelsizey", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).PixelSizeY(ctx)
	},
	{"readoutmode", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ReadoutMode(ctx)
	},
	{"readoutmode", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		mode, err := p.Int32("ReadoutMode")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetReadoutMode(ctx, mode)
	},
	{"readoutmodes", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).ReadoutModes(ctx)
	},
	{"sensorname", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).SensorName(ctx)
	},
	{"sensortype", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		sensorType, err := d.(device.Camera).SensorType(ctx)
		return int32(sensorType), err
	},
	{"setccdtemperature", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).SetCCDTemperature(ctx)
	},
	{"setccdtemperature", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		setpoint, err := p.Float64("SetCCDTemperature")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetSetCCDTemperature(ctx, setpoint)
	},
	{"startx", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).StartX(ctx)
	},
	{"startx", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		v, err := p.Int32("StartX")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetStartX(ctx, v)
	},
	{"starty", false}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return d.(device.Camera).StartY(ctx)
	},
	{"starty", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		v, err := p.Int32("StartY")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).SetStartY(ctx, v)
	},
	{"startexposure", true}: func(ctx context.Context, d device.Device, p *Params) (any, error) {
		duration, err := p.Float64("Duration")
		if err != nil {
			return nil, err
		}
		light, err := p.Bool("Light")
		if err != nil {
			return nil, err
		}
		return nil, d.(device.Camera).StartExposure(ctx, duration, light)
	},
	{"stopexposure", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Camera).StopExposure(ctx)
	},
	{"abortexposure", true}: func(ctx context.Context, d device.Device, _ *Params) (any, error) {
		return nil, d.(device.Camera).AbortExposure(ctx)
	},
}
