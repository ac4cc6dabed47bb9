package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
	"github.com/astrogrid/alpaca-core/internal/imagebytes"
)

// CameraState reports the camera's operational condition.
type CameraState int32

const (
	CameraIdle     CameraState = 0
	CameraWaiting  CameraState = 1
	CameraExposing CameraState = 2
	CameraReading  CameraState = 3
	CameraDownload CameraState = 4
	CameraError    CameraState = 5
)

// SensorType describes the sensor's colour layout.
type SensorType int32

const (
	SensorMonochrome SensorType = 0
	SensorColour     SensorType = 1
	SensorRGGB       SensorType = 2
	SensorCMYG       SensorType = 3
	SensorCMYG2      SensorType = 4
	SensorLRGB       SensorType = 5
)

// Camera is the capability interface for imaging cameras.
//
// Exposure control is asynchronous: StartExposure initiates the exposure
// and returns; clients poll ImageReady and fetch the frame via ImageArray.
type Camera interface {
	Device

	BinX(ctx context.Context) (int32, error)
	SetBinX(ctx context.Context, binX int32) error
	BinY(ctx context.Context) (int32, error)
	SetBinY(ctx context.Context, binY int32) error
	CameraState(ctx context.Context) (CameraState, error)
	// CameraXSize and CameraYSize are the sensor dimensions in unbinned
	// pixels.
	CameraXSize(ctx context.Context) (int32, error)
	CameraYSize(ctx context.Context) (int32, error)
	CanAbortExposure(ctx context.Context) (bool, error)
	CanAsymmetricBin(ctx context.Context) (bool, error)
	CanFastReadout(ctx context.Context) (bool, error)
	CanGetCoolerPower(ctx context.Context) (bool, error)
	CanPulseGuide(ctx context.Context) (bool, error)
	CanSetCCDTemperature(ctx context.Context) (bool, error)
	CanStopExposure(ctx context.Context) (bool, error)
	CCDTemperature(ctx context.Context) (float64, error)
	CoolerOn(ctx context.Context) (bool, error)
	SetCoolerOn(ctx context.Context, on bool) error
	CoolerPower(ctx context.Context) (float64, error)
	ElectronsPerADU(ctx context.Context) (float64, error)
	ExposureMax(ctx context.Context) (float64, error)
	ExposureMin(ctx context.Context) (float64, error)
	ExposureResolution(ctx context.Context) (float64, error)
	Gain(ctx context.Context) (int32, error)
	SetGain(ctx context.Context, gain int32) error
	GainMax(ctx context.Context) (int32, error)
	GainMin(ctx context.Context) (int32, error)
	HasShutter(ctx context.Context) (bool, error)
	// ImageArray returns the frame captured by the last completed
	// exposure with the sensor's native element type.
	ImageArray(ctx context.Context) (*imagebytes.Image, error)
	// ImageReady reports whether a frame is waiting to be downloaded.
	ImageReady(ctx context.Context) (bool, error)
	LastExposureDuration(ctx context.Context) (float64, error)
	LastExposureStartTime(ctx context.Context) (string, error)
	MaxADU(ctx context.Context) (int32, error)
	MaxBinX(ctx context.Context) (int32, error)
	MaxBinY(ctx context.Context) (int32, error)
	NumX(ctx context.Context) (int32, error)
	SetNumX(ctx context.Context, numX int32) error
	NumY(ctx context.Context) (int32, error)
	SetNumY(ctx context.Context, numY int32) error
	PercentCompleted(ctx context.Context) (int32, error)
	PixelSizeX(ctx context.Context) (float64, error)
	PixelSizeY(ctx context.Context) (float64, error)
	ReadoutMode(ctx context.Context) (int32, error)
	SetReadoutMode(ctx context.Context, mode int32) error
	ReadoutModes(ctx context.Context) ([]string, error)
	SensorName(ctx context.Context) (string, error)
	SensorType(ctx context.Context) (SensorType, error)
	SetCCDTemperature(ctx context.Context) (float64, error)
	SetSetCCDTemperature(ctx context.Context, setpoint float64) error
	StartX(ctx context.Context) (int32, error)
	SetStartX(ctx context.Context, startX int32) error
	StartY(ctx context.Context) (int32, error)
	SetStartY(ctx context.Context, startY int32) error
	// StartExposure begins an exposure of the given duration in seconds;
	// light selects between light and dark frames.
	StartExposure(ctx context.Context, duration float64, light bool) error
	StopExposure(ctx context.Context) error
	AbortExposure(ctx context.Context) error
}

// UnimplementedCamera implements Camera with capability probes returning
// false and all operational methods reporting NotImplemented.
type UnimplementedCamera struct {
	UnimplementedDevice
}

func (UnimplementedCamera) BinX(context.Context) (int32, error)  { return 0, ascom.ErrNotImplemented }
func (UnimplementedCamera) SetBinX(context.Context, int32) error { return ascom.ErrNotImplemented }
func (UnimplementedCamera) BinY(context.Context) (int32, error)  { return 0, ascom.ErrNotImplemented }
func (UnimplementedCamera) SetBinY(context.Context, int32) error { return ascom.ErrNotImplemented }

func (UnimplementedCamera) CameraState(context.Context) (CameraState, error) {
	return CameraIdle, ascom.ErrNotImplemented
}

func (UnimplementedCamera) CameraXSize(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) CameraYSize(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) CanAbortExposure(context.Context) (bool, error)     { return false, nil }
func (UnimplementedCamera) CanAsymmetricBin(context.Context) (bool, error)     { return false, nil }
func (UnimplementedCamera) CanFastReadout(context.Context) (bool, error)       { return false, nil }
func (UnimplementedCamera) CanGetCoolerPower(context.Context) (bool, error)    { return false, nil }
func (UnimplementedCamera) CanPulseGuide(context.Context) (bool, error)        { return false, nil }
func (UnimplementedCamera) CanSetCCDTemperature(context.Context) (bool, error) { return false, nil }
func (UnimplementedCamera) CanStopExposure(context.Context) (bool, error)      { return false, nil }

func (UnimplementedCamera) CCDTemperature(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) CoolerOn(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedCamera) SetCoolerOn(context.Context, bool) error { return ascom.ErrNotImplemented }

func (UnimplementedCamera) CoolerPower(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) ElectronsPerADU(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) ExposureMax(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) ExposureMin(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) ExposureResolution(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) Gain(context.Context) (int32, error)  { return 0, ascom.ErrNotImplemented }
func (UnimplementedCamera) SetGain(context.Context, int32) error { return ascom.ErrNotImplemented }

func (UnimplementedCamera) GainMax(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) GainMin(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) HasShutter(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedCamera) ImageArray(context.Context) (*imagebytes.Image, error) {
	return nil, ascom.ErrNotImplemented
}

func (UnimplementedCamera) ImageReady(context.Context) (bool, error) {
	return false, ascom.ErrNotImplemented
}

func (UnimplementedCamera) LastExposureDuration(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) LastExposureStartTime(context.Context) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedCamera) MaxADU(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) MaxBinX(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) MaxBinY(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) NumX(context.Context) (int32, error)  { return 0, ascom.ErrNotImplemented }
func (UnimplementedCamera) SetNumX(context.Context, int32) error { return ascom.ErrNotImplemented }
func (UnimplementedCamera) NumY(context.Context) (int32, error)  { return 0, ascom.ErrNotImplemented }
func (UnimplementedCamera) SetNumY(context.Context, int32) error { return ascom.ErrNotImplemented }

func (UnimplementedCamera) PercentCompleted(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) PixelSizeX(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) PixelSizeY(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) ReadoutMode(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) SetReadoutMode(context.Context, int32) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedCamera) ReadoutModes(context.Context) ([]string, error) {
	return nil, ascom.ErrNotImplemented
}

func (UnimplementedCamera) SensorName(context.Context) (string, error) {
	return "", ascom.ErrNotImplemented
}

func (UnimplementedCamera) SensorType(context.Context) (SensorType, error) {
	return SensorMonochrome, ascom.ErrNotImplemented
}

func (UnimplementedCamera) SetCCDTemperature(context.Context) (float64, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) SetSetCCDTemperature(context.Context, float64) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedCamera) StartX(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) SetStartX(context.Context, int32) error { return ascom.ErrNotImplemented }

func (UnimplementedCamera) StartY(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCamera) SetStartY(context.Context, int32) error { return ascom.ErrNotImplemented }

func (UnimplementedCamera) StartExposure(context.Context, float64, bool) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedCamera) StopExposure(context.Context) error  { return ascom.ErrNotImplemented }
func (UnimplementedCamera) AbortExposure(context.Context) error { return ascom.ErrNotImplemented }
