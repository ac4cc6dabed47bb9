package device

import (
	"context"

	"github.com/astrogrid/alpaca-core/internal/ascom"
)

// CoverState reports the cover's position.
type CoverState int32

const (
	CoverNotPresent CoverState = 0
	CoverClosed     CoverState = 1
	CoverMoving     CoverState = 2
	CoverOpen       CoverState = 3
	CoverUnknown    CoverState = 4
	CoverFault      CoverState = 5
)

// CalibratorState reports the calibration light source's condition.
type CalibratorState int32

const (
	CalibratorNotPresent CalibratorState = 0
	CalibratorOff        CalibratorState = 1
	CalibratorNotReady   CalibratorState = 2
	CalibratorReady      CalibratorState = 3
	CalibratorUnknown    CalibratorState = 4
	CalibratorFault      CalibratorState = 5
)

// CoverCalibrator is the capability interface for flat-field calibrators
// and dust covers.
type CoverCalibrator interface {
	Device

	Brightness(ctx context.Context) (int32, error)
	CalibratorState(ctx context.Context) (CalibratorState, error)
	CoverState(ctx context.Context) (CoverState, error)
	MaxBrightness(ctx context.Context) (int32, error)
	CalibratorOff(ctx context.Context) error
	CalibratorOn(ctx context.Context, brightness int32) error
	CloseCover(ctx context.Context) error
	HaltCover(ctx context.Context) error
	OpenCover(ctx context.Context) error
}

// UnimplementedCoverCalibrator implements CoverCalibrator; state probes
// report the NotPresent states and operations report NotImplemented.
type UnimplementedCoverCalibrator struct {
	UnimplementedDevice
}

func (UnimplementedCoverCalibrator) Brightness(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCoverCalibrator) CalibratorState(context.Context) (CalibratorState, error) {
	return CalibratorNotPresent, nil
}

func (UnimplementedCoverCalibrator) CoverState(context.Context) (CoverState, error) {
	return CoverNotPresent, nil
}

func (UnimplementedCoverCalibrator) MaxBrightness(context.Context) (int32, error) {
	return 0, ascom.ErrNotImplemented
}

func (UnimplementedCoverCalibrator) CalibratorOff(context.Context) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedCoverCalibrator) CalibratorOn(context.Context, int32) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedCoverCalibrator) CloseCover(context.Context) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedCoverCalibrator) HaltCover(context.Context) error {
	return ascom.ErrNotImplemented
}

func (UnimplementedCoverCalibrator) OpenCover(context.Context) error {
	return ascom.ErrNotImplemented
}
