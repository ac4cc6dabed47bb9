package sim

import (
	"context"
	"sync"
	"time"

	"github.com/astrogrid/alpaca-core/internal/ascom"
	"github.com/astrogrid/alpaca-core/internal/device"
	"github.com/astrogrid/alpaca-core/internal/imagebytes"
)

// Camera sensor geometry and limits.
const (
	camWidth      = 640
	camHeight     = 480
	camMaxBin     = 4
	camMaxADU     = 65535
	camGainMin    = 0
	camGainMax    = 100
	camExpMin     = 0.001
	camExpMax     = 3600.0
	camPixelSize  = 3.76
	camSensorName = "SimSensor 640"
)

// Camera is a simulated imaging camera.
//
// Exposures are wall-clock driven: StartExposure records the start time
// and the state machine (Idle, Exposing, Idle-with-image) is computed
// from elapsed time on each poll. No background goroutine runs.
type Camera struct {
	device.UnimplementedCamera

	mu        sync.Mutex
	connected bool
	gain      int32
	binX      int32
	binY      int32
	startX    int32
	startY    int32
	numX      int32
	numY      int32
	coolerOn  bool
	setpoint  float64

	exposing   bool
	light      bool
	duration   float64
	exposedAt  time.Time
	frame      *imagebytes.Image
	lastExpDur float64
	lastExpAt  time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewCamera creates a disconnected simulated camera with full-frame
// defaults.
func NewCamera() *Camera {
	return &Camera{
		gain: 50,
		binX: 1, binY: 1,
		numX: camWidth, numY: camHeight,
		setpoint: -10,
		now:      time.Now,
	}
}

// requireConnected enforces the connection precondition shared by every
// operational method.
func (c *Camera) requireConnected() error {
	if !c.connected {
		return ascom.ErrNotConnected
	}
	return nil
}

// finishExposure folds a completed exposure into a stored frame. Callers
// hold the mutex.
func (c *Camera) finishExposure() {
	if !c.exposing || c.now().Sub(c.exposedAt).Seconds() < c.duration {
		return
	}
	c.exposing = false
	c.lastExpDur = c.duration
	c.lastExpAt = c.exposedAt
	c.frame = c.renderFrame()
}

// renderFrame produces a synthetic frame for the configured subframe: a
// diagonal gradient, scaled by gain, zeroed for dark frames.
func (c *Camera) renderFrame() *imagebytes.Image {
	width := int(c.numX)
	height := int(c.numY)
	pixels := make([]uint16, width*height)
	if c.light {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := (x + int(c.startX) + y + int(c.startY)) * int(c.gain+1)
				pixels[y*width+x] = uint16(v % (camMaxADU + 1))
			}
		}
	}
	// Dimensions are width x height; encoding is row-major from the
	// slowest-varying axis, matching the transposed Alpaca convention.
	img, err := imagebytes.NewUInt16([]int{width, height}, transpose(pixels, width, height))
	if err != nil {
		// Count always matches width*height.
		panic(err)
	}
	return img
}

// transpose reorders row-major pixels into column-major order.
func transpose(pixels []uint16, width, height int) []uint16 {
	out := make([]uint16, len(pixels))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out[x*height+y] = pixels[y*width+x]
		}
	}
	return out
}

func (c *Camera) Connected(context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected, nil
}

func (c *Camera) SetConnected(_ context.Context, connected bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = connected
	if !connected {
		c.exposing = false
		c.frame = nil
	}
	return nil
}

func (c *Camera) Description(context.Context) (string, error) {
	return "Simulated camera", nil
}

func (c *Camera) DriverInfo(context.Context) (string, error) {
	return "AstroGrid camera simulator", nil
}

func (c *Camera) DriverVersion(context.Context) (string, error) { return "1.0", nil }

func (c *Camera) Name(context.Context) (string, error) { return "Sim Camera", nil }

func (c *Camera) CameraState(context.Context) (device.CameraState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return device.CameraIdle, err
	}
	c.finishExposure()
	if c.exposing {
		return device.CameraExposing, nil
	}
	return device.CameraIdle, nil
}

func (c *Camera) CameraXSize(context.Context) (int32, error) { return camWidth, nil }
func (c *Camera) CameraYSize(context.Context) (int32, error) { return camHeight, nil }

func (c *Camera) CanAbortExposure(context.Context) (bool, error) { return true, nil }
func (c *Camera) CanStopExposure(context.Context) (bool, error)  { return true, nil }
func (c *Camera) CanAsymmetricBin(context.Context) (bool, error) { return true, nil }

func (c *Camera) CanSetCCDTemperature(context.Context) (bool, error) { return true, nil }
func (c *Camera) CanGetCoolerPower(context.Context) (bool, error)    { return true, nil }

func (c *Camera) BinX(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.binX, nil
}

func (c *Camera) SetBinX(_ context.Context, binX int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if binX < 1 || binX > camMaxBin {
		return ascom.NewInvalidValue("BinX %d outside 1-%d", binX, camMaxBin)
	}
	c.binX = binX
	return nil
}

func (c *Camera) BinY(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.binY, nil
}

func (c *Camera) SetBinY(_ context.Context, binY int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if binY < 1 || binY > camMaxBin {
		return ascom.NewInvalidValue("BinY %d outside 1-%d", binY, camMaxBin)
	}
	c.binY = binY
	return nil
}

func (c *Camera) MaxBinX(context.Context) (int32, error) { return camMaxBin, nil }
func (c *Camera) MaxBinY(context.Context) (int32, error) { return camMaxBin, nil }
func (c *Camera) MaxADU(context.Context) (int32, error)  { return camMaxADU, nil }

func (c *Camera) Gain(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gain, nil
}

func (c *Camera) SetGain(_ context.Context, gain int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gain < camGainMin || gain > camGainMax {
		return ascom.NewInvalidValue("Gain %d outside %d-%d", gain, camGainMin, camGainMax)
	}
	c.gain = gain
	return nil
}

func (c *Camera) GainMin(context.Context) (int32, error) { return camGainMin, nil }
func (c *Camera) GainMax(context.Context) (int32, error) { return camGainMax, nil }

func (c *Camera) ExposureMin(context.Context) (float64, error) { return camExpMin, nil }
func (c *Camera) ExposureMax(context.Context) (float64, error) { return camExpMax, nil }

func (c *Camera) ExposureResolution(context.Context) (float64, error) { return camExpMin, nil }

func (c *Camera) PixelSizeX(context.Context) (float64, error) { return camPixelSize, nil }
func (c *Camera) PixelSizeY(context.Context) (float64, error) { return camPixelSize, nil }

func (c *Camera) SensorName(context.Context) (string, error) { return camSensorName, nil }

func (c *Camera) SensorType(context.Context) (device.SensorType, error) {
	return device.SensorMonochrome, nil
}

func (c *Camera) HasShutter(context.Context) (bool, error) { return true, nil }

func (c *Camera) StartX(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startX, nil
}

func (c *Camera) SetStartX(_ context.Context, startX int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if startX < 0 || startX >= camWidth {
		return ascom.NewInvalidValue("StartX %d outside sensor", startX)
	}
	c.startX = startX
	return nil
}

func (c *Camera) StartY(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.startY, nil
}

func (c *Camera) SetStartY(_ context.Context, startY int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if startY < 0 || startY >= camHeight {
		return ascom.NewInvalidValue("StartY %d outside sensor", startY)
	}
	c.startY = startY
	return nil
}

func (c *Camera) NumX(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.numX, nil
}

func (c *Camera) SetNumX(_ context.Context, numX int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if numX < 1 || numX > camWidth {
		return ascom.NewInvalidValue("NumX %d outside 1-%d", numX, camWidth)
	}
	c.numX = numX
	return nil
}

func (c *Camera) NumY(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.numY, nil
}

func (c *Camera) SetNumY(_ context.Context, numY int32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if numY < 1 || numY > camHeight {
		return ascom.NewInvalidValue("NumY %d outside 1-%d", numY, camHeight)
	}
	c.numY = numY
	return nil
}

func (c *Camera) CoolerOn(context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return false, err
	}
	return c.coolerOn, nil
}

func (c *Camera) SetCoolerOn(_ context.Context, on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return err
	}
	c.coolerOn = on
	return nil
}

func (c *Camera) CoolerPower(context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return 0, err
	}
	if c.coolerOn {
		return 40, nil
	}
	return 0, nil
}

func (c *Camera) CCDTemperature(context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return 0, err
	}
	if c.coolerOn {
		return c.setpoint, nil
	}
	return 20, nil
}

func (c *Camera) SetCCDTemperature(context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setpoint, nil
}

func (c *Camera) SetSetCCDTemperature(_ context.Context, setpoint float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if setpoint < -50 || setpoint > 50 {
		return ascom.NewInvalidValue("setpoint %.1f outside -50 to 50", setpoint)
	}
	c.setpoint = setpoint
	return nil
}

func (c *Camera) StartExposure(_ context.Context, duration float64, light bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return err
	}
	c.finishExposure()
	if c.exposing {
		return ascom.NewInvalidOperation("an exposure is already in progress")
	}
	if duration < 0 || duration > camExpMax {
		return ascom.NewInvalidValue("Duration %.3f outside 0-%.0f", duration, camExpMax)
	}

	c.exposing = true
	c.light = light
	c.duration = duration
	c.exposedAt = c.now()
	c.frame = nil
	return nil
}

func (c *Camera) StopExposure(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return err
	}
	c.finishExposure()
	if c.exposing {
		// Stop keeps the data gathered so far.
		c.duration = c.now().Sub(c.exposedAt).Seconds()
		c.finishExposure()
	}
	return nil
}

func (c *Camera) AbortExposure(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return err
	}
	c.exposing = false
	c.frame = nil
	return nil
}

func (c *Camera) ImageReady(context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return false, err
	}
	c.finishExposure()
	return c.frame != nil, nil
}

func (c *Camera) ImageArray(context.Context) (*imagebytes.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return nil, err
	}
	c.finishExposure()
	if c.frame == nil {
		return nil, ascom.NewInvalidOperation("no image is ready")
	}
	return c.frame, nil
}

func (c *Camera) PercentCompleted(context.Context) (int32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return 0, err
	}
	c.finishExposure()
	if !c.exposing {
		return 100, nil
	}
	if c.duration <= 0 {
		return 100, nil
	}
	pct := int32(c.now().Sub(c.exposedAt).Seconds() / c.duration * 100)
	if pct > 100 {
		pct = 100
	}
	return pct, nil
}

func (c *Camera) LastExposureDuration(context.Context) (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return 0, err
	}
	c.finishExposure()
	if c.lastExpAt.IsZero() {
		return 0, ascom.ErrValueNotSet
	}
	return c.lastExpDur, nil
}

func (c *Camera) LastExposureStartTime(context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireConnected(); err != nil {
		return "", err
	}
	c.finishExposure()
	if c.lastExpAt.IsZero() {
		return "", ascom.ErrValueNotSet
	}
	// FITS-style timestamp per the ASCOM convention.
	return c.lastExpAt.UTC().Format("2006-01-02T15:04:05"), nil
}

func (c *Camera) ReadoutMode(context.Context) (int32, error) { return 0, nil }

func (c *Camera) SetReadoutMode(_ context.Context, mode int32) error {
	if mode != 0 {
		return ascom.NewInvalidValue("ReadoutMode %d: only mode 0 exists", mode)
	}
	return nil
}

func (c *Camera) ReadoutModes(context.Context) ([]string, error) {
	return []string{"Default"}, nil
}

func (c *Camera) ElectronsPerADU(context.Context) (float64, error) { return 1.5, nil }
