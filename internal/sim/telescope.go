package sim

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/astrogrid/alpaca-core/internal/ascom"
	"github.com/astrogrid/alpaca-core/internal/device"
)

// slewRate is the simulated slew speed in degrees per second.
const slewRate = 10.0

// Telescope is a simulated equatorial mount.
//
// Slews are wall-clock driven like the camera's exposures: the current
// position is interpolated between the slew's start and target on each
// poll.
type Telescope struct {
	device.UnimplementedTelescope

	mu        sync.Mutex
	connected bool
	parked    bool
	tracking  bool

	siteLat float64
	siteLon float64

	// Current position in RA hours / Dec degrees.
	rightAscension float64
	declination    float64

	// Slew interpolation state.
	slewing     bool
	slewStart   time.Time
	slewSeconds float64
	fromRA      float64
	fromDec     float64
	targetRA    float64
	targetDec   float64

	targetRASet  bool
	targetDecSet bool

	now func() time.Time
}

// NewTelescope creates a disconnected simulated mount parked at the pole.
func NewTelescope() *Telescope {
	return &Telescope{
		parked:      true,
		declination: 90,
		now:         time.Now,
	}
}

func (t *Telescope) requireConnected() error {
	if !t.connected {
		return ascom.ErrNotConnected
	}
	return nil
}

// settle folds a completed slew into the resting position. Callers hold
// the mutex.
func (t *Telescope) settle() {
	if !t.slewing {
		return
	}
	elapsed := t.now().Sub(t.slewStart).Seconds()
	if elapsed >= t.slewSeconds {
		t.slewing = false
		t.rightAscension = t.targetRA
		t.declination = t.targetDec
		return
	}
	frac := elapsed / t.slewSeconds
	t.rightAscension = t.fromRA + (t.targetRA-t.fromRA)*frac
	t.declination = t.fromDec + (t.targetDec-t.fromDec)*frac
}

func (t *Telescope) Connected(context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected, nil
}

func (t *Telescope) SetConnected(_ context.Context, connected bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connected = connected
	if !connected {
		t.slewing = false
		t.tracking = false
	}
	return nil
}

func (t *Telescope) Description(context.Context) (string, error) {
	return "Simulated equatorial mount", nil
}

func (t *Telescope) DriverInfo(context.Context) (string, error) {
	return "AstroGrid telescope simulator", nil
}

func (t *Telescope) DriverVersion(context.Context) (string, error) { return "1.0", nil }

func (t *Telescope) Name(context.Context) (string, error) { return "Sim Telescope", nil }

func (t *Telescope) CanPark(context.Context) (bool, error)        { return true, nil }
func (t *Telescope) CanUnpark(context.Context) (bool, error)      { return true, nil }
func (t *Telescope) CanSetTracking(context.Context) (bool, error) { return true, nil }
func (t *Telescope) CanSlew(context.Context) (bool, error)        { return true, nil }
func (t *Telescope) CanSlewAsync(context.Context) (bool, error)   { return true, nil }
func (t *Telescope) CanSync(context.Context) (bool, error)        { return true, nil }

func (t *Telescope) AtPark(context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return false, err
	}
	return t.parked, nil
}

func (t *Telescope) RightAscension(context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return 0, err
	}
	t.settle()
	return t.rightAscension, nil
}

func (t *Telescope) Declination(context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return 0, err
	}
	t.settle()
	return t.declination, nil
}

func (t *Telescope) SiderealTime(context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return 0, err
	}
	// Rough local sidereal time: good enough for a simulator.
	nowUTC := t.now().UTC()
	dayFrac := float64(nowUTC.Hour())*3600 + float64(nowUTC.Minute())*60 + float64(nowUTC.Second())
	lst := math.Mod(dayFrac/3600*1.0027379+t.siteLon/15, 24)
	if lst < 0 {
		lst += 24
	}
	return lst, nil
}

func (t *Telescope) SiteLatitude(context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.siteLat, nil
}

func (t *Telescope) SetSiteLatitude(_ context.Context, degrees float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if degrees < -90 || degrees > 90 {
		return ascom.NewInvalidValue("SiteLatitude %.4f outside -90 to 90", degrees)
	}
	t.siteLat = degrees
	return nil
}

func (t *Telescope) SiteLongitude(context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.siteLon, nil
}

func (t *Telescope) SetSiteLongitude(_ context.Context, degrees float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if degrees < -180 || degrees > 180 {
		return ascom.NewInvalidValue("SiteLongitude %.4f outside -180 to 180", degrees)
	}
	t.siteLon = degrees
	return nil
}

func (t *Telescope) Tracking(context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return false, err
	}
	return t.tracking, nil
}

func (t *Telescope) SetTracking(_ context.Context, tracking bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return err
	}
	if t.parked {
		return ascom.ErrInvalidWhileParked
	}
	t.tracking = tracking
	return nil
}

func (t *Telescope) Slewing(context.Context) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return false, err
	}
	t.settle()
	return t.slewing, nil
}

func (t *Telescope) TargetRightAscension(context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.targetRASet {
		return 0, ascom.ErrValueNotSet
	}
	return t.targetRA, nil
}

func (t *Telescope) SetTargetRightAscension(_ context.Context, hours float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if hours < 0 || hours >= 24 {
		return ascom.NewInvalidValue("TargetRightAscension %.4f outside 0-24", hours)
	}
	t.targetRA = hours
	t.targetRASet = true
	return nil
}

func (t *Telescope) TargetDeclination(context.Context) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.targetDecSet {
		return 0, ascom.ErrValueNotSet
	}
	return t.targetDec, nil
}

func (t *Telescope) SetTargetDeclination(_ context.Context, degrees float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if degrees < -90 || degrees > 90 {
		return ascom.NewInvalidValue("TargetDeclination %.4f outside -90 to 90", degrees)
	}
	t.targetDec = degrees
	t.targetDecSet = true
	return nil
}

func (t *Telescope) Park(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return err
	}
	t.settle()
	t.slewing = false
	t.tracking = false
	t.parked = true
	t.rightAscension = 0
	t.declination = 90
	return nil
}

func (t *Telescope) Unpark(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return err
	}
	t.parked = false
	return nil
}

func (t *Telescope) SlewToCoordinatesAsync(_ context.Context, rightAscension, declination float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return err
	}
	if t.parked {
		return ascom.ErrInvalidWhileParked
	}
	if err := validateCoordinates(rightAscension, declination); err != nil {
		return err
	}
	t.settle()

	// Slew time scales with angular distance; RA hours are 15 degrees each.
	distance := math.Hypot((rightAscension-t.rightAscension)*15, declination-t.declination)
	t.slewing = true
	t.slewStart = t.now()
	t.slewSeconds = distance / slewRate
	t.fromRA = t.rightAscension
	t.fromDec = t.declination
	t.targetRA = rightAscension
	t.targetDec = declination
	t.targetRASet = true
	t.targetDecSet = true
	return nil
}

func (t *Telescope) SyncToCoordinates(_ context.Context, rightAscension, declination float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return err
	}
	if t.parked {
		return ascom.ErrInvalidWhileParked
	}
	if err := validateCoordinates(rightAscension, declination); err != nil {
		return err
	}
	t.slewing = false
	t.rightAscension = rightAscension
	t.declination = declination
	return nil
}

func (t *Telescope) AbortSlew(context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.requireConnected(); err != nil {
		return err
	}
	t.settle()
	t.slewing = false
	return nil
}

// validateCoordinates range-checks an RA/Dec pair.
func validateCoordinates(rightAscension, declination float64) error {
	if rightAscension < 0 || rightAscension >= 24 {
		return ascom.NewInvalidValue("RightAscension %.4f outside 0-24", rightAscension)
	}
	if declination < -90 || declination > 90 {
		return ascom.NewInvalidValue("Declination %.4f outside -90 to 90", declination)
	}
	return nil
}
