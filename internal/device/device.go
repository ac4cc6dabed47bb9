package device

import (
	"context"
	"strings"
)

// Type is an Alpaca device category. The set of categories is closed and
// fixed by the Alpaca protocol; values double as the device_type path segment.
type Type string

const (
	TypeCamera              Type = "camera"
	TypeCoverCalibrator     Type = "covercalibrator"
	TypeDome                Type = "dome"
	TypeFilterWheel         Type = "filterwheel"
	TypeFocuser             Type = "focuser"
	TypeObservingConditions Type = "observingconditions"
	TypeRotator             Type = "rotator"
	TypeSafetyMonitor       Type = "safetymonitor"
	TypeSwitch              Type = "switch"
	TypeTelescope           Type = "telescope"
)

// allTypes is ordered for stable enumeration output.
var allTypes = []Type{
	TypeCamera,
	TypeCoverCalibrator,
	TypeDome,
	TypeFilterWheel,
	TypeFocuser,
	TypeObservingConditions,
	TypeRotator,
	TypeSafetyMonitor,
	TypeSwitch,
	TypeTelescope,
}

// Types returns all known device categories in canonical order.
func Types() []Type {
	out := make([]Type, len(allTypes))
	copy(out, allTypes)
	return out
}

// ParseType maps a path segment onto a known category. Matching is
// case-insensitive since Alpaca URLs are case-insensitive.
func ParseType(s string) (Type, bool) {
	t := Type(strings.ToLower(s))
	for _, known := range allTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// DisplayName returns the conventional mixed-case name used in management
// metadata (e.g. "FilterWheel").
func (t Type) DisplayName() string {
	switch t {
	case TypeCamera:
		return "Camera"
	case TypeCoverCalibrator:
		return "CoverCalibrator"
	case TypeDome:
		return "Dome"
	case TypeFilterWheel:
		return "FilterWheel"
	case TypeFocuser:
		return "Focuser"
	case TypeObservingConditions:
		return "ObservingConditions"
	case TypeRotator:
		return "Rotator"
	case TypeSafetyMonitor:
		return "SafetyMonitor"
	case TypeSwitch:
		return "Switch"
	case TypeTelescope:
		return "Telescope"
	default:
		return string(t)
	}
}

// Device is the base capability interface shared by every category: the
// identity and metadata operations common to all Alpaca devices.
type Device interface {
	// Connected reports whether the device hardware link is established.
	Connected(ctx context.Context) (bool, error)
	// SetConnected establishes or tears down the hardware link.
	SetConnected(ctx context.Context, connected bool) error
	// Description describes the device itself.
	Description(ctx context.Context) (string, error)
	// DriverInfo describes the driver.
	DriverInfo(ctx context.Context) (string, error)
	// DriverVersion is the driver's "major.minor" version string.
	DriverVersion(ctx context.Context) (string, error)
	// InterfaceVersion is the version of the category interface the
	// driver implements.
	InterfaceVersion(ctx context.Context) (int32, error)
	// Name is the device's display name.
	Name(ctx context.Context) (string, error)
	// SupportedActions lists the custom action names accepted by Action.
	SupportedActions(ctx context.Context) ([]string, error)
	// Action invokes a driver-specific extension action.
	Action(ctx context.Context, action, parameters string) (string, error)
	// CommandBlind transmits a raw command without awaiting a reply.
	CommandBlind(ctx context.Context, command string, raw bool) error
	// CommandBool transmits a raw command and awaits a boolean reply.
	CommandBool(ctx context.Context, command string, raw bool) (bool, error)
	// CommandString transmits a raw command and awaits a string reply.
	CommandString(ctx context.Context, command string, raw bool) (string, error)
}
