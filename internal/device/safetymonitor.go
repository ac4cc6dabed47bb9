package device

import "context"

// SafetyMonitor is the capability interface for safety monitors.
type SafetyMonitor interface {
	Device

	// IsSafe reports whether conditions are safe for observatory
	// operation. Must return false whenever the state cannot be
	// determined.
	IsSafe(ctx context.Context) (bool, error)
}

// UnimplementedSafetyMonitor implements SafetyMonitor; IsSafe defaults to
// the fail-safe answer false.
type UnimplementedSafetyMonitor struct {
	UnimplementedDevice
}

func (UnimplementedSafetyMonitor) IsSafe(context.Context) (bool, error) { return false, nil }
