// Package device defines the Alpaca device capability interfaces and the
// registry that owns registered device instances.
//
// # Capability interfaces
//
// Each Alpaca device category (camera, telescope, focuser, ...) has one Go
// interface whose methods mirror the published action table for that
// category. Every category interface embeds Device, the base interface with
// the identity and metadata operations common to all categories.
//
// Concrete drivers embed the matching Unimplemented* struct and override
// only what the hardware supports:
//
//	type MyFocuser struct {
//	    device.UnimplementedFocuser
//	    ...
//	}
//
// The embedded defaults report NotImplemented for operational methods,
// false for Can* capability probes, and sensible baseline values for the
// universal metadata methods, so a partial driver is always a complete,
// protocol-correct device.
//
// All methods take a context and return either a domain value or an error;
// protocol-level failures are *ascom.Error values.
//
// # Registry
//
// The Registry assigns zero-based per-category device numbers in
// registration order and enforces global UniqueID uniqueness. Registration
// happens once during startup; after Freeze the registry is immutable and
// is read concurrently by request handlers without locking.
package device
