package device

import "errors"

// Registration errors. These are startup-fatal configuration mistakes, not
// runtime protocol errors, and never reach the wire.
var (
	// ErrDuplicateUniqueID is returned when a device's UniqueID collides
	// with an already-registered device of any type.
	ErrDuplicateUniqueID = errors.New("device: duplicate unique ID")

	// ErrRegistryFrozen is returned when registering after Freeze.
	ErrRegistryFrozen = errors.New("device: registry is frozen")

	// ErrWrongInterface is returned when a driver does not implement the
	// capability interface of the category it is registered under.
	ErrWrongInterface = errors.New("device: driver does not implement the category interface")

	// ErrUnknownType is returned for a type outside the closed category set.
	ErrUnknownType = errors.New("device: unknown device type")
)
