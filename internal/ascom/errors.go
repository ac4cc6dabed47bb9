package ascom

import (
	"errors"
	"fmt"
)

// Well-known Alpaca error numbers, as published in the ASCOM specification.
const (
	CodeNotImplemented       int32 = 0x400
	CodeInvalidValue         int32 = 0x401
	CodeValueNotSet          int32 = 0x402
	CodeNotConnected         int32 = 0x407
	CodeInvalidWhileParked   int32 = 0x408
	CodeInvalidWhileSlaved   int32 = 0x409
	CodeInvalidOperation     int32 = 0x40B
	CodeActionNotImplemented int32 = 0x40C
	CodeOperationCancelled   int32 = 0x40D

	// CodeUnspecified is the reserved catch-all code used when a device
	// fails in a way it did not classify itself.
	CodeUnspecified int32 = 0x4FF

	// driverBase is the start of the driver-specific code range.
	driverBase int32 = 0x500
	// codeMax is the largest valid Alpaca error number.
	codeMax int32 = 0xFFF
)

// Error is a protocol-level device error.
//
// A nil *Error means success. Errors compare equal under errors.Is when
// their codes match, so callers can branch on the sentinel values below
// regardless of the message text.
type Error struct {
	Number  int32
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("ASCOM error 0x%03X: %s", e.Number, e.Message)
}

// Is reports whether target is an *Error with the same number.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Number == other.Number
}

// Sentinel errors for the well-known codes. Use the NewX constructors when a
// more specific message is available.
var (
	ErrNotImplemented       = &Error{CodeNotImplemented, "property or method not implemented"}
	ErrInvalidValue         = &Error{CodeInvalidValue, "invalid value"}
	ErrValueNotSet          = &Error{CodeValueNotSet, "a value has not been set"}
	ErrNotConnected         = &Error{CodeNotConnected, "the device is not connected"}
	ErrInvalidWhileParked   = &Error{CodeInvalidWhileParked, "operation is invalid while parked"}
	ErrInvalidWhileSlaved   = &Error{CodeInvalidWhileSlaved, "operation is invalid while slaved"}
	ErrInvalidOperation     = &Error{CodeInvalidOperation, "the requested operation cannot be undertaken at this time"}
	ErrActionNotImplemented = &Error{CodeActionNotImplemented, "the requested action is not implemented"}
	ErrOperationCancelled   = &Error{CodeOperationCancelled, "the operation was cancelled"}
	ErrUnspecified          = &Error{CodeUnspecified, "unspecified error"}
)

// NewError builds an error with an explicit Alpaca error number.
// Numbers outside the valid protocol range are clamped to Unspecified so a
// misbehaving device cannot emit an out-of-spec envelope.
func NewError(number int32, format string, args ...any) *Error {
	if number != 0 && (number < CodeNotImplemented || number > codeMax) {
		number = CodeUnspecified
	}
	return &Error{Number: number, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidValue builds an InvalidValue error, typically for a request
// parameter that failed type coercion or range validation.
func NewInvalidValue(format string, args ...any) *Error {
	return &Error{Number: CodeInvalidValue, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidOperation builds an InvalidOperation error.
func NewInvalidOperation(format string, args ...any) *Error {
	return &Error{Number: CodeInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

// NewUnspecified builds the catch-all error. The router uses this to report
// faults recovered at the dispatch boundary.
func NewUnspecified(format string, args ...any) *Error {
	return &Error{Number: CodeUnspecified, Message: fmt.Sprintf(format, args...)}
}

// DriverError maps a zero-based driver-specific code into the reserved
// 0x500-0xFFF range.
func DriverError(driverCode int32, format string, args ...any) *Error {
	number := driverBase + driverCode
	if driverCode < 0 || number > codeMax {
		number = CodeUnspecified
	}
	return &Error{Number: number, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts the protocol error from err, converting foreign error
// values into Unspecified so that everything crossing the wire carries a
// valid Alpaca number. A nil err returns nil.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return NewUnspecified("%s", err.Error())
}
