// Package ascom defines the ASCOM Alpaca protocol error model.
//
// Alpaca device methods either succeed with a value or fail with an error
// carrying a numeric code from the fixed registry published in the ASCOM
// specification. These errors travel inside a normal HTTP 200 JSON envelope
// (ErrorNumber/ErrorMessage fields) and are distinct from transport-level
// failures and from unroutable-request 400 responses.
//
// Error numbers 0x400-0x4FF are reserved for the well-known codes below;
// 0x500-0xFFF is the driver-specific range, addressed through DriverError
// with a zero-based driver code.
package ascom
