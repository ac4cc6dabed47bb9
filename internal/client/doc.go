// Package client is an Alpaca HTTP client.
//
// A Client talks to one Alpaca server; Device binds it to one device
// address and exposes the common operations, with Camera adding the
// imaging surface. Transport failures (connection refused, HTTP 400,
// unparseable body) surface as ordinary wrapped errors; device failures
// carried in the response envelope surface as *ascom.Error values, so
// callers can tell the two apart with errors.As.
package client
