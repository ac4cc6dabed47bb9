// Package api provides the Alpaca HTTP server.
//
// It routes /api/v1/{device_type}/{device_number}/{action} requests to the
// registered device drivers, wraps every reply in the Alpaca transaction
// envelope, and serves the /management discovery metadata endpoints.
//
// The server follows the standard lifecycle pattern:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Routing failures (unknown device type, unconfigured device number,
// unknown action, wrong HTTP method) are HTTP 400 with a plain text body.
// Device failures are HTTP 200 with the error carried in the envelope's
// ErrorNumber and ErrorMessage fields. Only those two shapes exist.
//
// Thread Safety: All methods are safe for concurrent use from multiple
// goroutines.
package api
