package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	// Anything that does not match a route is a protocol violation, and
	// Alpaca reports those as 400 rather than 404/405.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeBadRequest(w, "unrecognised Alpaca route: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeBadRequest(w, "method "+r.Method+" is not valid for "+r.URL.Path)
	})

	// Management metadata
	r.Get("/management/apiversions", s.handleAPIVersions)
	r.Get("/management/v1/description", s.handleServerDescription)
	r.Get("/management/v1/configureddevices", s.handleConfiguredDevices)

	// Device API
	r.Route("/api/v1/{deviceType}/{deviceNumber}/{action}", func(r chi.Router) {
		r.Get("/", s.handleDeviceRequest)
		r.Put("/", s.handleDeviceRequest)
	})

	return r
}
