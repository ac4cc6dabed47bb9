// Package logging provides the structured logger used across alpacad.
//
// It wraps log/slog with level filtering, JSON or text output, and the
// default service/version fields, all driven by the logging section of
// the configuration.
package logging
