// Package config loads and validates the alpacad configuration.
//
// Configuration is read from a YAML file, with hardcoded defaults
// underneath and environment variable overrides (ALPACA_SECTION_KEY)
// on top. Load returns a fully validated Config; nothing else in the
// process reads files or environment variables for settings.
package config
