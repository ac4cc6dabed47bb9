// Package sim provides simulated device drivers.
//
// The simulators implement the device capability interfaces with
// plausible in-memory behaviour: the camera runs a timed exposure state
// machine and produces synthetic frames, the telescope slews and tracks.
// They back the default configuration so a freshly built server is
// immediately usable by real Alpaca clients, and they are the drivers
// the integration tests run against.
package sim
