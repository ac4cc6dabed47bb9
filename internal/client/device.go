package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/astrogrid/alpaca-core/internal/device"
)

// Device binds a Client to one device address and exposes the common
// operations every category shares.
type Device struct {
	client *Client
	typ    device.Type
	number uint32
}

// Device returns a handle for the given device address. The address is
// not validated here; an unconfigured device surfaces as a transport
// error on first use.
func (c *Client) Device(typ device.Type, number uint32) *Device {
	return &Device{client: c, typ: typ, number: number}
}

// path builds the API route for one action on this device.
func (d *Device) path(action string) string {
	return fmt.Sprintf("/api/v1/%s/%d/%s", d.typ, d.number, action)
}

func (d *Device) getBool(ctx context.Context, action string) (bool, error) {
	var v bool
	err := d.client.getInto(ctx, d.path(action), &v)
	return v, err
}

func (d *Device) getInt32(ctx context.Context, action string) (int32, error) {
	var v int32
	err := d.client.getInto(ctx, d.path(action), &v)
	return v, err
}

func (d *Device) getFloat64(ctx context.Context, action string) (float64, error) {
	var v float64
	err := d.client.getInto(ctx, d.path(action), &v)
	return v, err
}

func (d *Device) getString(ctx context.Context, action string) (string, error) {
	var v string
	err := d.client.getInto(ctx, d.path(action), &v)
	return v, err
}

func (d *Device) put(ctx context.Context, action string, form url.Values) error {
	return d.client.put(ctx, d.path(action), form)
}

// Connected reports the device's connection state.
func (d *Device) Connected(ctx context.Context) (bool, error) {
	return d.getBool(ctx, "connected")
}

// SetConnected establishes or tears down the hardware link.
func (d *Device) SetConnected(ctx context.Context, connected bool) error {
	return d.put(ctx, "connected", url.Values{"Connected": {formatBool(connected)}})
}

// Name returns the device's display name.
func (d *Device) Name(ctx context.Context) (string, error) {
	return d.getString(ctx, "name")
}

// Description describes the device.
func (d *Device) Description(ctx context.Context) (string, error) {
	return d.getString(ctx, "description")
}

// DriverInfo describes the driver.
func (d *Device) DriverInfo(ctx context.Context) (string, error) {
	return d.getString(ctx, "driverinfo")
}

// DriverVersion returns the driver's version string.
func (d *Device) DriverVersion(ctx context.Context) (string, error) {
	return d.getString(ctx, "driverversion")
}

// InterfaceVersion returns the category interface version.
func (d *Device) InterfaceVersion(ctx context.Context) (int32, error) {
	return d.getInt32(ctx, "interfaceversion")
}

// SupportedActions lists the driver's custom action names.
func (d *Device) SupportedActions(ctx context.Context) ([]string, error) {
	var v []string
	err := d.client.getInto(ctx, d.path("supportedactions"), &v)
	return v, err
}

// Action invokes a driver-specific extension action and returns its
// string result.
func (d *Device) Action(ctx context.Context, action, parameters string) (string, error) {
	form := url.Values{"Action": {action}, "Parameters": {parameters}}
	raw, err := d.client.putValue(ctx, d.path("action"), form)
	if err != nil {
		return "", err
	}
	var result string
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("decoding action result: %w", err)
	}
	return result, nil
}

// Get performs a raw getter for any action on this device and returns
// the undecoded Value. Tooling that works with arbitrary properties
// uses this instead of the typed accessors.
func (d *Device) Get(ctx context.Context, action string) (json.RawMessage, error) {
	return d.client.get(ctx, d.path(action))
}

// Put performs a raw setter for any action on this device with the
// given form parameters.
func (d *Device) Put(ctx context.Context, action string, form url.Values) error {
	return d.client.put(ctx, d.path(action), form)
}

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}
