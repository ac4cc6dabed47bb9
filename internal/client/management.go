package client

import (
	"context"
)

// ServerDescription is the management metadata reported by a server.
type ServerDescription struct {
	ServerName          string `json:"ServerName"`
	Manufacturer        string `json:"Manufacturer"`
	ManufacturerVersion string `json:"ManufacturerVersion"`
	Location            string `json:"Location"`
}

// ConfiguredDevice is one device advertised by a server.
type ConfiguredDevice struct {
	DeviceName   string `json:"DeviceName"`
	DeviceType   string `json:"DeviceType"`
	DeviceNumber uint32 `json:"DeviceNumber"`
	UniqueID     string `json:"UniqueID"`
}

// APIVersions returns the Alpaca API versions the server speaks.
func (c *Client) APIVersions(ctx context.Context) ([]int, error) {
	var versions []int
	err := c.getInto(ctx, "/management/apiversions", &versions)
	return versions, err
}

// Description returns the server's management metadata.
func (c *Client) Description(ctx context.Context) (ServerDescription, error) {
	var desc ServerDescription
	err := c.getInto(ctx, "/management/v1/description", &desc)
	return desc, err
}

// ConfiguredDevices enumerates the server's devices.
func (c *Client) ConfiguredDevices(ctx context.Context) ([]ConfiguredDevice, error) {
	var devices []ConfiguredDevice
	err := c.getInto(ctx, "/management/v1/configureddevices", &devices)
	return devices, err
}
