package api

import (
	"net/http"
)

// serverDescription is the management metadata payload.
type serverDescription struct {
	ServerName          string `json:"ServerName"`
	Manufacturer        string `json:"Manufacturer"`
	ManufacturerVersion string `json:"ManufacturerVersion"`
	Location            string `json:"Location"`
}

// configuredDevice is one registry entry as reported to management clients.
type configuredDevice struct {
	DeviceName   string `json:"DeviceName"`
	DeviceType   string `json:"DeviceType"`
	DeviceNumber uint32 `json:"DeviceNumber"`
	UniqueID     string `json:"UniqueID"`
}

// supportedAPIVersions lists the Alpaca API versions this server speaks.
var supportedAPIVersions = []int{1}

// managementTxn reads the client transaction ID and allocates a server one.
// Management endpoints use the same envelope as the device API.
func (s *Server) managementTxn(r *http.Request) (clientTxn, serverTxn uint32) {
	params, err := parseParams(r)
	if err != nil {
		return 0, s.nextTransactionID()
	}
	return params.ClientTransactionID(), s.nextTransactionID()
}

// handleAPIVersions serves GET /management/apiversions.
func (s *Server) handleAPIVersions(w http.ResponseWriter, r *http.Request) {
	clientTxn, serverTxn := s.managementTxn(r)
	writeValue(w, clientTxn, serverTxn, supportedAPIVersions)
}

// handleServerDescription serves GET /management/v1/description.
func (s *Server) handleServerDescription(w http.ResponseWriter, r *http.Request) {
	clientTxn, serverTxn := s.managementTxn(r)
	writeValue(w, clientTxn, serverTxn, serverDescription{
		ServerName:          s.cfg.Name,
		Manufacturer:        s.cfg.Manufacturer,
		ManufacturerVersion: s.version,
		Location:            s.cfg.Location,
	})
}

// handleConfiguredDevices serves GET /management/v1/configureddevices.
func (s *Server) handleConfiguredDevices(w http.ResponseWriter, r *http.Request) {
	clientTxn, serverTxn := s.managementTxn(r)

	entries := s.registry.List()
	devices := make([]configuredDevice, 0, len(entries))
	for _, entry := range entries {
		devices = append(devices, configuredDevice{
			DeviceName:   entry.Name,
			DeviceType:   entry.Type.DisplayName(),
			DeviceNumber: entry.Number,
			UniqueID:     entry.UniqueID,
		})
	}
	writeValue(w, clientTxn, serverTxn, devices)
}
