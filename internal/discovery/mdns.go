package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"

	"github.com/astrogrid/alpaca-core/internal/infrastructure/logging"
)

const (
	// MDNSServiceType is the DNS-SD service type for Alpaca servers.
	MDNSServiceType = "_alpaca._tcp"

	// MDNSDomain is the mDNS domain (typically "local.").
	MDNSDomain = "local."
)

// Advertiser announces the Alpaca HTTP endpoint over mDNS for clients
// that browse DNS-SD instead of sending UDP discovery broadcasts.
type Advertiser struct {
	logger *logging.Logger
	server *zeroconf.Server
}

// NewAdvertiser registers the mDNS service announcing alpacaPort under
// the given instance name.
func NewAdvertiser(instance string, alpacaPort int, logger *logging.Logger) (*Advertiser, error) {
	server, err := zeroconf.Register(
		instance,
		MDNSServiceType,
		MDNSDomain,
		alpacaPort,
		[]string{fmt.Sprintf("AlpacaPort=%d", alpacaPort)},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("registering mDNS service: %w", err)
	}

	logger.With("component", "mdns").Info("mdns service registered",
		"instance", instance,
		"type", MDNSServiceType,
		"port", alpacaPort,
	)
	return &Advertiser{
		logger: logger.With("component", "mdns"),
		server: server,
	}, nil
}

// Close withdraws the mDNS announcement.
func (a *Advertiser) Close() {
	a.server.Shutdown()
	a.logger.Info("mdns service withdrawn")
}
