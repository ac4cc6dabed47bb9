package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

// Endpoint is one discovered Alpaca server.
type Endpoint struct {
	// IP is the address the reply arrived from.
	IP net.IP
	// Port is the advertised Alpaca HTTP port.
	Port int
}

// Addr returns the endpoint as a host:port string suitable for an HTTP
// base URL.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.IP.String(), fmt.Sprintf("%d", e.Port))
}

// Options configures a discovery sweep.
type Options struct {
	// Port is the discovery UDP port. Zero means DefaultPort.
	Port int
	// Timeout is how long to collect replies. Zero means one second.
	Timeout time.Duration
	// Targets overrides the destination addresses. When empty, one
	// broadcast goes to the limited broadcast address and one to each
	// interface's directed broadcast address.
	Targets []*net.UDPAddr
}

// defaultTimeout is the reply collection window when none is given.
const defaultTimeout = time.Second

// Stream performs one discovery sweep: a single request datagram per
// target address, then a collection window for replies.
//
// Endpoints are delivered on the returned channel as they arrive,
// deduplicated by address. The channel closes when the window elapses
// or ctx is cancelled; the sequence is finite and cannot be restarted.
// Callers needing resilience against packet loss start a new sweep.
func Stream(ctx context.Context, opts Options) (<-chan Endpoint, error) {
	port := opts.Port
	if port == 0 {
		port = DefaultPort
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return nil, fmt.Errorf("binding discovery client socket: %w", err)
	}

	targets := opts.Targets
	if len(targets) == 0 {
		targets = broadcastTargets(port)
	}

	request := []byte(Magic)
	sent := 0
	for _, target := range targets {
		if _, err := conn.WriteToUDP(request, target); err == nil {
			sent++
		}
	}
	if sent == 0 {
		//nolint:errcheck // nothing more to do with the socket
		conn.Close()
		return nil, fmt.Errorf("discovery request could not be sent to any target")
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		//nolint:errcheck // nothing more to do with the socket
		conn.Close()
		return nil, fmt.Errorf("setting discovery deadline: %w", err)
	}

	// End the collection window early if the context is cancelled.
	stop := context.AfterFunc(ctx, func() {
		//nolint:errcheck // Close only fails if already closed
		conn.Close()
	})

	out := make(chan Endpoint)
	go func() {
		defer close(out)
		defer stop()
		//nolint:errcheck // Close only fails if already closed
		defer conn.Close()

		seen := make(map[string]bool)
		buf := make([]byte, maxDatagram)
		for {
			n, remote, err := conn.ReadFromUDP(buf)
			if err != nil {
				// Deadline expiry, cancellation, and transport failure
				// all just end the sequence.
				return
			}

			var r reply
			if err := json.Unmarshal(buf[:n], &r); err != nil || r.AlpacaPort <= 0 || r.AlpacaPort > 65535 {
				// Not a discovery reply; keep listening.
				continue
			}

			endpoint := Endpoint{IP: remote.IP, Port: r.AlpacaPort}
			if seen[endpoint.Addr()] {
				continue
			}
			seen[endpoint.Addr()] = true

			select {
			case out <- endpoint:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Discover runs one sweep and collects the whole sequence. Receiving
// nothing within the window is not an error; the slice is just empty.
// Cancelling ctx ends the sweep early with whatever has arrived, also
// without error: completion is always timeout-driven, never an expected
// response count, so an elapsed deadline is the normal way home.
func Discover(ctx context.Context, opts Options) ([]Endpoint, error) {
	stream, err := Stream(ctx, opts)
	if err != nil {
		return nil, err
	}
	var endpoints []Endpoint
	for endpoint := range stream {
		endpoints = append(endpoints, endpoint)
	}
	return endpoints, nil
}

// broadcastTargets builds the default send list: the limited broadcast
// address plus the directed broadcast address of every up, non-loopback
// IPv4 interface.
func broadcastTargets(port int) []*net.UDPAddr {
	targets := []*net.UDPAddr{{IP: net.IPv4bcast, Port: port}}

	ifaces, err := net.Interfaces()
	if err != nil {
		return targets
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			broadcast, ok := directedBroadcast(ipNet)
			if !ok {
				continue
			}
			targets = append(targets, &net.UDPAddr{IP: broadcast, Port: port})
		}
	}
	return targets
}

// directedBroadcast computes the directed broadcast address of an IPv4
// network. The mask may arrive in 16-byte form on some platforms even
// for IPv4 addresses, so both are normalized to 4 bytes first.
func directedBroadcast(ipNet *net.IPNet) (net.IP, bool) {
	ip4 := ipNet.IP.To4()
	if ip4 == nil {
		return nil, false
	}
	mask := ipNet.Mask
	if len(mask) == net.IPv6len {
		mask = mask[12:]
	}
	if len(mask) != net.IPv4len {
		return nil, false
	}
	broadcast := make(net.IP, net.IPv4len)
	for i := range broadcast {
		broadcast[i] = ip4[i] | ^mask[i]
	}
	return broadcast, true
}
