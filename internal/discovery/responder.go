package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"github.com/astrogrid/alpaca-core/internal/infrastructure/config"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/logging"
)

// Magic is the discovery request payload. Datagrams that do not begin
// with it are silently ignored.
const Magic = "alpacadiscovery1"

// DefaultPort is the Alpaca discovery UDP port.
const DefaultPort = 32227

// maxDatagram bounds a discovery read. Valid requests are 16 bytes; the
// slack tolerates clients that append version suffixes.
const maxDatagram = 64

// reply is the JSON answer sent to each discovery request.
type reply struct {
	AlpacaPort int `json:"AlpacaPort"`
}

// Responder answers Alpaca discovery broadcasts with this server's HTTP
// port. Start it only after the HTTP listener is bound, so every reply
// names a port that accepts connections.
type Responder struct {
	cfg        config.DiscoveryConfig
	logger     *logging.Logger
	alpacaPort int

	conn *net.UDPConn
	done chan struct{}
}

// NewResponder creates a discovery responder advertising alpacaPort.
func NewResponder(cfg config.DiscoveryConfig, logger *logging.Logger, alpacaPort int) *Responder {
	return &Responder{
		cfg:        cfg,
		logger:     logger.With("component", "discovery"),
		alpacaPort: alpacaPort,
	}
}

// Start binds the discovery port and begins answering in a background
// goroutine. The goroutine runs until Close or until ctx is cancelled.
func (r *Responder) Start(ctx context.Context) error {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: r.cfg.Port})
	if err != nil {
		return fmt.Errorf("binding discovery port %d: %w", r.cfg.Port, err)
	}
	r.conn = conn
	r.done = make(chan struct{})

	go func() {
		<-ctx.Done()
		//nolint:errcheck // Close only fails if already closed
		conn.Close()
	}()
	go r.serve()

	r.logger.Info("discovery responder listening",
		"port", r.Port(),
		"alpaca_port", r.alpacaPort,
	)
	return nil
}

// Port returns the bound UDP port. Valid after Start.
func (r *Responder) Port() int {
	if r.conn == nil {
		return 0
	}
	addr, ok := r.conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return 0
	}
	return addr.Port
}

// Close stops the responder and waits for the serve loop to exit.
func (r *Responder) Close() error {
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close()
	<-r.done
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// serve answers discovery datagrams until the socket closes.
//
// Anything that is not a well-formed request is dropped without reply;
// the protocol has no error responses and a responder must never be a
// traffic amplifier for junk.
func (r *Responder) serve() {
	defer close(r.done)

	answer, err := json.Marshal(reply{AlpacaPort: r.alpacaPort})
	if err != nil {
		r.logger.Error("marshalling discovery reply", "error", err)
		return
	}

	buf := make([]byte, maxDatagram)
	for {
		n, remote, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				r.logger.Error("discovery read failed", "error", err)
			}
			return
		}
		if !bytes.HasPrefix(buf[:n], []byte(Magic)) {
			continue
		}

		if _, err := r.conn.WriteToUDP(answer, remote); err != nil {
			r.logger.Warn("discovery reply failed", "remote", remote.String(), "error", err)
			continue
		}
		r.logger.Debug("discovery request answered", "remote", remote.String())
	}
}
