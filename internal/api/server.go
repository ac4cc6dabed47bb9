package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/astrogrid/alpaca-core/internal/device"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/config"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/logging"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config   config.ServerConfig
	Logger   *logging.Logger
	Registry *device.Registry
	Version  string
}

// Server is the Alpaca HTTP server.
//
// It owns the listener, routes, and the server transaction counter. The
// server is created with New() and started with Start().
type Server struct {
	cfg      config.ServerConfig
	logger   *logging.Logger
	registry *device.Registry
	version  string

	// txnID is the monotonic ServerTransactionID source. The first
	// assigned transaction ID is 1; 0 never appears on the wire.
	txnID atomic.Uint32

	listener net.Listener
	server   *http.Server
}

// New creates a new API server with the given dependencies.
// The server does not listen until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Registry == nil {
		return nil, fmt.Errorf("device registry is required")
	}

	return &Server{
		cfg:      deps.Config,
		logger:   deps.Logger,
		registry: deps.Registry,
		version:  deps.Version,
	}, nil
}

// Start binds the listener and begins serving HTTP in a background
// goroutine.
//
// The bind happens synchronously so that callers can read Port() once
// Start returns; the discovery responder advertises that port and must
// not start before it exists.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("binding %s: %w", addr, err)
	}
	s.listener = listener

	s.server = &http.Server{
		Handler:           s.buildRouter(),
		ReadTimeout:       time.Duration(s.cfg.Timeouts.Read) * time.Second,
		ReadHeaderTimeout: time.Duration(s.cfg.Timeouts.Read) * time.Second,
		WriteTimeout:      time.Duration(s.cfg.Timeouts.Write) * time.Second,
		IdleTimeout:       time.Duration(s.cfg.Timeouts.Idle) * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		err := s.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("alpaca server error", "error", err)
		}
	}()

	s.logger.Info("alpaca server listening",
		"address", listener.Addr().String(),
		"devices", s.registry.Len(),
	)
	return nil
}

// Port returns the bound TCP port. Valid after Start.
func (s *Server) Port() int {
	if s.listener == nil {
		return 0
	}
	addr, ok := s.listener.Addr().(*net.TCPAddr)
	if !ok {
		return 0
	}
	return addr.Port
}

// Close gracefully shuts down the server, waiting up to 10 seconds for
// in-flight requests to complete.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("alpaca server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down alpaca server: %w", err)
	}
	return nil
}

// nextTransactionID allocates the next ServerTransactionID.
func (s *Server) nextTransactionID() uint32 {
	return s.txnID.Add(1)
}
