// alpacad is the AstroGrid Alpaca device server.
//
// It exposes the configured devices over the ASCOM Alpaca HTTP protocol,
// answers UDP discovery broadcasts, and optionally advertises itself via
// mDNS. Device drivers are registered at startup from configuration; the
// built-in simulators back the default configuration.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/astrogrid/alpaca-core/internal/api"
	"github.com/astrogrid/alpaca-core/internal/device"
	"github.com/astrogrid/alpaca-core/internal/discovery"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/config"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/logging"
	"github.com/astrogrid/alpaca-core/internal/sim"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Returning an error allows main to handle exit codes
// consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting alpacad",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	registry, err := buildRegistry(cfg, log)
	if err != nil {
		return fmt.Errorf("building device registry: %w", err)
	}
	log.Info("device registry initialised", "devices", registry.Len())

	srv, err := api.New(api.Deps{
		Config:   cfg.Server,
		Logger:   log,
		Registry: registry,
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("creating alpaca server: %w", err)
	}
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("starting alpaca server: %w", err)
	}
	defer func() {
		if closeErr := srv.Close(); closeErr != nil {
			log.Error("error closing alpaca server", "error", closeErr)
		}
	}()

	// The discovery responder advertises the bound port, so it starts
	// only after the HTTP listener exists.
	if cfg.Discovery.Enabled {
		responder := discovery.NewResponder(cfg.Discovery, log, srv.Port())
		if err := responder.Start(ctx); err != nil {
			return fmt.Errorf("starting discovery responder: %w", err)
		}
		defer func() {
			log.Info("stopping discovery responder")
			if closeErr := responder.Close(); closeErr != nil {
				log.Error("error closing discovery responder", "error", closeErr)
			}
		}()
		log.Info("discovery responder started", "port", responder.Port())
	} else {
		log.Info("discovery responder disabled")
	}

	if cfg.Discovery.MDNS {
		advertiser, err := discovery.NewAdvertiser(cfg.Server.Name, srv.Port(), log)
		if err != nil {
			// mDNS is best-effort; discovery still works over UDP.
			log.Warn("mDNS advertising unavailable", "error", err)
		} else {
			defer advertiser.Close()
			log.Info("mDNS advertising started", "instance", cfg.Server.Name)
		}
	}

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")

	return nil
}

// buildRegistry registers the configured devices and freezes the
// registry before the server starts accepting requests.
func buildRegistry(cfg *config.Config, log *logging.Logger) (*device.Registry, error) {
	registry := device.NewRegistry()
	registry.SetLogger(log)

	for _, dc := range cfg.Devices {
		t, ok := device.ParseType(dc.Type)
		if !ok {
			return nil, fmt.Errorf("unknown device type %q", dc.Type)
		}

		driver, err := newSimDriver(t)
		if err != nil {
			return nil, fmt.Errorf("device %q: %w", dc.Name, err)
		}

		if _, err := registry.Register(t, dc.Name, dc.UniqueID, driver); err != nil {
			return nil, fmt.Errorf("registering %q: %w", dc.Name, err)
		}
	}

	registry.Freeze()
	return registry, nil
}

// newSimDriver creates the simulator backing a device category.
func newSimDriver(t device.Type) (device.Device, error) {
	switch t {
	case device.TypeCamera:
		return sim.NewCamera(), nil
	case device.TypeTelescope:
		return sim.NewTelescope(), nil
	default:
		return nil, fmt.Errorf("no simulator for device type %q", t)
	}
}

// getConfigPath returns the configuration file path.
// Uses ALPACA_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ALPACA_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
