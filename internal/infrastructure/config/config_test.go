package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeConfig writes YAML content to a temp file and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "server:\n  name: Test Rig\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Name != "Test Rig" {
		t.Errorf("server.name = %q, want Test Rig", cfg.Server.Name)
	}
	if cfg.Server.Port != 11111 {
		t.Errorf("server.port default = %d, want 11111", cfg.Server.Port)
	}
	if cfg.Discovery.Port != 32227 {
		t.Errorf("discovery.port default = %d, want 32227", cfg.Discovery.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level default = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 8080\n")

	t.Setenv("ALPACA_SERVER_PORT", "9090")
	t.Setenv("ALPACA_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadParsesDevices(t *testing.T) {
	path := writeConfig(t, `
devices:
  - type: camera
    name: Sim Camera
    unique_id: cam-0001
  - type: telescope
    name: Sim Telescope
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(cfg.Devices))
	}
	if cfg.Devices[0].UniqueID != "cam-0001" {
		t.Errorf("devices[0].unique_id = %q, want cam-0001", cfg.Devices[0].UniqueID)
	}
	if cfg.Devices[1].UniqueID != "" {
		t.Errorf("devices[1].unique_id should be empty, got %q", cfg.Devices[1].UniqueID)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"zero read timeout", func(c *Config) { c.Server.Timeouts.Read = 0 }, "timeouts"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"discovery port out of range", func(c *Config) { c.Discovery.Port = 0 }, "discovery.port"},
		{"device missing type", func(c *Config) {
			c.Devices = []DeviceConfig{{Name: "nameless"}}
		}, "devices[0].type"},
		{"disabled discovery skips port check", func(c *Config) {
			c.Discovery.Enabled = false
			c.Discovery.Port = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
