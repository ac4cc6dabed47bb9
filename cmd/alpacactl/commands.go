package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/astrogrid/alpaca-core/internal/client"
	"github.com/astrogrid/alpaca-core/internal/device"
	"github.com/astrogrid/alpaca-core/internal/discovery"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/config"
	"github.com/astrogrid/alpaca-core/internal/infrastructure/logging"
)

var (
	serverURL string
	timeout   time.Duration
	verbose   bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Alpaca server base URL (e.g. http://192.168.1.20:11111)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "per-command timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(putCmd)
}

// commandContext returns the deadline-bounded context for one command.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

// newClient builds the Alpaca client from the --server flag.
func newClient() (*client.Client, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("this command requires --server")
	}
	level := "error"
	if verbose {
		level = "debug"
	}
	log := logging.New(config.LoggingConfig{Level: level, Format: "text", Output: "stderr"}, version)
	return client.New(serverURL, defaultClientID, log)
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover Alpaca servers on the local network",
	Long: `Broadcast an Alpaca discovery request and print every server
that answers, one base URL per line.`,
	Args: cobra.NoArgs,
	RunE: runDiscover,
}

func runDiscover(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	endpoints, err := discovery.Discover(ctx, discovery.Options{Timeout: timeout})
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}
	if len(endpoints) == 0 {
		fmt.Println("no Alpaca servers found")
		return nil
	}
	for _, ep := range endpoints {
		fmt.Printf("http://%s\n", ep.Addr())
	}
	return nil
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server metadata",
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, _ []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	var (
		versions []int
		desc     client.ServerDescription
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		versions, err = c.APIVersions(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		desc, err = c.Description(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Server:       %s\n", desc.ServerName)
	fmt.Printf("Manufacturer: %s (%s)\n", desc.Manufacturer, desc.ManufacturerVersion)
	fmt.Printf("Location:     %s\n", desc.Location)
	fmt.Printf("API versions: %v\n", versions)
	return nil
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the server's configured devices",
	Args:  cobra.NoArgs,
	RunE:  runDevices,
}

func runDevices(cmd *cobra.Command, _ []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	devices, err := c.ConfiguredDevices(ctx)
	if err != nil {
		return err
	}
	for _, d := range devices {
		fmt.Printf("%-20s %d  %-24s %s\n", strings.ToLower(d.DeviceType), d.DeviceNumber, d.DeviceName, d.UniqueID)
	}
	return nil
}

var getCmd = &cobra.Command{
	Use:   "get <device-type> <device-number> <action>",
	Short: "Read a device property",
	Example: `  # Read the camera's sensor temperature
  alpacactl --server http://localhost:11111 get camera 0 ccdtemperature`,
	Args: cobra.ExactArgs(3),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	typ, number, action, err := parseDeviceAddress(args)
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	raw, err := c.Device(typ, number).Get(ctx, action)
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}

var putCmd = &cobra.Command{
	Use:   "put <device-type> <device-number> <action> [Name=value ...]",
	Short: "Write a device property or invoke an operation",
	Example: `  # Connect the telescope
  alpacactl --server http://localhost:11111 put telescope 0 connected Connected=true

  # Start a two second exposure
  alpacactl --server http://localhost:11111 put camera 0 startexposure Duration=2 Light=true`,
	Args: cobra.MinimumNArgs(3),
	RunE: runPut,
}

func runPut(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	typ, number, action, err := parseDeviceAddress(args[:3])
	if err != nil {
		return err
	}

	form := url.Values{}
	for _, pair := range args[3:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("parameter %q must be Name=value", pair)
		}
		form.Set(key, value)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()
	return c.Device(typ, number).Put(ctx, action, form)
}

// parseDeviceAddress parses "<type> <number> <action>" arguments.
func parseDeviceAddress(args []string) (device.Type, uint32, string, error) {
	typ, ok := device.ParseType(args[0])
	if !ok {
		return "", 0, "", fmt.Errorf("unknown device type %q", args[0])
	}
	number, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return "", 0, "", fmt.Errorf("device number %q: %w", args[1], err)
	}
	return typ, uint32(number), strings.ToLower(args[2]), nil
}
