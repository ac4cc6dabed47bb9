// Alpacactl is a command-line client for ASCOM Alpaca servers.
//
// It discovers servers on the local network, enumerates their devices,
// and reads or writes individual device properties over the Alpaca
// HTTP protocol.
//
// Usage:
//
//	alpacactl [command] [flags]
//
// See 'alpacactl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// defaultClientID identifies alpacactl sessions in server logs.
const defaultClientID = 4227

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "alpacactl",
	Short: "ASCOM Alpaca command-line client",
	Long: `A command-line client for ASCOM Alpaca device servers.

Discovers servers over UDP broadcast, enumerates their configured
devices, and reads or writes individual device properties.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
