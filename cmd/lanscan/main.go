// Lanscan is a command-line survey tool for nearby Wi-Fi networks.
//
// It drives the system's wireless scanning facilities (wireless-tools'
// iwlist) in a fixed three-second loop and prints one table of visible
// access points per sweep: SSID, signal strength, channel, authentication
// mode, and BSSID.
//
// Usage:
//
//	lanscan [command] [flags]
//
// Running without arguments starts the endless survey loop.
// See 'lanscan --help' for available commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/scan"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// Driver failures carry actionable advice; print it below the error.
		var drvErr *scan.DriverError
		if errors.As(err, &drvErr) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, scan.GetTroubleshootingHint(err))
		}

		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanscan",
	Short: "Wi-Fi Network Survey Utility",
	Long: `An endless survey loop for nearby Wi-Fi networks.

Sweeps all channels every three seconds using the system's wireless-tools
(iwlist) and prints a fixed-width table of visible access points: SSID,
signal strength, channel, authentication mode, and BSSID.

If no command is specified, the survey loop starts immediately and runs
until interrupted. Any scan failure ends the loop.`,
	Version:       version.Version,
	SilenceErrors: true, // main prints the error once
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the survey loop when no subcommand provided
		return runLoop(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lanscan %s\n", version.Full())
	},
}
