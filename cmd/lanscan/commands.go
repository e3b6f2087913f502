package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/config"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/logging"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/monitor"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/scan"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/tui"
)

// Survey command flags
var (
	ifaceName string
	verbose   bool
)

func init() {
	// Common flags for all survey commands (persistent on root)
	rootCmd.PersistentFlags().StringVar(&ifaceName, "interface", "", "Wireless interface to scan (default: autodetect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands directly to root
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)
}

// setupDriver loads settings, wires logging, and prepares the scan driver.
// The interface resolves in order: --interface flag, settings file,
// autodetection inside scan.Setup.
func setupDriver() (scan.Driver, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	initLogging(settings)

	iface := ifaceName
	if iface == "" {
		iface = settings.Interface
	}

	return scan.Setup(scan.Options{Interface: iface})
}

// initLogging wires the logger, silent unless asked: the --verbose flag
// wins, then the LANSCAN_LOG_LEVEL environment variable, then the settings
// file.
func initLogging(settings *config.Settings) {
	switch {
	case verbose:
		if err := logging.Initialize("debug"); err != nil {
			// Ignore error, GetLogger will create fallback logger
			_ = err
		}
	case os.Getenv(logging.LogLevelEnvVar) != "":
		if err := logging.InitializeFromEnv(); err != nil {
			_ = err
		}
	case settings.LogLevel != "":
		if err := logging.Initialize(settings.LogLevel); err != nil {
			_ = err
		}
	}
}

// runLoop implements the default invocation: sweep forever, one table every
// three seconds, until interrupted or a sweep fails
func runLoop(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	driver, err := setupDriver()
	if err != nil {
		return err
	}

	loop := monitor.NewLoop(driver, monitor.Config{
		Scan: scan.DefaultConfig(),
	}, logging.GetLogger())

	return loop.Run(context.Background())
}

// scanCmd runs exactly one survey cycle
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a single Wi-Fi sweep and print the table",
	Long: `Run exactly one survey cycle: sweep all channels, print the table, exit.

The output is the same fixed-width table the endless loop prints, which
makes this the right command for scripts and snapshots.`,
	Example: `  # One sweep on the autodetected interface
  lanscan scan

  # One sweep on a specific interface
  lanscan scan --interface wlan0

  # Snapshot to a file
  lanscan scan > networks.txt`,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	driver, err := setupDriver()
	if err != nil {
		return err
	}

	loop := monitor.NewLoop(driver, monitor.Config{
		Scan:   scan.DefaultConfig(),
		Cycles: 1,
	}, logging.GetLogger())

	return loop.Run(context.Background())
}

// watchCmd launches the interactive live view
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Launch the interactive live survey view",
	Long: `Launch a full-screen live view of nearby Wi-Fi networks.

The view runs the same three-second sweep cycle as the plain loop and keeps
the latest table on screen with a countdown to the next sweep. Press s to
sweep immediately, q to quit.

Requires an interactive terminal; use 'lanscan' or 'lanscan scan' for plain
output.`,
	Example: `  # Live view on the autodetected interface
  lanscan watch

  # Live view on a specific interface
  lanscan watch --interface wlan0`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	if !tui.IsTerminal() {
		return fmt.Errorf("watch requires an interactive terminal; use 'lanscan scan' for plain output")
	}

	driver, err := setupDriver()
	if err != nil {
		return err
	}

	model := tui.NewModel(driver, scan.DefaultConfig(), monitor.DefaultInterval)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("watch error: %w", err)
	}

	// A sweep failure quits the program; report it after the screen closes.
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}
