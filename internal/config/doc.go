// Package config provides user configuration management for lanscan.
//
// This package manages a small YAML settings file holding the wireless
// interface to sweep and the default log level. The core scan loop needs
// no configuration; a missing file simply yields defaults.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/lanscan/config.yaml or $HOME/.config/lanscan/config.yaml
//   - macOS: $HOME/.config/lanscan/config.yaml
//   - Windows: %LOCALAPPDATA%\lanscan\config.yaml
//
// # Usage Example
//
//	settings, err := config.LoadSettings()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings.Interface = "wlp3s0"
//	if err := settings.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// Scan results are never written here; the file stores configuration only.
//
// # Thread Safety
//
// The global settings use sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
