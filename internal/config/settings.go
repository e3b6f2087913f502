package config

// Settings represents the entire user configuration file.
type Settings struct {
	Version   int    `yaml:"version"`
	Interface string `yaml:"interface,omitempty"` // wireless interface to sweep; empty means autodetect
	LogLevel  string `yaml:"log_level,omitempty"` // debug, info, warn or error; empty means silent
}

// NewSettings creates Settings with default values: autodetected
// interface, silent logging.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
	}
}
