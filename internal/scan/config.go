package scan

import "time"

// AllChannels selects a full sweep over every channel the regulatory
// domain allows, rather than a single channel.
const AllChannels = 0

// Default per-channel dwell bounds for an active sweep.
const (
	DefaultDwellMin = 100 * time.Millisecond
	DefaultDwellMax = 200 * time.Millisecond
)

// Config carries the sweep parameters for one scan cycle.
type Config struct {
	Channel       int           // channel to sweep; AllChannels sweeps everything
	IncludeHidden bool          // report networks that withhold their SSID
	Active        bool          // send probe requests instead of listening passively
	DwellMin      time.Duration // minimum per-channel listen time
	DwellMax      time.Duration // maximum per-channel listen time
}

// DefaultConfig returns the standard full sweep: every channel, hidden
// networks included, active probing, 100-200 ms per channel.
func DefaultConfig() Config {
	return Config{
		Channel:       AllChannels,
		IncludeHidden: true,
		Active:        true,
		DwellMin:      DefaultDwellMin,
		DwellMax:      DefaultDwellMax,
	}
}
