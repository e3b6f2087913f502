package scan

import (
	"context"
	"os/exec"
)

// Driver is the blocking two-call scan contract. Scan starts a sweep and
// returns when it completes; Records then yields the records that sweep
// produced. Failure of either call is unrecoverable for the caller.
type Driver interface {
	// Scan performs one blocking sweep with the given parameters.
	Scan(ctx context.Context, cfg Config) error

	// Records returns the records produced by the last completed sweep.
	Records() (*ResultSet, error)
}

// Options selects the backend inputs for Setup.
type Options struct {
	// Interface is the wireless interface to sweep. Empty means
	// autodetect over nl80211.
	Interface string
}

// Setup runs the ordered startup sequence and returns a ready driver.
// The steps run in a fixed order and the first failure aborts startup:
//
//  1. resolve the scan tool binary on PATH
//  2. resolve the wireless interface (explicit or autodetected)
func Setup(opts Options) (Driver, error) {
	path, err := exec.LookPath(iwlistBinary)
	if err != nil {
		return nil, NewSetupError("iwlist not found on PATH (install wireless-tools)", err)
	}

	iface := opts.Interface
	if iface == "" {
		iface, err = DetectInterface()
		if err != nil {
			return nil, err
		}
	}

	return &IWListDriver{Binary: path, Interface: iface}, nil
}
