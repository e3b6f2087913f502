// Package scan adapts the platform's Wi-Fi scan capability behind a
// blocking two-call driver contract.
//
// A Driver performs one synchronous sweep per Scan call and hands the
// resulting records back through Records as a ResultSet that the caller
// releases when reporting is done. Both calls fail hard: any error is
// fatal to the scan loop and there is no retry or degraded mode.
//
// # Backends
//
// The production backend is IWListDriver, which shells out to
// `iwlist <interface> scan` and parses its cell listing. The wireless
// interface is either configured explicitly or autodetected over
// nl80211 (the first station-type interface wins).
//
// # Startup
//
// Setup runs the ordered startup sequence and returns a ready driver:
//
//	drv, err := scan.Setup(scan.Options{Interface: ""})
//	if err != nil {
//	    return err // setup failures abort the program
//	}
//	if err := drv.Scan(ctx, scan.DefaultConfig()); err != nil {
//	    return err
//	}
//	set, err := drv.Records()
//	if err != nil {
//	    return err
//	}
//	defer set.Release()
//
// # Errors
//
// All failures are *DriverError values carrying a kind (setup, scan,
// parse) and the underlying cause. Use the Is*Error predicates or
// errors.As to classify them. No error is retryable.
package scan
