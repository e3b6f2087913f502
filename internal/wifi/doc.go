// Package wifi holds the domain model for Wi-Fi survey results.
//
// The central type is AccessPoint, one scan result record describing a
// single access point observed during one sweep: identifier (SSID),
// signal strength (RSSI), primary channel, advertised authentication
// mode, and hardware address (BSSID). Records are transient: a scan
// backend produces a fresh batch each cycle and nothing in this package
// retains them.
//
// # Authentication Modes
//
// AuthMode enumerates the security protocols an access point can
// advertise. Label returns the short fixed-width table label for a mode:
//
//	wifi.AuthWPA2PSK.Label()    // "WPA2"
//	wifi.AuthWPAWPA2PSK.Label() // "WPA/WPA2"
//	wifi.AuthMode(99).Label()   // "UNK" (total over all values)
//
// # Hidden Networks
//
// Access points may beacon without an SSID. DisplaySSID maps any raw
// identifier buffer to a printable string, substituting "NONE" when the
// buffer is empty or starts with a NUL byte:
//
//	wifi.DisplaySSID([]byte("HomeNet")) // "HomeNet"
//	wifi.DisplaySSID(nil)               // "NONE"
//
// # Thread Safety
//
// Everything in this package is either an immutable value or a pure
// function; it is safe for concurrent use.
package wifi
