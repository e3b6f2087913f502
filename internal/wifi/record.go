package wifi

import (
	"bytes"
	"fmt"
)

// MaxSSIDLen is the longest identifier an access point can beacon, in bytes.
const MaxSSIDLen = 32

// HiddenPlaceholder is substituted for the SSID of hidden networks.
const HiddenPlaceholder = "NONE"

// AccessPoint is one scan result record: a single access point observed
// during one sweep. Records are produced fresh each cycle and must not
// be retained across cycles.
type AccessPoint struct {
	// SSID is the raw identifier label, up to MaxSSIDLen bytes.
	// Empty or NUL-leading means the network hides its identifier.
	SSID []byte

	// RSSI is the received signal strength in dBm; more negative is weaker.
	RSSI int

	// Channel is the primary channel the beacon was observed on.
	Channel int

	// Auth is the advertised authentication mode.
	Auth AuthMode

	// BSSID is the 6-byte hardware address of the access point's radio.
	BSSID [6]byte
}

// Hidden reports whether the access point beacons without an SSID.
func (ap AccessPoint) Hidden() bool {
	return len(ap.SSID) == 0 || ap.SSID[0] == 0
}

// BSSIDString renders the hardware address as six colon-separated
// uppercase hex octets, e.g. "AA:BB:CC:DD:EE:FF".
func (ap AccessPoint) BSSIDString() string {
	b := ap.BSSID
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}

// String returns a one-line summary for logs.
func (ap AccessPoint) String() string {
	return fmt.Sprintf("%s (%s) ch %d, %d dBm, %s",
		DisplaySSID(ap.SSID), ap.Auth.Label(), ap.Channel, ap.RSSI, ap.BSSIDString())
}

// DisplaySSID returns the identifier buffer as a printable string, or
// HiddenPlaceholder when the first byte is zero (including empty and nil
// buffers). Content after an embedded NUL is not rendered.
func DisplaySSID(ssid []byte) string {
	if len(ssid) == 0 || ssid[0] == 0 {
		return HiddenPlaceholder
	}
	if i := bytes.IndexByte(ssid, 0); i >= 0 {
		return string(ssid[:i])
	}
	return string(ssid)
}
