package wifi

// AuthMode is the authentication mode an access point advertises for
// client association.
type AuthMode int

// Recognized authentication modes, in ascending order of protocol age.
const (
	// AuthOpen is an open network with no authentication.
	AuthOpen AuthMode = iota

	// AuthWEP is legacy WEP encryption.
	AuthWEP

	// AuthWPAPSK is WPA (version 1) with a pre-shared key.
	AuthWPAPSK

	// AuthWPA2PSK is WPA2 with a pre-shared key.
	AuthWPA2PSK

	// AuthWPAWPA2PSK is mixed WPA/WPA2 pre-shared key mode.
	AuthWPAWPA2PSK

	// AuthWPA2Enterprise is WPA2 with 802.1X authentication.
	AuthWPA2Enterprise

	// AuthWPA3PSK is WPA3 SAE ("personal") mode.
	AuthWPA3PSK

	// AuthWPA2WPA3PSK is WPA3 transition mode (WPA2 and WPA3 both accepted).
	AuthWPA2WPA3PSK

	// AuthUnknown is anything the scan backend could not classify.
	AuthUnknown
)

// Label returns the short display label used in the report table.
// It is total: values outside the recognized set map to "UNK".
func (m AuthMode) Label() string {
	switch m {
	case AuthOpen:
		return "OPEN"
	case AuthWEP:
		return "WEP"
	case AuthWPAPSK:
		return "WPA"
	case AuthWPA2PSK:
		return "WPA2"
	case AuthWPAWPA2PSK:
		return "WPA/WPA2"
	case AuthWPA2Enterprise:
		return "WPA2-E"
	case AuthWPA3PSK:
		return "WPA3"
	case AuthWPA2WPA3PSK:
		return "WPA2/3"
	default:
		return "UNK"
	}
}

// String returns a long-form name for logs and errors.
func (m AuthMode) String() string {
	switch m {
	case AuthOpen:
		return "open"
	case AuthWEP:
		return "wep"
	case AuthWPAPSK:
		return "wpa-psk"
	case AuthWPA2PSK:
		return "wpa2-psk"
	case AuthWPAWPA2PSK:
		return "wpa-wpa2-psk"
	case AuthWPA2Enterprise:
		return "wpa2-enterprise"
	case AuthWPA3PSK:
		return "wpa3-psk"
	case AuthWPA2WPA3PSK:
		return "wpa2-wpa3-psk"
	default:
		return "unknown"
	}
}
