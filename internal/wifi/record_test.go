package wifi

import "testing"

func TestDisplaySSID(t *testing.T) {
	tests := []struct {
		name string
		ssid []byte
		want string
	}{
		{
			name: "normal ssid",
			ssid: []byte("HomeNet"),
			want: "HomeNet",
		},
		{
			name: "nil buffer",
			ssid: nil,
			want: "NONE",
		},
		{
			name: "empty buffer",
			ssid: []byte{},
			want: "NONE",
		},
		{
			name: "leading NUL",
			ssid: []byte{0, 'x', 'y'},
			want: "NONE",
		},
		{
			name: "NUL padded",
			ssid: append([]byte("Cafe"), 0, 0, 0),
			want: "Cafe",
		},
		{
			name: "single byte",
			ssid: []byte{'A'},
			want: "A",
		},
		{
			name: "spaces preserved",
			ssid: []byte("Guest WiFi"),
			want: "Guest WiFi",
		},
		{
			name: "max length",
			ssid: []byte("abcdefghijklmnopqrstuvwxyz123456"),
			want: "abcdefghijklmnopqrstuvwxyz123456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplaySSID(tt.ssid); got != tt.want {
				t.Errorf("DisplaySSID(%q) = %q, want %q", tt.ssid, got, tt.want)
			}
		})
	}
}

func TestAccessPointHidden(t *testing.T) {
	tests := []struct {
		name string
		ap   AccessPoint
		want bool
	}{
		{
			name: "named network",
			ap:   AccessPoint{SSID: []byte("TestNet")},
			want: false,
		},
		{
			name: "nil ssid",
			ap:   AccessPoint{},
			want: true,
		},
		{
			name: "zero first byte",
			ap:   AccessPoint{SSID: []byte{0}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ap.Hidden(); got != tt.want {
				t.Errorf("Hidden() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccessPointBSSIDString(t *testing.T) {
	tests := []struct {
		name  string
		bssid [6]byte
		want  string
	}{
		{
			name:  "mixed octets",
			bssid: [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
			want:  "11:22:33:44:55:66",
		},
		{
			name:  "uppercase hex",
			bssid: [6]byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF},
			want:  "AA:BB:CC:DD:EE:FF",
		},
		{
			name:  "zero padded",
			bssid: [6]byte{0x00, 0x0A, 0x01, 0x00, 0xF0, 0x05},
			want:  "00:0A:01:00:F0:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := AccessPoint{BSSID: tt.bssid}
			if got := ap.BSSIDString(); got != tt.want {
				t.Errorf("BSSIDString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAccessPointString(t *testing.T) {
	ap := AccessPoint{
		SSID:    []byte("TestNet"),
		RSSI:    -40,
		Channel: 6,
		Auth:    AuthWPA2PSK,
		BSSID:   [6]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66},
	}

	want := "TestNet (WPA2) ch 6, -40 dBm, 11:22:33:44:55:66"
	if got := ap.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
