package scan

import (
	"testing"

	nl80211 "github.com/mdlayher/wifi"
)

func TestPickStationInterface(t *testing.T) {
	tests := []struct {
		name   string
		ifaces []*nl80211.Interface
		want   string
		wantOK bool
	}{
		{
			name: "single station",
			ifaces: []*nl80211.Interface{
				{Name: "wlan0", Type: nl80211.InterfaceTypeStation},
			},
			want:   "wlan0",
			wantOK: true,
		},
		{
			name: "first station wins",
			ifaces: []*nl80211.Interface{
				{Name: "wlan0", Type: nl80211.InterfaceTypeStation},
				{Name: "wlan1", Type: nl80211.InterfaceTypeStation},
			},
			want:   "wlan0",
			wantOK: true,
		},
		{
			name: "skips non-station types",
			ifaces: []*nl80211.Interface{
				{Name: "mon0", Type: nl80211.InterfaceTypeMonitor},
				{Name: "ap0", Type: nl80211.InterfaceTypeAP},
				{Name: "wlp3s0", Type: nl80211.InterfaceTypeStation},
			},
			want:   "wlp3s0",
			wantOK: true,
		},
		{
			name: "skips nil and unnamed entries",
			ifaces: []*nl80211.Interface{
				nil,
				{Name: "", Type: nl80211.InterfaceTypeStation},
				{Name: "wlan0", Type: nl80211.InterfaceTypeStation},
			},
			want:   "wlan0",
			wantOK: true,
		},
		{
			name: "no station interface",
			ifaces: []*nl80211.Interface{
				{Name: "mon0", Type: nl80211.InterfaceTypeMonitor},
			},
			wantOK: false,
		},
		{
			name:   "empty list",
			ifaces: nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pickStationInterface(tt.ifaces)
			if ok != tt.wantOK {
				t.Fatalf("pickStationInterface() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("pickStationInterface() = %q, want %q", got, tt.want)
			}
		})
	}
}
