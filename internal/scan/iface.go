package scan

import (
	nl80211 "github.com/mdlayher/wifi"
)

// DetectInterface returns the name of the first station-type wireless
// interface visible over nl80211.
func DetectInterface() (string, error) {
	client, err := nl80211.New()
	if err != nil {
		return "", NewSetupError("could not open nl80211 connection", err)
	}
	defer client.Close()

	ifaces, err := client.Interfaces()
	if err != nil {
		return "", NewSetupError("could not list wireless interfaces", err)
	}

	name, ok := pickStationInterface(ifaces)
	if !ok {
		return "", NewSetupError("no wireless station interface found", nil)
	}
	return name, nil
}

// pickStationInterface returns the first named station-type interface.
// Monitor, AP and P2P interfaces cannot run a client-side sweep.
func pickStationInterface(ifaces []*nl80211.Interface) (string, bool) {
	for _, ifi := range ifaces {
		if ifi == nil || ifi.Name == "" {
			continue
		}
		if ifi.Type == nl80211.InterfaceTypeStation {
			return ifi.Name, true
		}
	}
	return "", false
}
