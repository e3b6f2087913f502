// Package report renders scan results as the fixed-width survey table.
//
// The table layout is stable and machine-checkable: a count line with a
// pluralized noun, 92-dash separator lines, a column header, and one row
// per access point in scan order. Widths and punctuation never vary with
// content; hidden networks render as "NONE" and unclassifiable
// authentication modes as "UNK".
//
//	Found 2 networks
//	----------------------------------- ...
//	 # | SSID                             |     RSSI |   CH | AUTH     | BSSID
//	----------------------------------- ...
//	 0 | TestNet                          |  -40 dBm |    6 | WPA2     | 11:22:33:44:55:66
//	 1 | NONE                             |  -80 dBm |   11 | OPEN     | AA:BB:CC:DD:EE:FF
//	----------------------------------- ...
//
// Rows keep the order the scan backend returned; this package never sorts.
package report
