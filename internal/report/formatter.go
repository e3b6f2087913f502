package report

import (
	"fmt"
	"strings"

	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/wifi"
)

// Separator bounds the table. Exactly 92 dashes, matching the fixed
// table width of 4+32+8+4+8+17 columns plus dividers.
const Separator = "--------------------------------------------------------------------------------------------"

const (
	headerFormat = " # | %-32s | %8s | %4s | %-8s | %s"
	rowFormat    = "%2d | %-32s | %4d dBm | %4d | %-8s | %s"
)

// FormatCount returns the count line, singular for exactly one network.
//
//	FormatCount(0) // "Found 0 networks"
//	FormatCount(1) // "Found 1 network"
//	FormatCount(3) // "Found 3 networks"
func FormatCount(n int) string {
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return fmt.Sprintf("Found %d network%s", n, plural)
}

// FormatHeader returns the column header row.
func FormatHeader() string {
	return fmt.Sprintf(headerFormat, "SSID", "RSSI", "CH", "AUTH", "BSSID")
}

// FormatRow returns one table row for the record at zero-based index i.
func FormatRow(i int, ap wifi.AccessPoint) string {
	return fmt.Sprintf(rowFormat,
		i,
		wifi.DisplaySSID(ap.SSID),
		ap.RSSI,
		ap.Channel,
		ap.Auth.Label(),
		ap.BSSIDString())
}

// FormatTable renders the complete per-cycle report: count line, framed
// column header, one row per record in input order, and a trailing blank
// line separating this cycle from the next.
func FormatTable(aps []wifi.AccessPoint) string {
	var b strings.Builder

	b.WriteString(FormatCount(len(aps)))
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')
	b.WriteString(FormatHeader())
	b.WriteByte('\n')
	b.WriteString(Separator)
	b.WriteByte('\n')

	for i, ap := range aps {
		b.WriteString(FormatRow(i, ap))
		b.WriteByte('\n')
	}

	b.WriteString(Separator)
	b.WriteString("\n\n")

	return b.String()
}
