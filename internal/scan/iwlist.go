package scan

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/wifi"
)

const iwlistBinary = "iwlist"

// Cell field patterns, one per concern. SAE suites print as "unknown (8)"
// under wireless-tools that predate the WPA3 suite names.
var (
	addressRegex     = regexp.MustCompile(`Address: ([0-9A-Fa-f:]+)`)
	essidRegex       = regexp.MustCompile(`ESSID:"(.*)"`)
	channelRegex     = regexp.MustCompile(`Channel:(\d+)`)
	freqChannelRegex = regexp.MustCompile(`\(Channel (\d+)\)`)
	signalRegex      = regexp.MustCompile(`Signal level=(-?\d+) dBm`)
	encryptionRegex  = regexp.MustCompile(`Encryption key:(on|off)`)
	wpaIERegex       = regexp.MustCompile(`IE: WPA Version 1`)
	rsnIERegex       = regexp.MustCompile(`IE: IEEE 802\.11i/WPA2 Version 1`)
	authSuitesRegex  = regexp.MustCompile(`Authentication Suites \(\d+\) : (.+)`)
)

var _ Driver = &IWListDriver{}

// IWListDriver sweeps by shelling out to `iwlist <interface> scan`. Scan
// runs the command and holds its raw output; Records parses that output
// into access-point records.
//
// iwlist always performs an active full sweep that reports hidden cells,
// so Config narrows rather than drives it: IncludeHidden=false filters
// hidden records out of Records, a non-zero Channel is rejected, and the
// dwell bounds are advisory.
type IWListDriver struct {
	Binary    string // resolved iwlist path; bare "iwlist" when empty
	Interface string // wireless interface to sweep

	lastOutput string
	lastCfg    Config
	scanned    bool
}

// Scan runs one blocking sweep and captures the cell listing.
func (d *IWListDriver) Scan(ctx context.Context, cfg Config) error {
	if cfg.Channel != AllChannels {
		return &DriverError{
			Kind:      ErrKindScan,
			Message:   fmt.Sprintf("the iwlist backend cannot sweep a single channel (%d requested)", cfg.Channel),
			Interface: d.Interface,
		}
	}

	binary := d.Binary
	if binary == "" {
		binary = iwlistBinary
	}

	cmd := exec.CommandContext(ctx, binary, d.Interface, "scan")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		d.lastOutput = ""
		d.scanned = false

		msg := fmt.Sprintf("iwlist scan on %s failed", d.Interface)
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			msg = fmt.Sprintf("%s: %s", msg, detail)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg = fmt.Sprintf("%s (exit code %d)", msg, exitErr.ExitCode())
		}
		return &DriverError{
			Kind:      ErrKindScan,
			Message:   msg,
			Interface: d.Interface,
			Err:       err,
		}
	}

	d.lastOutput = stdout.String()
	d.lastCfg = cfg
	d.scanned = true
	return nil
}

// Records parses the output of the last completed sweep.
func (d *IWListDriver) Records() (*ResultSet, error) {
	if !d.scanned {
		return nil, NewScanError("no completed sweep to read records from", nil)
	}

	records, err := ParseIWListOutput(d.lastOutput)
	if err != nil {
		return nil, err
	}

	if !d.lastCfg.IncludeHidden {
		kept := records[:0]
		for _, ap := range records {
			if !ap.Hidden() {
				kept = append(kept, ap)
			}
		}
		records = kept
	}

	return NewResultSet(records), nil
}

// ParseIWListOutput converts an `iwlist <interface> scan` cell listing
// into access-point records, preserving cell order. Cells missing a
// required field (address, channel, signal) are skipped. The error is
// non-nil only when the output as a whole is not an iwlist scan listing.
func ParseIWListOutput(output string) ([]wifi.AccessPoint, error) {
	if !strings.Contains(output, "Cell ") &&
		!strings.Contains(output, "Scan completed") &&
		!strings.Contains(output, "No scan results") {
		return nil, NewParseError("output is not an iwlist scan listing", nil)
	}

	var records []wifi.AccessPoint
	cells := strings.Split(output, "Cell ")

	for _, cell := range cells {
		if ap, ok := parseCell(cell); ok {
			records = append(records, ap)
		}
	}

	return records, nil
}

// parseCell extracts one record from one cell chunk. ok is false when
// the chunk lacks a required field; the chunk before the first cell (the
// "Scan completed" banner) always fails this way.
func parseCell(cell string) (wifi.AccessPoint, bool) {
	var ap wifi.AccessPoint

	addr := addressRegex.FindStringSubmatch(cell)
	if addr == nil {
		return ap, false
	}
	mac, err := net.ParseMAC(addr[1])
	if err != nil || len(mac) != len(ap.BSSID) {
		return ap, false
	}
	copy(ap.BSSID[:], mac)

	ch := channelRegex.FindStringSubmatch(cell)
	if ch == nil {
		// Some drivers omit the Channel line; the frequency line
		// still carries it as "(Channel N)".
		ch = freqChannelRegex.FindStringSubmatch(cell)
	}
	if ch == nil {
		return ap, false
	}
	channel, err := strconv.Atoi(ch[1])
	if err != nil {
		return ap, false
	}
	ap.Channel = channel

	sig := signalRegex.FindStringSubmatch(cell)
	if sig == nil {
		return ap, false
	}
	level, err := strconv.Atoi(sig[1])
	if err != nil {
		return ap, false
	}
	ap.RSSI = level

	if essid := essidRegex.FindStringSubmatch(cell); essid != nil {
		ssid := decodeESSID(essid[1])
		if len(ssid) > wifi.MaxSSIDLen {
			ssid = ssid[:wifi.MaxSSIDLen]
		}
		if !allZero(ssid) {
			ap.SSID = ssid
		}
	}

	ap.Auth = deriveAuthMode(cell)
	return ap, true
}

// decodeESSID reverses iwlist's escaping of non-printable identifier
// bytes, which renders each as \xNN.
func decodeESSID(s string) []byte {
	if !strings.Contains(s, `\x`) {
		return []byte(s)
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x' {
			if b, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
				out = append(out, byte(b))
				i += 4
				continue
			}
		}
		out = append(out, s[i])
		i++
	}
	return out
}

// allZero reports whether every byte is NUL. Hidden networks beacon
// their identifier as NUL padding of the advertised length.
func allZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}

// deriveAuthMode classifies a cell from its encryption flag and security
// information elements.
func deriveAuthMode(cell string) wifi.AuthMode {
	enc := encryptionRegex.FindStringSubmatch(cell)
	if enc == nil || enc[1] != "on" {
		return wifi.AuthOpen
	}

	hasWPA := wpaIERegex.MatchString(cell)
	hasRSN := rsnIERegex.MatchString(cell)

	var suites []string
	for _, m := range authSuitesRegex.FindAllStringSubmatch(cell, -1) {
		suites = append(suites, m[1])
	}
	all := strings.Join(suites, " ")
	hasPSK := strings.Contains(all, "PSK")
	hasSAE := strings.Contains(all, "SAE") || strings.Contains(all, "unknown (8)")
	hasEnterprise := strings.Contains(all, "802.1x")

	switch {
	case hasWPA && hasRSN:
		return wifi.AuthWPAWPA2PSK
	case hasRSN && hasSAE && hasPSK:
		return wifi.AuthWPA2WPA3PSK
	case hasRSN && hasSAE:
		return wifi.AuthWPA3PSK
	case hasRSN && hasEnterprise:
		return wifi.AuthWPA2Enterprise
	case hasRSN:
		return wifi.AuthWPA2PSK
	case hasWPA:
		return wifi.AuthWPAPSK
	default:
		return wifi.AuthWEP
	}
}
