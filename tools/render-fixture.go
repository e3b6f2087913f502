//go:build ignore

// Render-fixture runs captured iwlist output through the survey parser and
// table renderer, so real-world captures can be checked by eye against what
// the scanner saw.
//
// Capture input with:
//
//	sudo iwlist wlan0 scan > capture.txt
//	go run tools/render-fixture.go capture.txt
package main

import (
	"fmt"
	"os"

	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/report"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/scan"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/wifi"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: render-fixture <capture-file>...")
		fmt.Println("Example: render-fixture capture-home.txt capture-office.txt")
		os.Exit(1)
	}

	failures := 0
	for _, path := range os.Args[1:] {
		if err := renderFile(path); err != nil {
			fmt.Printf("Error rendering %s: %v\n", path, err)
			failures++
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func renderFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	records, err := scan.ParseIWListOutput(string(data))
	if err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n", path)
	fmt.Print(report.FormatTable(records))
	printSummary(records)

	return nil
}

// printSummary breaks the parsed records down by authentication mode and
// flags hidden networks, the details most worth eyeballing in a capture
func printSummary(records []wifi.AccessPoint) {
	if len(records) == 0 {
		return
	}

	byAuth := make(map[string]int)
	hidden := 0
	for _, ap := range records {
		byAuth[ap.Auth.Label()]++
		if ap.Hidden() {
			hidden++
		}
	}

	fmt.Printf("Auth breakdown:")
	for label, n := range byAuth {
		fmt.Printf(" %s=%d", label, n)
	}
	fmt.Println()

	if hidden > 0 {
		fmt.Printf("Hidden networks: %d\n", hidden)
	}
	fmt.Println()
}
