package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_MissingTool(t *testing.T) {
	// A PATH with only an empty directory has no iwlist.
	t.Setenv("PATH", t.TempDir())

	_, err := Setup(Options{Interface: "wlan0"})
	if err == nil {
		t.Fatal("Setup() error = nil, want setup error")
	}
	if !IsSetupError(err) {
		t.Errorf("IsSetupError(%v) = false, want true", err)
	}
}

func TestSetup_ExplicitInterface(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iwlist")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	drv, err := Setup(Options{Interface: "wlan0"})
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	iw, ok := drv.(*IWListDriver)
	if !ok {
		t.Fatalf("Setup() returned %T, want *IWListDriver", drv)
	}
	if iw.Interface != "wlan0" {
		t.Errorf("Interface = %q, want %q", iw.Interface, "wlan0")
	}
	if iw.Binary != path {
		t.Errorf("Binary = %q, want %q", iw.Binary, path)
	}
}
