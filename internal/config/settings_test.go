package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "lanscan") {
		t.Errorf("GetConfigDir() = %v, should contain 'lanscan'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME applies to Linux-like systems only")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg-test", "lanscan"); configDir != want {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, want)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.Version != 1 {
		t.Errorf("NewSettings().Version = %v, want 1", s.Version)
	}
	if s.Interface != "" {
		t.Errorf("NewSettings().Interface = %q, want autodetect (empty)", s.Interface)
	}
	if s.LogLevel != "" {
		t.Errorf("NewSettings().LogLevel = %q, want silent (empty)", s.LogLevel)
	}
}

func TestLoadSettingsFileMissing(t *testing.T) {
	s, err := LoadSettingsFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadSettingsFile() error = %v, want defaults for a missing file", err)
	}

	if s.Version != 1 {
		t.Errorf("Version = %v, want 1", s.Version)
	}
	if s.Interface != "" || s.LogLevel != "" {
		t.Errorf("loaded %+v, want defaults", s)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	s := NewSettings()
	s.Interface = "wlp3s0"
	s.LogLevel = "debug"

	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile() error = %v", err)
	}

	if loaded.Version != 1 {
		t.Errorf("loaded Version = %v, want 1", loaded.Version)
	}
	if loaded.Interface != "wlp3s0" {
		t.Errorf("loaded Interface = %q, want %q", loaded.Interface, "wlp3s0")
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("loaded LogLevel = %q, want %q", loaded.LogLevel, "debug")
	}

	// The write is atomic: no temp file may survive.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file %s.tmp still exists after SaveTo()", path)
	}

	// The saved file carries the explanatory header.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# lanscan Configuration File") {
		t.Errorf("saved file does not start with the header comment:\n%s", data)
	}
}

func TestLoadSettingsFileBadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 7\ninterface: wlan0\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettingsFile(path); err == nil {
		t.Error("LoadSettingsFile() error = nil, want unsupported version error")
	}
}

func TestLoadSettingsFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSettingsFile(path); err == nil {
		t.Error("LoadSettingsFile() error = nil, want parse error")
	}
}

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}
