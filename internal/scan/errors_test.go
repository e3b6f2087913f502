package scan

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{ErrKindSetup, "Setup Error"},
		{ErrKindScan, "Scan Error"},
		{ErrKindParse, "Parse Error"},
		{ErrorKind(42), "ErrorKind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestDriverErrorMessage(t *testing.T) {
	bare := NewSetupError("no wireless station interface found", nil)
	if got, want := bare.Error(), "Setup Error: no wireless station interface found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("operation not permitted")
	wrapped := NewScanError("iwlist scan on wlan0 failed", cause)
	if got := wrapped.Error(); !strings.Contains(got, "caused by: operation not permitted") {
		t.Errorf("Error() = %q, want the cause included", got)
	}
}

func TestDriverErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewParseError("output is not an iwlist scan listing", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		isSetup bool
		isScan  bool
		isParse bool
	}{
		{
			name:    "setup error",
			err:     NewSetupError("iwlist not found on PATH", nil),
			isSetup: true,
		},
		{
			name:   "scan error",
			err:    NewScanError("sweep failed", nil),
			isScan: true,
		},
		{
			name:    "parse error",
			err:     NewParseError("bad output", nil),
			isParse: true,
		},
		{
			name:   "wrapped scan error",
			err:    fmt.Errorf("cycle 3: %w", NewScanError("sweep failed", nil)),
			isScan: true,
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
		},
		{
			name: "nil error",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSetupError(tt.err); got != tt.isSetup {
				t.Errorf("IsSetupError() = %v, want %v", got, tt.isSetup)
			}
			if got := IsScanError(tt.err); got != tt.isScan {
				t.Errorf("IsScanError() = %v, want %v", got, tt.isScan)
			}
			if got := IsParseError(tt.err); got != tt.isParse {
				t.Errorf("IsParseError() = %v, want %v", got, tt.isParse)
			}
		})
	}
}

func TestGetTroubleshootingHint(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedText []string
	}{
		{
			name: "setup error",
			err:  NewSetupError("iwlist not found on PATH", nil),
			expectedText: []string{
				"Troubleshooting:",
				"wireless-tools",
				"--interface",
			},
		},
		{
			name: "scan error with interface context",
			err: &DriverError{
				Kind:      ErrKindScan,
				Message:   "sweep failed",
				Interface: "wlan0",
			},
			expectedText: []string{
				"Troubleshooting:",
				"wlan0",
				"elevated privileges",
			},
		},
		{
			name: "parse error",
			err:  NewParseError("bad output", nil),
			expectedText: []string{
				"Troubleshooting:",
				"wireless-tools version",
			},
		},
		{
			name: "non-driver error",
			err:  errors.New("random"),
			expectedText: []string{
				"unexpected error",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hint := GetTroubleshootingHint(tt.err)
			for _, text := range tt.expectedText {
				if !strings.Contains(hint, text) {
					t.Errorf("GetTroubleshootingHint() missing expected text %q\nGot: %s", text, hint)
				}
			}
		})
	}
}
