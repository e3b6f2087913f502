package scan

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for scan driver operations

// ErrorKind represents the category of driver failure
type ErrorKind int

const (
	// ErrKindSetup indicates a startup failure (scan tool missing, no usable interface)
	ErrKindSetup ErrorKind = iota
	// ErrKindScan indicates a sweep failure (scan command failed or was killed)
	ErrKindScan
	// ErrKindParse indicates unrecognizable scanner output
	ErrKindParse
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindSetup:
		return "Setup Error"
	case ErrKindScan:
		return "Scan Error"
	case ErrKindParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// DriverError represents a failure in the scan driver. Every DriverError
// is fatal to the scan loop; no retryable classification exists.
type DriverError struct {
	Kind      ErrorKind // Category of failure
	Message   string    // Human-readable error message
	Interface string    // Wireless interface name (for context)
	Err       error     // Underlying error (if any)
}

// Error implements the error interface
func (e *DriverError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DriverError) Unwrap() error {
	return e.Err
}

// NewSetupError creates a startup failure
func NewSetupError(message string, err error) *DriverError {
	return &DriverError{
		Kind:    ErrKindSetup,
		Message: message,
		Err:     err,
	}
}

// NewScanError creates a sweep failure
func NewScanError(message string, err error) *DriverError {
	return &DriverError{
		Kind:    ErrKindScan,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates an output parsing failure
func NewParseError(message string, err error) *DriverError {
	return &DriverError{
		Kind:    ErrKindParse,
		Message: message,
		Err:     err,
	}
}

// IsSetupError checks if an error is a startup failure
func IsSetupError(err error) bool {
	var drvErr *DriverError
	return errors.As(err, &drvErr) && drvErr.Kind == ErrKindSetup
}

// IsScanError checks if an error is a sweep failure
func IsScanError(err error) bool {
	var drvErr *DriverError
	return errors.As(err, &drvErr) && drvErr.Kind == ErrKindScan
}

// IsParseError checks if an error is an output parsing failure
func IsParseError(err error) bool {
	var drvErr *DriverError
	return errors.As(err, &drvErr) && drvErr.Kind == ErrKindParse
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	var drvErr *DriverError
	if !errors.As(err, &drvErr) {
		return "An unexpected error occurred. Please try again."
	}

	switch drvErr.Kind {
	case ErrKindSetup:
		return strings.Join([]string{
			"The scan path could not be prepared.",
			"Troubleshooting:",
			"  • Install wireless-tools so the iwlist binary is on PATH",
			"  • Check that a Wi-Fi adapter is present and not blocked (rfkill list)",
			"  • Pass --interface <name> if autodetection found nothing",
		}, "\n")

	case ErrKindScan:
		hint := []string{"The sweep failed."}
		if drvErr.Interface != "" {
			hint = append(hint, fmt.Sprintf("Interface: %s", drvErr.Interface))
		}
		hint = append(hint, "Troubleshooting:",
			"  • Run with elevated privileges; a full scan usually needs root",
			"  • Bring the interface up: ip link set <interface> up",
			"  • Make sure no other process is holding the interface")
		return strings.Join(hint, "\n")

	case ErrKindParse:
		return strings.Join([]string{
			"The scanner produced output this tool could not read.",
			"Troubleshooting:",
			"  • Check the wireless-tools version (iwlist --version)",
			"  • Run iwlist <interface> scan by hand and inspect the output",
		}, "\n")

	default:
		return "An error occurred. Please check the error message for details."
	}
}
