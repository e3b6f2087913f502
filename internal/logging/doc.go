// Package logging provides structured logging for the lanscan CLI.
//
// This package wraps zap with the small surface the commands need:
// level-gated package functions, named component loggers, and env-var
// controlled verbosity.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: per-cycle detail (scan start/complete, record counts, durations)
//   - Info: normal operations (driver selection, interface resolution)
//   - Warn: non-fatal issues (settings file problems)
//   - Error: fatal issues (startup failures)
//
// # Configuration
//
// Logging is silent unless enabled. Commands initialize from the
// environment so plain invocations print nothing but the survey table:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Set LANSCAN_LOG_LEVEL=debug (or pass --verbose) to see cycle logs.
//
// # Output
//
// All log output goes to stderr in console format. stdout is reserved
// for the survey table, so logs never corrupt piped output:
//
//	2026-08-25T10:30:45.123+0200  DEBUG  WIFI_SCAN  scan complete
//	  cycle=4 networks=12 duration=2.31s
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
