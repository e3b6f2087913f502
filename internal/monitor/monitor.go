package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/report"
	"github.com/Dragos-Hategan/esp32-local-area-network-scanner/internal/scan"
)

// logTag names the cycle logger.
const logTag = "WIFI_SCAN"

// DefaultInterval is the pause between scan cycles.
const DefaultInterval = 3000 * time.Millisecond

// Config controls a Loop.
type Config struct {
	Scan     scan.Config         // sweep parameters passed to the driver each cycle
	Out      io.Writer           // report sink; nil means os.Stdout
	Interval time.Duration       // pause between cycles; 0 means DefaultInterval
	Cycles   int                 // number of cycles to run; 0 means forever
	Sleep    func(time.Duration) // sleep function; nil means time.Sleep
}

// Loop runs the scan-report cycle over a driver. Construct with NewLoop.
type Loop struct {
	driver scan.Driver
	config Config
	logger *zap.Logger
}

// NewLoop creates a loop over the given driver. Zero-value Config fields
// take their documented defaults; a nil logger logs nothing.
func NewLoop(driver scan.Driver, config Config, logger *zap.Logger) *Loop {
	if config.Out == nil {
		config.Out = os.Stdout
	}
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Sleep == nil {
		config.Sleep = time.Sleep
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loop{
		driver: driver,
		config: config,
		logger: logger.Named(logTag),
	}
}

// Run executes cycles until the cycle budget is spent or a cycle fails.
// The sleep runs between cycles, never after the last one. ctx is
// observed at cycle boundaries only; the sleep itself is a plain timed
// yield, matching the loop's original cadence.
func (l *Loop) Run(ctx context.Context) error {
	for cycle := 0; l.config.Cycles == 0 || cycle < l.config.Cycles; cycle++ {
		if cycle > 0 {
			l.logger.Debug("sleeping", zap.Duration("interval", l.config.Interval))
			l.config.Sleep(l.config.Interval)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if err := l.runCycle(ctx, cycle); err != nil {
			return err
		}
	}
	return nil
}

// runCycle performs one SCANNING -> REPORTING pass. The record buffer is
// released on every exit path before the cycle returns.
func (l *Loop) runCycle(ctx context.Context, cycle int) error {
	start := time.Now()
	l.logger.Debug("starting scan", zap.Int("cycle", cycle))

	if err := l.driver.Scan(ctx, l.config.Scan); err != nil {
		return fmt.Errorf("scan cycle %d: %w", cycle, err)
	}

	set, err := l.driver.Records()
	if err != nil {
		return fmt.Errorf("scan cycle %d records: %w", cycle, err)
	}
	defer set.Release()

	l.logger.Debug("scan complete",
		zap.Int("cycle", cycle),
		zap.Int("networks", set.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	if _, err := io.WriteString(l.config.Out, report.FormatTable(set.Records())); err != nil {
		return fmt.Errorf("scan cycle %d report: %w", cycle, err)
	}
	return nil
}
