// Package engine implements the widget composition and animation engine:
// data-bound widgets, the scroll and popup effects, the sequence scheduler,
// and the display controller that multiplexes sequences onto one panel.
package engine

import (
	"errors"
	"io"
)

// Options configures a display controller and the ambient services every
// widget built for it shares.
type Options struct {
	// PanelWidth and PanelHeight describe the target panel in pixels.
	PanelWidth  int
	PanelHeight int

	// Clock drives every timed transition. Defaults to SystemClock; tests
	// inject a fake.
	Clock Clock

	// Logger receives every recoverable rendering error. If nil, one is
	// built from LogWriter and LogLevel; without a LogWriter, logging is
	// disabled.
	Logger Logger
	// LogLevel sets the minimum level for the default logger. Valid values:
	// "DEBUG", "INFO", "WARN", "ERROR", "CRITICAL". Defaults to "INFO".
	LogLevel string
	// LogWriter is the destination for the default logger.
	LogWriter io.Writer

	// Metrics collects per-tick counters. If nil and EnableMetrics is set,
	// an InMemoryMetrics instance is created; otherwise metrics are
	// discarded.
	Metrics       Metrics
	EnableMetrics bool
}

func (o *Options) setDefaults() {
	if o.Clock == nil {
		o.Clock = SystemClock()
	}
	if o.Logger == nil {
		if o.LogWriter != nil {
			o.Logger = NewStdLogger(ParseLogLevel(o.LogLevel), o.LogWriter)
		} else {
			o.Logger = &NoOpLogger{}
		}
	}
	if o.Metrics == nil {
		if o.EnableMetrics {
			o.Metrics = NewInMemoryMetrics()
		} else {
			o.Metrics = &NoOpMetrics{}
		}
	}
}

func (o *Options) validate() error {
	if o.PanelWidth <= 0 || o.PanelHeight <= 0 {
		return errors.New("engine: panel dimensions must be positive")
	}
	return nil
}
