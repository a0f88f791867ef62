package flare

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/slok/flare/internal/analytics"
	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/logger"
	"github.com/slok/flare/internal/metrics"
	metricsprometheus "github.com/slok/flare/internal/metrics/prometheus"
	"github.com/slok/flare/internal/settings"
	"github.com/slok/flare/internal/sink"
	"github.com/slok/flare/internal/sink/console"
)

// Config configures a root logger.
//
// Only Label is required. An empty set of sinks gives a console-only logger
// that writes to stdout with everything else disabled.
type Config struct {
	// Label identifies the subsystem on every line, e.g. "main" or "sync".
	// Required.
	Label string

	// ConsoleWriter is where console lines are written.
	// Default: os.Stdout. Ignored when Console is set.
	ConsoleWriter io.Writer

	// Console replaces the default writer-backed console sink. Use it to
	// route formatted lines somewhere other than a stream.
	Console ConsoleSink

	// Crash receives mirrored console lines and structured error records
	// when crash reporting is enabled. Use [NewLocalCrashSink] or
	// [NewMemoryCrashSink], or implement the interface for a vendor
	// reporter. Default: none (crash data is discarded).
	Crash CrashSink

	// Analytics receives analytic events when analytics is enabled.
	// Default: none (events are echo-only).
	Analytics AnalyticsSink

	// Settings is the initial state of the runtime switches. The zero
	// value disables analytics, echo and crash reporting. Change them
	// later with [Logger.Configure].
	Settings Settings

	// MetricsRegisterer registers the logger's Prometheus collectors.
	// Default: none (metrics are not recorded).
	MetricsRegisterer prometheus.Registerer

	// Logger receives the diagnostic log output of the library itself,
	// e.g. swallowed sink failures. This is not the console output.
	// Default: noop (silent). See the log sub-package for the interface.
	Logger log.Logger

	// Now tells the time for line timestamps. Default: time.Now.
	// Useful for tests.
	Now func() time.Time
}

func (c *Config) defaults() error {
	if c.Label == "" {
		return fmt.Errorf("label is required")
	}

	if c.ConsoleWriter == nil {
		c.ConsoleWriter = os.Stdout
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Logger is the console logging facade.
//
// Create a root Logger with [New] and derive per-subsystem handles with
// [Logger.WithLabel]. All handles share the sinks and runtime settings of
// the root, so a [Logger.Configure] call through any handle affects all of
// them. A Logger is safe for concurrent use.
type Logger struct {
	core  *logger.Logger
	store *settings.Store
}

// New creates a root logger.
//
//	logger, err := flare.New(flare.Config{Label: "main"})
//	if err != nil {
//	    return err
//	}
//	logger.Info("Up and running")
func New(cfg Config) (*Logger, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store := settings.NewStore(toInternalSettings(cfg.Settings))

	consoleSink := sink.Console(cfg.Console)
	if consoleSink == nil {
		consoleSink = console.NewSink(cfg.ConsoleWriter)
	}

	var metricsRec metrics.Recorder = metrics.Noop
	if cfg.MetricsRegisterer != nil {
		metricsRec = metricsprometheus.NewRecorder(cfg.MetricsRegisterer)
	}

	var crashSink sink.Crash
	if cfg.Crash != nil {
		crashSink = crashSinkAdapter{sink: cfg.Crash}
	}

	var forwarder *analytics.Forwarder
	if cfg.Analytics != nil {
		fwd, err := analytics.NewForwarder(analytics.ForwarderConfig{
			Sink:     analyticsSinkAdapter{sink: cfg.Analytics},
			Settings: store,
			Metrics:  metricsRec,
			Logger:   cfg.Logger,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create analytics forwarder: %w", err)
		}
		forwarder = fwd
	}

	core, err := logger.New(logger.Config{
		Label:     cfg.Label,
		Settings:  store,
		Console:   consoleSink,
		Crash:     crashSink,
		Forwarder: forwarder,
		Metrics:   metricsRec,
		Logger:    cfg.Logger,
		Now:       cfg.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create logger: %w", err)
	}

	return &Logger{core: core, store: store}, nil
}

// WithLabel returns a handle that renders lines under the given label. The
// handle shares sinks and settings with its parent. An empty label returns
// the receiver.
func (l *Logger) WithLabel(label string) *Logger {
	if label == "" {
		return l
	}

	return &Logger{core: l.core.WithLabel(label), store: l.store}
}

// Configure applies the non-nil fields of the patch to the shared runtime
// settings and returns the resulting snapshot. It takes effect immediately
// for every handle sharing the settings.
func (l *Logger) Configure(patch SettingsPatch) Settings {
	return fromInternalSettings(l.store.Update(toInternalSettingsPatch(patch)))
}

// Settings returns the current runtime settings snapshot.
func (l *Logger) Settings() Settings {
	return fromInternalSettings(l.store.Current())
}
