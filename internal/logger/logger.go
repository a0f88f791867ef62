// Package logger implements the console logging facade: it renders lines
// with a timestamp, a call-site label and a severity glyph, and mirrors
// them to the crash and analytics sinks according to the current settings.
package logger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/slok/flare/internal/analytics"
	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/metrics"
	"github.com/slok/flare/internal/model"
	"github.com/slok/flare/internal/render"
	"github.com/slok/flare/internal/settings"
	"github.com/slok/flare/internal/sink"
	"github.com/slok/flare/internal/stack"
)

// Config is the configuration for the logger.
type Config struct {
	// Label is the call-site label rendered on every line. Required.
	Label string
	// Settings provides the runtime switches. Required.
	Settings settings.Provider
	// Console receives every rendered line. Required.
	Console sink.Console
	// Crash receives breadcrumbs and recorded errors. Defaults to a noop sink.
	Crash sink.Crash
	// Forwarder ships analytics events. Optional, events are dropped without it.
	Forwarder *analytics.Forwarder
	// Metrics records logger activity. Defaults to a noop recorder.
	Metrics metrics.Recorder
	// Logger is the internal diagnostics logger, not the console output.
	Logger log.Logger
	// Now is the clock used for line timestamps. Defaults to time.Now.
	Now func() time.Time
}

func (c *Config) defaults() error {
	if c.Label == "" {
		return fmt.Errorf("label is required")
	}

	if c.Settings == nil {
		return fmt.Errorf("settings provider is required")
	}

	if c.Console == nil {
		return fmt.Errorf("console sink is required")
	}

	if c.Crash == nil {
		c.Crash = sink.NoopCrash
	}

	if c.Metrics == nil {
		c.Metrics = metrics.Noop
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "logger.Logger"})

	if c.Now == nil {
		c.Now = time.Now
	}

	return nil
}

// ErrorDetails carries the optional parts of an error log.
type ErrorDetails struct {
	// Err is the error being logged, it may be nil.
	Err error
	// StackTrace replaces the captured stack when set.
	StackTrace string
	// Fatal marks the record as a crash instead of a handled error.
	Fatal bool
}

// DataDetails carries the optional parts of structured data logging.
type DataDetails struct {
	// Message is an accompanying info line rendered before the data lines.
	Message string
}

// MapMode selects which side of map entries is logged.
type MapMode int

const (
	// MapModeEntries logs keys and values.
	MapModeEntries MapMode = iota
	// MapModeKeys logs keys only.
	MapModeKeys
	// MapModeValues logs values only.
	MapModeValues
)

// Logger renders console lines and mirrors them to the configured sinks.
// All methods are fire and forget: sink failures are recorded on the
// diagnostics logger and the metrics recorder, never surfaced to callers.
type Logger struct {
	label     string
	settings  settings.Provider
	console   sink.Console
	crash     sink.Crash
	forwarder *analytics.Forwarder
	metrics   metrics.Recorder
	logger    log.Logger
	now       func() time.Time
}

// New creates a new logger.
func New(cfg Config) (*Logger, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Logger{
		label:     cfg.Label,
		settings:  cfg.Settings,
		console:   cfg.Console,
		crash:     cfg.Crash,
		forwarder: cfg.Forwarder,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
		now:       cfg.Now,
	}, nil
}

// WithLabel returns a copy of the logger bound to a new call-site label.
// The copy shares settings and sinks with the original.
func (l *Logger) WithLabel(label string) *Logger {
	if label == "" {
		return l
	}

	copied := *l
	copied.label = label
	copied.logger = l.logger.WithValues(log.Kv{"label": label})
	return &copied
}

// Log renders a message line with the given severity.
func (l *Logger) Log(severity model.Severity, msg string) {
	if err := severity.Validate(); err != nil {
		l.logger.Warningf("Dropped message with invalid severity: %s", err)
		return
	}

	l.emit(line{
		severity: severity,
		body:     render.Message(severity.Icon(), msg),
		content:  msg,
		mirror:   true,
	})
}

// Info renders an info message line.
func (l *Logger) Info(msg string) { l.Log(model.SeverityInfo, msg) }

// Warning renders a warning message line.
func (l *Logger) Warning(msg string) { l.Log(model.SeverityWarning, msg) }

// Success renders a success message line.
func (l *Logger) Success(msg string) { l.Log(model.SeveritySuccess, msg) }

// Error records the error on the crash sink (when crash reporting is on)
// and renders the message, the error text and a stack trace as error lines.
// Only the message line is mirrored as a breadcrumb.
func (l *Logger) Error(msg string, details ErrorDetails) {
	display := details.StackTrace
	forwarded := details.StackTrace
	if forwarded == "" {
		captured := stack.Current()
		forwarded = captured
		display = stack.Trim(captured)
	}

	if l.settings.Current().CrashReporting {
		err := l.crash.RecordError(context.Background(), sink.RecordOpts{
			Err:             details.Err,
			StackTrace:      forwarded,
			Fatal:           details.Fatal,
			SuppressDetails: true,
		})
		if err != nil {
			l.swallow("crash", err)
		} else {
			l.metrics.ObserveCrashReport(details.Fatal)
		}
	}

	icon := model.SeverityError.Icon()
	l.emit(line{
		severity: model.SeverityError,
		body:     render.Message(icon, msg),
		content:  msg,
		mirror:   true,
	})
	if details.Err != nil {
		l.emit(line{severity: model.SeverityError, body: render.Message(icon, details.Err.Error())})
	}
	l.emit(line{severity: model.SeverityError, body: render.Message(icon, display)})
}

// Event echoes the analytics event to the console (when echoing is on) and
// hands it to the forwarder. The echo renders one line for the event and
// one per parameter, in key order.
func (l *Logger) Event(e model.Event) {
	if err := e.Validate(); err != nil {
		l.logger.Warningf("Dropped analytics event: %s", err)
		return
	}

	if l.settings.Current().AnalyticsEcho {
		icon := model.SeverityAnalytic.Icon()
		content := render.Event(e.Name, e.Value)
		l.emit(line{
			severity: model.SeverityAnalytic,
			body:     render.Message(icon, content),
			content:  content,
			mirror:   true,
		})

		for _, k := range sortedKeys(e.Params) {
			kv := render.KeyValue(k, e.Params[k])
			l.emit(line{
				severity: model.SeverityAnalytic,
				body:     render.Message(icon, kv),
				content:  kv,
				mirror:   true,
			})
		}
	}

	if l.forwarder == nil {
		return
	}
	if err := l.forwarder.Forward(context.Background(), e); err != nil {
		l.swallow("analytics", err)
	}
}

// Value renders a single value line.
func (l *Logger) Value(v any, details DataDetails) {
	l.dataMessage(details)
	l.emitDatum(render.Value(formatValue(v)))
}

// List renders one value line per item, in order.
func (l *Logger) List(items []any, details DataDetails) {
	l.dataMessage(details)
	for _, item := range items {
		l.emitDatum(render.Value(formatValue(item)))
	}
}

// Set renders one value line per member. Members are sorted by their
// rendered form so the output is deterministic.
func (l *Logger) Set(members map[any]struct{}, details DataDetails) {
	l.dataMessage(details)

	rendered := make([]string, 0, len(members))
	for m := range members {
		rendered = append(rendered, formatValue(m))
	}
	sort.Strings(rendered)

	for _, v := range rendered {
		l.emitDatum(render.Value(v))
	}
}

// Map renders one line per entry in key order. The mode selects whether
// entries, keys or values are rendered.
func (l *Logger) Map(entries map[string]any, mode MapMode, details DataDetails) {
	l.dataMessage(details)

	for _, k := range sortedKeys(entries) {
		var body string
		switch mode {
		case MapModeKeys:
			body = render.Key(k)
		case MapModeValues:
			body = render.Value(formatValue(entries[k]))
		default:
			body = render.KeyValue(k, formatValue(entries[k]))
		}
		l.emitDatum(body)
	}
}

// line is a single console line and its crash sink mirror.
type line struct {
	severity model.Severity
	// body is the rendered console form, severity glyph included.
	body string
	// content is the breadcrumb form, without the severity glyph.
	content string
	// mirror marks lines that become breadcrumbs while crash reporting is on.
	mirror bool
}

func (l *Logger) emit(ln line) {
	ctx := context.Background()

	text := render.Line(l.now(), l.label, ln.body)
	if err := l.console.WriteLine(ctx, text); err != nil {
		l.swallow("console", err)
	}
	l.metrics.ObserveConsoleLine(string(ln.severity))

	if !ln.mirror || !l.settings.Current().CrashReporting {
		return
	}

	crumb := render.Breadcrumb(l.label, ln.severity.Label(), ln.content)
	if err := l.crash.Log(ctx, crumb); err != nil {
		l.swallow("crash", err)
		return
	}
	l.metrics.ObserveBreadcrumb()
}

func (l *Logger) emitDatum(body string) {
	l.emit(line{
		severity: model.SeverityInfo,
		body:     body,
		content:  body,
		mirror:   true,
	})
}

func (l *Logger) dataMessage(details DataDetails) {
	if details.Message == "" {
		return
	}
	l.Info(details.Message)
}

func (l *Logger) swallow(sinkKind string, err error) {
	l.logger.Warningf("Swallowed %s sink failure: %s", sinkKind, err)
	l.metrics.ObserveSinkFailure(sinkKind)
}

func formatValue(v any) string {
	return fmt.Sprintf("%v", v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
