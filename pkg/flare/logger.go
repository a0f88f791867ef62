package flare

import (
	"github.com/slok/flare/internal/logger"
	"github.com/slok/flare/internal/model"
)

// Log renders msg as a console line with the given severity icon. Messages
// with an unknown severity are dropped. When crash reporting is enabled the
// line is also mirrored to the crash sink as a breadcrumb.
func (l *Logger) Log(severity Severity, msg string) {
	l.core.Log(model.Severity(severity), msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string) { l.core.Info(msg) }

// Warning logs a warning message.
func (l *Logger) Warning(msg string) { l.core.Warning(msg) }

// Success logs a success message.
func (l *Logger) Success(msg string) { l.core.Success(msg) }

// Error logs an error message.
//
// The message line is followed by the error's string form when
// [ErrorOpts.Err] is set, and by a short stack trace. When
// [ErrorOpts.StackTrace] is empty a trace is captured at the call site.
// When crash reporting is enabled the error is recorded on the crash sink
// before anything is rendered, so a crash while rendering still gets
// reported. Pass nil opts for a plain error message.
func (l *Logger) Error(msg string, opts *ErrorOpts) {
	l.core.Error(msg, toInternalErrorDetails(opts))
}

// Event logs a named analytic event.
//
// When analytic echo is enabled the event is rendered to the console, one
// line for the event and one per parameter, sorted by parameter name. When
// analytics is enabled the event is also forwarded to the analytics sink.
// Events with an empty name are dropped. Pass nil opts for a bare event.
func (l *Logger) Event(name string, opts *EventOpts) {
	l.core.Event(toInternalEvent(name, opts))
}

// Value logs a single value as a data line.
func (l *Logger) Value(v any, opts *DataOpts) {
	l.core.Value(v, toInternalDataDetails(opts))
}

// List logs the items of a list in order, one data line per item.
func (l *Logger) List(items []any, opts *DataOpts) {
	l.core.List(items, toInternalDataDetails(opts))
}

// Set logs the members of a set sorted by their rendered form, one data
// line per member.
func (l *Logger) Set(members map[any]struct{}, opts *DataOpts) {
	l.core.Set(members, toInternalDataDetails(opts))
}

// Map logs map entries sorted by key, one key/value line per entry.
func (l *Logger) Map(entries map[string]any, opts *DataOpts) {
	l.core.Map(entries, logger.MapModeEntries, toInternalDataDetails(opts))
}

// MapKeys logs map keys in sorted order, one key line per entry.
func (l *Logger) MapKeys(entries map[string]any, opts *DataOpts) {
	l.core.Map(entries, logger.MapModeKeys, toInternalDataDetails(opts))
}

// MapValues logs map values sorted by key, one value line per entry.
func (l *Logger) MapValues(entries map[string]any, opts *DataOpts) {
	l.core.Map(entries, logger.MapModeValues, toInternalDataDetails(opts))
}
