package model

import (
	"fmt"
	"strings"
)

// Severity classifies a console line and selects the glyph rendered on it
// and the label attached when the line is mirrored to a crash sink.
type Severity string

const (
	// SeverityInfo is the default severity for plain messages.
	SeverityInfo Severity = "info"
	// SeverityWarning indicates a recoverable anomaly.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a failure, optionally carrying an error and stack trace.
	SeverityError Severity = "error"
	// SeveritySuccess indicates a completed operation.
	SeveritySuccess Severity = "success"
	// SeverityAnalytic marks analytics event echo lines.
	SeverityAnalytic Severity = "analytic"
)

// Fixed glyphs for structured data lines. Keys and values carry these
// instead of a severity icon.
const (
	IconKey   = "🔑"
	IconValue = "💾"
)

var severityIcons = map[Severity]string{
	SeverityInfo:     "🗣",
	SeverityWarning:  "⚠",
	SeverityError:    "❌",
	SeveritySuccess:  "✅",
	SeverityAnalytic: "📈",
}

// Icon returns the glyph rendered on console lines of this severity.
func (s Severity) Icon() string {
	return severityIcons[s]
}

// Label returns the uppercase label used when mirroring lines of this
// severity to a crash sink.
func (s Severity) Label() string {
	return strings.ToUpper(string(s))
}

// Validate validates the severity.
func (s Severity) Validate() error {
	if _, ok := severityIcons[s]; !ok {
		return fmt.Errorf("unknown severity %q: %w", s, ErrNotValid)
	}
	return nil
}
