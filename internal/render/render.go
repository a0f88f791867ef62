// Package render composes the console and breadcrumb text lines.
package render

import (
	"fmt"
	"time"
)

// timeFormat is the wall-clock prefix of every console line.
const timeFormat = "15:04:05"

// Line returns a console line: `[HH:MM:SS] [<label>] <body>`.
func Line(ts time.Time, label, body string) string {
	return fmt.Sprintf("[%s] [%s] %s", ts.Format(timeFormat), label, body)
}

// Breadcrumb returns the crash sink mirror of a console line. Breadcrumbs
// drop the timestamp (the sink stamps its own) and carry the severity
// label instead of the severity glyph: `[<label>] <SEVERITY> <content>`.
func Breadcrumb(label, severityLabel, content string) string {
	return fmt.Sprintf("[%s] %s %s", label, severityLabel, content)
}

// Message returns a severity message body: `<icon> <content>`.
func Message(icon, content string) string {
	return fmt.Sprintf("%s %s", icon, content)
}

// KeyValue returns a map entry body: `🔑 <key> 💾 <value>`.
func KeyValue(key, value string) string {
	return fmt.Sprintf("🔑 %s 💾 %s", key, value)
}

// Key returns a keys-only entry body: `🔑 <key>`.
func Key(key string) string {
	return fmt.Sprintf("🔑 %s", key)
}

// Value returns a values-only entry body: `💾 <value>`.
func Value(value string) string {
	return fmt.Sprintf("💾 %s", value)
}

// Event returns the content of an analytics event echo line, `<name>` or
// `<name>: <value>` when the event carries a value.
func Event(name, value string) string {
	if value == "" {
		return name
	}
	return fmt.Sprintf("%s: %s", name, value)
}
