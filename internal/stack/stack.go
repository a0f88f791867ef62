// Package stack captures and shapes stack traces for error logging.
package stack

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
)

// Console traces skip the first two lines of the capture (the goroutine
// header and the capture frame) and keep the six that follow, which are
// the frames closest to the logging call site.
const (
	trimSkip = 2
	trimKeep = 6
)

// Current returns the formatted stack trace of the calling goroutine.
func Current() string {
	return string(debug.Stack())
}

// Trim returns the console form of a formatted stack trace: the lines
// following the capture machinery, at most trimKeep of them.
func Trim(trace string) string {
	lines := strings.Split(strings.TrimRight(trace, "\n"), "\n")
	if len(lines) <= trimSkip {
		return trace
	}

	end := trimSkip + trimKeep
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[trimSkip:end], "\n")
}

// stackTracer is the interface implemented by errors created with
// github.com/pkg/errors.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// FromError returns the stack trace recorded on err or any error it wraps,
// or an empty string when none carries one. The innermost recorded trace
// wins because it is the closest to the failure origin.
func FromError(err error) string {
	var trace string
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			trace = fmt.Sprintf("%+v", st.StackTrace())
		}
		err = errors.Unwrap(err)
	}

	return strings.TrimLeft(trace, "\n")
}
