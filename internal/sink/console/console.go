// Package console implements the console sink over an io.Writer.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/slok/flare/internal/sink"
)

// Sink writes one console line per call to the underlying writer. Writes
// are serialized so lines from concurrent goroutines never interleave.
type Sink struct {
	mu     sync.Mutex
	writer io.Writer
}

// NewSink creates a new console sink.
func NewSink(w io.Writer) *Sink {
	return &Sink{writer: w}
}

// WriteLine writes the line followed by a newline.
func (s *Sink) WriteLine(ctx context.Context, line string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.writer, line); err != nil {
		return fmt.Errorf("writing console line: %w", err)
	}
	return nil
}

var _ sink.Console = &Sink{}
