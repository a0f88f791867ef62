// Package sink defines the output collaborators a logger writes to.
package sink

import (
	"context"

	"github.com/slok/flare/internal/model"
)

// Console receives rendered console lines.
type Console interface {
	WriteLine(ctx context.Context, line string) error
}

// RecordOpts carries the details of a recorded error.
type RecordOpts struct {
	// Err is the error being recorded, it may be nil when the caller only
	// has a message.
	Err error
	// StackTrace is the formatted stack trace attached to the record.
	StackTrace string
	// Fatal marks the record as a crash instead of a handled error.
	Fatal bool
	// SuppressDetails asks the sink not to emit its own diagnostic output,
	// the console already carries it.
	SuppressDetails bool
}

// Crash receives breadcrumb lines and recorded errors.
type Crash interface {
	Log(ctx context.Context, message string) error
	RecordError(ctx context.Context, opts RecordOpts) error
}

// Analytics receives analytics events accepted for forwarding.
type Analytics interface {
	Send(ctx context.Context, event model.Event) error
}

// NoopCrash discards everything sent to it.
const NoopCrash = noopCrash(false)

type noopCrash bool

var _ Crash = noopCrash(false)

func (n noopCrash) Log(context.Context, string) error             { return nil }
func (n noopCrash) RecordError(context.Context, RecordOpts) error { return nil }
