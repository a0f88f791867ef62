// Package metrics defines how logger internals are measured.
package metrics

// Recorder records logger activity. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveConsoleLine(severity string)
	ObserveBreadcrumb()
	ObserveCrashReport(fatal bool)
	ObserveEventForwarded()
	ObserveSinkFailure(sinkKind string)
}

// Noop recorder doesn't record anything.
const Noop = noop(false)

type noop bool

var _ Recorder = noop(false)

func (n noop) ObserveConsoleLine(string) {}
func (n noop) ObserveBreadcrumb()        {}
func (n noop) ObserveCrashReport(bool)   {}
func (n noop) ObserveEventForwarded()    {}
func (n noop) ObserveSinkFailure(string) {}
