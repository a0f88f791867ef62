// Package prometheus implements the metrics recorder using Prometheus.
package prometheus

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/slok/flare/internal/metrics"
)

// Recorder is a Prometheus backed metrics.Recorder.
type Recorder struct {
	consoleLines    *prometheus.CounterVec
	breadcrumbs     prometheus.Counter
	crashReports    *prometheus.CounterVec
	eventsForwarded prometheus.Counter
	sinkFailures    *prometheus.CounterVec
}

// NewRecorder creates a new Prometheus recorder registered on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	return &Recorder{
		consoleLines: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "flare_console_lines_total",
				Help: "Total number of console lines rendered.",
			},
			[]string{"severity"},
		),
		breadcrumbs: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "flare_crash_breadcrumbs_total",
				Help: "Total number of breadcrumbs mirrored to the crash sink.",
			},
		),
		crashReports: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "flare_crash_reports_total",
				Help: "Total number of errors recorded on the crash sink.",
			},
			[]string{"fatal"},
		),
		eventsForwarded: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Name: "flare_analytics_events_forwarded_total",
				Help: "Total number of analytics events forwarded to the analytics sink.",
			},
		),
		sinkFailures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "flare_sink_failures_total",
				Help: "Total number of swallowed sink failures.",
			},
			[]string{"sink"},
		),
	}
}

func (r *Recorder) ObserveConsoleLine(severity string) {
	r.consoleLines.WithLabelValues(severity).Inc()
}

func (r *Recorder) ObserveBreadcrumb() {
	r.breadcrumbs.Inc()
}

func (r *Recorder) ObserveCrashReport(fatal bool) {
	r.crashReports.WithLabelValues(strconv.FormatBool(fatal)).Inc()
}

func (r *Recorder) ObserveEventForwarded() {
	r.eventsForwarded.Inc()
}

func (r *Recorder) ObserveSinkFailure(sinkKind string) {
	r.sinkFailures.WithLabelValues(sinkKind).Inc()
}

var _ metrics.Recorder = &Recorder{}
