package prometheus_test

import (
	"strings"
	"testing"

	prommodel "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/flare/internal/metrics/prometheus"
)

func TestRecorder(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	reg := prommodel.NewRegistry()
	rec := prometheus.NewRecorder(reg)

	rec.ObserveConsoleLine("info")
	rec.ObserveConsoleLine("info")
	rec.ObserveConsoleLine("error")
	rec.ObserveBreadcrumb()
	rec.ObserveCrashReport(true)
	rec.ObserveEventForwarded()
	rec.ObserveSinkFailure("crash")

	expected := `
# HELP flare_console_lines_total Total number of console lines rendered.
# TYPE flare_console_lines_total counter
flare_console_lines_total{severity="error"} 1
flare_console_lines_total{severity="info"} 2
# HELP flare_crash_breadcrumbs_total Total number of breadcrumbs mirrored to the crash sink.
# TYPE flare_crash_breadcrumbs_total counter
flare_crash_breadcrumbs_total 1
# HELP flare_crash_reports_total Total number of errors recorded on the crash sink.
# TYPE flare_crash_reports_total counter
flare_crash_reports_total{fatal="true"} 1
# HELP flare_analytics_events_forwarded_total Total number of analytics events forwarded to the analytics sink.
# TYPE flare_analytics_events_forwarded_total counter
flare_analytics_events_forwarded_total 1
# HELP flare_sink_failures_total Total number of swallowed sink failures.
# TYPE flare_sink_failures_total counter
flare_sink_failures_total{sink="crash"} 1
`

	err := testutil.GatherAndCompare(reg, strings.NewReader(expected))
	assert.NoError(err)

	families, err := reg.Gather()
	require.NoError(err)
	assert.Len(families, 5)
}
