package flare

import (
	"context"
	"time"

	"github.com/slok/flare/internal/logger"
	"github.com/slok/flare/internal/model"
	"github.com/slok/flare/internal/sink"
)

// Severity classifies a console line and selects the glyph rendered on it.
type Severity string

const (
	// SeverityInfo is the default severity for plain messages.
	SeverityInfo Severity = "info"
	// SeverityWarning marks recoverable anomalies.
	SeverityWarning Severity = "warning"
	// SeverityError marks failures. Prefer [Logger.Error], which also
	// attaches the error object and a stack trace.
	SeverityError Severity = "error"
	// SeveritySuccess marks completed operations.
	SeveritySuccess Severity = "success"
	// SeverityAnalytic marks analytic event echo lines.
	SeverityAnalytic Severity = "analytic"
)

// Settings holds the runtime switches of the logger.
//
// The zero value disables everything: no analytics forwarding, no analytic
// console echo, no crash reporting.
type Settings struct {
	// Analytics enables forwarding analytic events to the analytics sink.
	Analytics bool
	// AnalyticsEcho enables echoing analytic events to the console.
	AnalyticsEcho bool
	// CrashReporting enables mirroring console lines and errors to the
	// crash sink.
	CrashReporting bool
}

// SettingsPatch is a partial settings update. Only non-nil fields are
// applied, the rest keep their current values.
type SettingsPatch struct {
	Analytics      *bool
	AnalyticsEcho  *bool
	CrashReporting *bool
}

// Event is a named analytic event.
type Event struct {
	// Name identifies the event.
	Name string
	// Value is an optional free-form event value.
	Value string
	// Params are optional event parameters.
	Params map[string]string
}

// ErrorOpts configures error logging.
//
// Pass nil to [Logger.Error] to log a plain error message with a captured
// stack trace.
type ErrorOpts struct {
	// Err is the error being logged. Its string form is rendered as an
	// extra console line and attached to the crash record.
	Err error
	// StackTrace replaces the captured stack trace when set. Use
	// [StackFromError] to extract one recorded by github.com/pkg/errors.
	StackTrace string
	// Fatal marks the crash record as a crash instead of a handled error.
	Fatal bool
}

// EventOpts configures analytic event logging.
//
// Pass nil to [Logger.Event] for a bare named event.
type EventOpts struct {
	// Value is an optional free-form event value.
	Value string
	// Params are optional event parameters, echoed one line per entry.
	Params map[string]string
}

// DataOpts configures structured data logging.
//
// Pass nil for no accompanying message.
type DataOpts struct {
	// Message is an info line rendered before the data lines.
	Message string
}

// RecordOpts is the structured error record handed to a [CrashSink].
type RecordOpts struct {
	// Err is the recorded error. Nil when only a message was logged.
	Err error
	// StackTrace is the stack trace of the failure. When the caller did
	// not supply one this is the full captured stack.
	StackTrace string
	// Fatal marks the record as a crash instead of a handled error.
	Fatal bool
	// SuppressDetails tells the sink not to render its own details, the
	// logger already put them on the console.
	SuppressDetails bool
}

// ConsoleSink receives fully formatted console lines.
type ConsoleSink interface {
	WriteLine(ctx context.Context, line string) error
}

// CrashSink receives breadcrumbs and structured error records. Implement
// it to plug a vendor crash reporter, or use [NewLocalCrashSink] or
// [NewMemoryCrashSink] for a local store.
type CrashSink interface {
	// Log records a free-text breadcrumb.
	Log(ctx context.Context, message string) error
	// RecordError records a structured error report.
	RecordError(ctx context.Context, opts RecordOpts) error
}

// AnalyticsSink receives forwarded analytic events. Implement it to plug a
// vendor analytics backend.
type AnalyticsSink interface {
	Send(ctx context.Context, e Event) error
}

// CrashReport is a crash report stored by a local crash sink.
type CrashReport struct {
	// ID is the unique identifier (ULID) assigned when the report is stored.
	ID string
	// Error is the string form of the recorded error. Empty when no error
	// object was supplied.
	Error string
	// StackTrace is the stack trace recorded with the report.
	StackTrace string
	// Fatal marks the report as a crash instead of a handled error.
	Fatal bool
	// CreatedAt is when the report was stored.
	CreatedAt time.Time
	// Breadcrumbs is the console line trail that led to the report. Empty
	// in listings, populated by [LocalCrashSink.Report] and
	// [MemoryCrashSink.Report].
	Breadcrumbs []CrashBreadcrumb
}

// CrashBreadcrumb is a single breadcrumb trail entry.
type CrashBreadcrumb struct {
	// Message is the mirrored console line.
	Message string
	// CreatedAt is when the breadcrumb was recorded.
	CreatedAt time.Time
}

// --- Internal conversion helpers ---

func toInternalSettings(s Settings) model.Settings {
	return model.Settings{
		Analytics:      s.Analytics,
		AnalyticsEcho:  s.AnalyticsEcho,
		CrashReporting: s.CrashReporting,
	}
}

func fromInternalSettings(s model.Settings) Settings {
	return Settings{
		Analytics:      s.Analytics,
		AnalyticsEcho:  s.AnalyticsEcho,
		CrashReporting: s.CrashReporting,
	}
}

func toInternalSettingsPatch(p SettingsPatch) model.SettingsPatch {
	return model.SettingsPatch{
		Analytics:      p.Analytics,
		AnalyticsEcho:  p.AnalyticsEcho,
		CrashReporting: p.CrashReporting,
	}
}

func fromInternalSettingsPatch(p model.SettingsPatch) SettingsPatch {
	return SettingsPatch{
		Analytics:      p.Analytics,
		AnalyticsEcho:  p.AnalyticsEcho,
		CrashReporting: p.CrashReporting,
	}
}

func toInternalEvent(name string, opts *EventOpts) model.Event {
	e := model.Event{Name: name}
	if opts != nil {
		e.Value = opts.Value
		e.Params = opts.Params
	}
	return e
}

func fromInternalEvent(e model.Event) Event {
	return Event{Name: e.Name, Value: e.Value, Params: e.Params}
}

func toInternalErrorDetails(opts *ErrorOpts) logger.ErrorDetails {
	if opts == nil {
		return logger.ErrorDetails{}
	}

	return logger.ErrorDetails{
		Err:        opts.Err,
		StackTrace: opts.StackTrace,
		Fatal:      opts.Fatal,
	}
}

func toInternalDataDetails(opts *DataOpts) logger.DataDetails {
	if opts == nil {
		return logger.DataDetails{}
	}

	return logger.DataDetails{Message: opts.Message}
}

func toInternalRecordOpts(opts RecordOpts) sink.RecordOpts {
	return sink.RecordOpts{
		Err:             opts.Err,
		StackTrace:      opts.StackTrace,
		Fatal:           opts.Fatal,
		SuppressDetails: opts.SuppressDetails,
	}
}

func fromInternalRecordOpts(opts sink.RecordOpts) RecordOpts {
	return RecordOpts{
		Err:             opts.Err,
		StackTrace:      opts.StackTrace,
		Fatal:           opts.Fatal,
		SuppressDetails: opts.SuppressDetails,
	}
}

func fromInternalReport(r model.Report) CrashReport {
	return CrashReport{
		ID:          r.ID,
		Error:       r.Error,
		StackTrace:  r.StackTrace,
		Fatal:       r.Fatal,
		CreatedAt:   r.CreatedAt,
		Breadcrumbs: fromInternalBreadcrumbs(r.Breadcrumbs),
	}
}

func fromInternalReportList(rs []model.Report) []CrashReport {
	result := make([]CrashReport, len(rs))
	for i, r := range rs {
		result[i] = fromInternalReport(r)
	}
	return result
}

func fromInternalBreadcrumbs(bs []model.Breadcrumb) []CrashBreadcrumb {
	if bs == nil {
		return nil
	}

	result := make([]CrashBreadcrumb, len(bs))
	for i, b := range bs {
		result[i] = CrashBreadcrumb{Message: b.Message, CreatedAt: b.CreatedAt}
	}
	return result
}

// --- Sink adapters ---

// crashSinkAdapter exposes a public CrashSink as the internal sink type.
type crashSinkAdapter struct {
	sink CrashSink
}

func (a crashSinkAdapter) Log(ctx context.Context, message string) error {
	return a.sink.Log(ctx, message)
}

func (a crashSinkAdapter) RecordError(ctx context.Context, opts sink.RecordOpts) error {
	return a.sink.RecordError(ctx, fromInternalRecordOpts(opts))
}

// analyticsSinkAdapter exposes a public AnalyticsSink as the internal sink
// type.
type analyticsSinkAdapter struct {
	sink AnalyticsSink
}

func (a analyticsSinkAdapter) Send(ctx context.Context, e model.Event) error {
	return a.sink.Send(ctx, fromInternalEvent(e))
}

// --- Error mapping ---

func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case isInternalError(err, model.ErrNotFound):
		return joinErrors(err, ErrNotFound)
	case isInternalError(err, model.ErrAlreadyExists):
		return joinErrors(err, ErrAlreadyExists)
	case isInternalError(err, model.ErrNotValid):
		return joinErrors(err, ErrNotValid)
	default:
		return err
	}
}

func isInternalError(err, target error) bool {
	for {
		if err == target {
			return true
		}
		unwrapped := unwrapSingle(err)
		if unwrapped == nil {
			return false
		}
		err = unwrapped
	}
}

func unwrapSingle(err error) error {
	u, ok := err.(interface{ Unwrap() error })
	if !ok {
		return nil
	}
	return u.Unwrap()
}

func joinErrors(original, sentinel error) error {
	return &mappedError{original: original, sentinel: sentinel}
}

type mappedError struct {
	original error
	sentinel error
}

func (e *mappedError) Error() string { return e.original.Error() }

func (e *mappedError) Is(target error) bool {
	return target == e.sentinel
}

func (e *mappedError) Unwrap() error { return e.original }
