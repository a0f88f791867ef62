// Package flare provides a console logging facade with severity icons and
// optional crash reporting and analytics mirroring.
//
// Every message becomes a single console line carrying a timestamp, a
// subsystem label and a severity icon. The same messages can be mirrored as
// breadcrumbs to a crash sink, so a crash report carries the console trail
// that led to it, and analytic events can be forwarded to an analytics
// sink. All mirroring is controlled by runtime settings that can be changed
// while the program runs.
//
// # Quick Start
//
// Create a root logger, log a few lines and derive a labeled handle:
//
//	logger, err := flare.New(flare.Config{Label: "main"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger.Info("Up and running")
//	logger.Warning("Cache is cold")
//	logger.Success("Sync finished")
//
//	sync := logger.WithLabel("sync")
//	sync.Info("Starting full sync")
//
// # Console Format
//
// Lines are rendered as `[HH:MM:SS] [label] icon content`:
//
//	[09:30:05] [main] 🗣 Up and running
//	[09:30:05] [main] ⚠ Cache is cold
//	[09:30:06] [sync] ✅ Sync finished
//
// Data lines use key and value glyphs instead of a message icon:
//
//	[09:30:06] [sync] 🔑 user 💾 alice
//
// # Crash Reporting
//
// Wire a [CrashSink] and enable crash reporting to mirror every console
// line as a breadcrumb and record structured error reports:
//
//	crash, err := flare.NewLocalCrashSink(ctx, flare.LocalCrashSinkConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer crash.Close()
//
//	logger, _ := flare.New(flare.Config{
//	    Label:    "main",
//	    Crash:    crash,
//	    Settings: flare.Settings{CrashReporting: true},
//	})
//
//	logger.Error("Sync failed", &flare.ErrorOpts{Err: err})
//
//	// Inspect stored reports later.
//	reports, _ := crash.Reports(ctx)
//	full, _ := crash.Report(ctx, reports[0].ID)
//
// The error is recorded on the sink before anything is rendered, so a
// crash while rendering still gets reported. Sink failures never propagate
// to logging calls, they are swallowed and reported through the diagnostic
// logger configured in [Config].Logger.
//
// # Analytics
//
// Wire an [AnalyticsSink] and enable analytics to forward named events.
// Enable echo to render events on the console too:
//
//	logger, _ := flare.New(flare.Config{
//	    Label:     "main",
//	    Analytics: mySink,
//	    Settings:  flare.Settings{Analytics: true, AnalyticsEcho: true},
//	})
//
//	logger.Event("sync_finished", &flare.EventOpts{
//	    Value:  "full",
//	    Params: map[string]string{"records": "1240"},
//	})
//
// # Structured Data
//
// Values, lists, sets and maps render one data line per element, with an
// optional leading message:
//
//	logger.Value("alice", &flare.DataOpts{Message: "Current user"})
//	logger.List([]any{"eu-west-1", "us-east-1"}, nil)
//	logger.Map(map[string]any{"region": "eu-west-1", "zone": "a"}, nil)
//
// Sets and maps are rendered in sorted order so output is deterministic.
//
// # Runtime Settings
//
// Mirroring is gated by [Settings], shared by every handle derived from
// the same root. Change them at runtime with [Logger.Configure], or load
// them from a YAML file with [LoadSettingsFile]:
//
//	patch, err := flare.LoadSettingsFile(ctx, "/etc/myapp/logging.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger.Configure(patch)
//
// # Error Handling
//
// Constructors and crash store accessors return errors that can be
// inspected with [errors.Is]:
//
//   - [ErrNotFound]: Resource does not exist (e.g. unknown report ID).
//   - [ErrAlreadyExists]: Resource already exists.
//   - [ErrNotValid]: Invalid input.
//
// Logging calls themselves never return errors.
//
// # Testing
//
// Point the console at a buffer and use [NewMemoryCrashSink] to write
// tests without touching disk:
//
//	var buf bytes.Buffer
//	crash, _ := flare.NewMemoryCrashSink(flare.MemoryCrashSinkConfig{})
//	logger, _ := flare.New(flare.Config{
//	    Label:         "main",
//	    ConsoleWriter: &buf,
//	    Crash:         crash,
//	    Settings:      flare.Settings{CrashReporting: true},
//	    Now:           func() time.Time { return fixedTime },
//	})
//
// # Thread Safety
//
// A [Logger] and all handles derived from it are safe for concurrent use
// from multiple goroutines. [LocalCrashSink] uses SQLite with WAL mode.
package flare
