package flare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/sink/store"
	"github.com/slok/flare/internal/storage"
	"github.com/slok/flare/internal/storage/memory"
	"github.com/slok/flare/internal/storage/sqlite"
)

const (
	defaultDataDir = ".flare"
	defaultDBFile  = "flare.db"
)

// LocalCrashSinkConfig configures a SQLite-backed crash sink.
//
// All fields are optional. An empty LocalCrashSinkConfig{} stores reports
// in ~/.flare/flare.db.
type LocalCrashSinkConfig struct {
	// DBPath is the SQLite database path. Parent directories are created
	// when missing.
	// Default: ~/.flare/flare.db.
	DBPath string

	// MaxBreadcrumbs caps the rolling breadcrumb trail attached to each
	// report. Default: 64.
	MaxBreadcrumbs int

	// Logger receives structured log output from the sink.
	// Default: noop (silent).
	Logger log.Logger
}

func (c *LocalCrashSinkConfig) defaults() error {
	if c.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get user home dir: %w", err)
		}
		c.DBPath = filepath.Join(home, defaultDataDir, defaultDBFile)
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// LocalCrashSink is a [CrashSink] that persists crash reports and their
// breadcrumb trails in a local SQLite database, so crashes can be inspected
// later without any vendor backend.
//
// Create it with [NewLocalCrashSink] and release the database connection
// with [LocalCrashSink.Close].
type LocalCrashSink struct {
	sink    *store.Sink
	repo    *sqlite.Repository
	closeFn func() error
}

// NewLocalCrashSink creates a crash sink backed by a SQLite database.
//
// The caller must call [LocalCrashSink.Close] when done to release the
// database connection. Typically used with defer:
//
//	crash, err := flare.NewLocalCrashSink(ctx, flare.LocalCrashSinkConfig{})
//	if err != nil {
//	    return err
//	}
//	defer crash.Close()
func NewLocalCrashSink(ctx context.Context, cfg LocalCrashSinkConfig) (*LocalCrashSink, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{
		DBPath: cfg.DBPath,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	sink, err := store.NewSink(store.SinkConfig{
		Repository:     repo,
		MaxBreadcrumbs: cfg.MaxBreadcrumbs,
		Logger:         cfg.Logger,
	})
	if err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("could not create store sink: %w", err)
	}

	return &LocalCrashSink{
		sink:    sink,
		repo:    repo,
		closeFn: repo.Close,
	}, nil
}

// Close releases the database connection. After Close returns, the sink
// must not be used.
func (s *LocalCrashSink) Close() error {
	if s.closeFn != nil {
		return s.closeFn()
	}
	return nil
}

// Log records a breadcrumb on the rolling trail.
func (s *LocalCrashSink) Log(ctx context.Context, message string) error {
	return mapError(s.sink.Log(ctx, message))
}

// RecordError stores a crash report with a snapshot of the current
// breadcrumb trail.
func (s *LocalCrashSink) RecordError(ctx context.Context, opts RecordOpts) error {
	return mapError(s.sink.RecordError(ctx, toInternalRecordOpts(opts)))
}

// Reports returns all stored crash reports, newest first, without their
// breadcrumb trails. Use [LocalCrashSink.Report] for the full record.
func (s *LocalCrashSink) Reports(ctx context.Context) ([]CrashReport, error) {
	return storeReports(ctx, s.repo)
}

// Report returns a stored crash report with its breadcrumb trail.
//
// Returns an error that matches [ErrNotFound] when the report does not
// exist.
func (s *LocalCrashSink) Report(ctx context.Context, id string) (*CrashReport, error) {
	return storeReport(ctx, s.repo, id)
}

// MemoryCrashSinkConfig configures an in-memory crash sink.
type MemoryCrashSinkConfig struct {
	// MaxBreadcrumbs caps the rolling breadcrumb trail attached to each
	// report. Default: 64.
	MaxBreadcrumbs int

	// Logger receives structured log output from the sink.
	// Default: noop (silent).
	Logger log.Logger
}

func (c *MemoryCrashSinkConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// MemoryCrashSink is a [CrashSink] that keeps crash reports in memory.
// Nothing survives the process, which makes it a good fit for tests.
type MemoryCrashSink struct {
	sink *store.Sink
	repo *memory.Repository
}

// NewMemoryCrashSink creates a crash sink backed by process memory.
func NewMemoryCrashSink(cfg MemoryCrashSinkConfig) (*MemoryCrashSink, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, err := memory.NewRepository(memory.RepositoryConfig{Logger: cfg.Logger})
	if err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	sink, err := store.NewSink(store.SinkConfig{
		Repository:     repo,
		MaxBreadcrumbs: cfg.MaxBreadcrumbs,
		Logger:         cfg.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create store sink: %w", err)
	}

	return &MemoryCrashSink{sink: sink, repo: repo}, nil
}

// Log records a breadcrumb on the rolling trail.
func (s *MemoryCrashSink) Log(ctx context.Context, message string) error {
	return mapError(s.sink.Log(ctx, message))
}

// RecordError stores a crash report with a snapshot of the current
// breadcrumb trail.
func (s *MemoryCrashSink) RecordError(ctx context.Context, opts RecordOpts) error {
	return mapError(s.sink.RecordError(ctx, toInternalRecordOpts(opts)))
}

// Reports returns all stored crash reports, newest first, without their
// breadcrumb trails. Use [MemoryCrashSink.Report] for the full record.
func (s *MemoryCrashSink) Reports(ctx context.Context) ([]CrashReport, error) {
	return storeReports(ctx, s.repo)
}

// Report returns a stored crash report with its breadcrumb trail.
//
// Returns an error that matches [ErrNotFound] when the report does not
// exist.
func (s *MemoryCrashSink) Report(ctx context.Context, id string) (*CrashReport, error) {
	return storeReport(ctx, s.repo, id)
}

func storeReports(ctx context.Context, repo storage.Repository) ([]CrashReport, error) {
	reports, err := repo.ListReports(ctx)
	if err != nil {
		return nil, mapError(fmt.Errorf("could not list crash reports: %w", err))
	}

	return fromInternalReportList(reports), nil
}

func storeReport(ctx context.Context, repo storage.Repository, id string) (*CrashReport, error) {
	report, err := repo.GetReport(ctx, id)
	if err != nil {
		return nil, mapError(fmt.Errorf("could not get crash report: %w", err))
	}

	result := fromInternalReport(*report)
	return &result, nil
}

var (
	_ CrashSink = &LocalCrashSink{}
	_ CrashSink = &MemoryCrashSink{}
)
