package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/model"
	"github.com/slok/flare/internal/storage/sqlite/migrations"
)

// RepositoryConfig is the configuration for the SQLite repository.
type RepositoryConfig struct {
	DBPath string
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.SQLite"})
	return nil
}

// Repository is a SQLite implementation of storage.Repository.
type Repository struct {
	db     *sql.DB
	logger log.Logger
}

// NewRepository creates a new SQLite repository.
func NewRepository(ctx context.Context, cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	dir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debugf("SQLite repository initialized at %s", cfg.DBPath)

	return &Repository{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error { return r.db.Close() }

// CreateReport stores a new crash report and its breadcrumb trail.
func (r *Repository) CreateReport(ctx context.Context, report model.Report) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO crash_reports (id, error, stack_trace, fatal, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, query, report.ID, report.Error, report.StackTrace, report.Fatal, report.CreatedAt.Unix())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: crash_reports.") {
			return fmt.Errorf("report already exists: %w", model.ErrAlreadyExists)
		}
		return fmt.Errorf("could not insert report: %w", err)
	}

	crumbQuery := `
		INSERT INTO report_breadcrumbs (report_id, seq, message, created_at)
		VALUES (?, ?, ?, ?)
	`
	for i, b := range report.Breadcrumbs {
		_, err := tx.ExecContext(ctx, crumbQuery, report.ID, i, b.Message, b.CreatedAt.Unix())
		if err != nil {
			return fmt.Errorf("could not insert report breadcrumb: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	r.logger.Debugf("Created crash report in repository: %s", report.ID)
	return nil
}

// GetReport retrieves a crash report by ID, including its breadcrumb trail.
func (r *Repository) GetReport(ctx context.Context, id string) (*model.Report, error) {
	query := `
		SELECT id, error, stack_trace, fatal, created_at
		FROM crash_reports
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("report %s: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("could not query report: %w", err)
	}

	crumbQuery := `
		SELECT message, created_at
		FROM report_breadcrumbs
		WHERE report_id = ?
		ORDER BY seq ASC
	`
	crumbs, err := r.queryBreadcrumbs(ctx, crumbQuery, id)
	if err != nil {
		return nil, fmt.Errorf("could not query report breadcrumbs: %w", err)
	}
	report.Breadcrumbs = crumbs

	return &report, nil
}

// ListReports returns all crash reports newest first, without breadcrumb trails.
func (r *Repository) ListReports(ctx context.Context) ([]model.Report, error) {
	query := `
		SELECT id, error, stack_trace, fatal, created_at
		FROM crash_reports
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query reports: %w", err)
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reports, nil
}

// AddBreadcrumb appends an entry to the rolling trail.
func (r *Repository) AddBreadcrumb(ctx context.Context, b model.Breadcrumb) error {
	query := `INSERT INTO breadcrumbs (message, created_at) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, b.Message, b.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("could not insert breadcrumb: %w", err)
	}

	return nil
}

// ListBreadcrumbs returns the current trail, oldest first.
func (r *Repository) ListBreadcrumbs(ctx context.Context) ([]model.Breadcrumb, error) {
	query := `
		SELECT message, created_at
		FROM breadcrumbs
		ORDER BY seq ASC
	`

	crumbs, err := r.queryBreadcrumbs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query breadcrumbs: %w", err)
	}

	return crumbs, nil
}

// PruneBreadcrumbs drops the oldest entries so at most keep remain.
func (r *Repository) PruneBreadcrumbs(ctx context.Context, keep int) error {
	if keep < 0 {
		return fmt.Errorf("keep must not be negative: %w", model.ErrNotValid)
	}

	query := `
		DELETE FROM breadcrumbs
		WHERE seq NOT IN (SELECT seq FROM breadcrumbs ORDER BY seq DESC LIMIT ?)
	`

	if _, err := r.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("could not prune breadcrumbs: %w", err)
	}

	return nil
}

func (r *Repository) queryBreadcrumbs(ctx context.Context, query string, args ...any) ([]model.Breadcrumb, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crumbs []model.Breadcrumb
	for rows.Next() {
		var b model.Breadcrumb
		var createdAt int64
		if err := rows.Scan(&b.Message, &createdAt); err != nil {
			return nil, err
		}
		b.CreatedAt = timeFromUnix(createdAt)
		crumbs = append(crumbs, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return crumbs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (model.Report, error) {
	var report model.Report
	var fatal int
	var createdAt int64

	err := s.Scan(&report.ID, &report.Error, &report.StackTrace, &fatal, &createdAt)
	if err != nil {
		return model.Report{}, err
	}

	report.Fatal = fatal != 0
	report.CreatedAt = timeFromUnix(createdAt)

	return report, nil
}

func timeFromUnix(unix int64) time.Time { return time.Unix(unix, 0).UTC() }
