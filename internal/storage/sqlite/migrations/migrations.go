// Package migrations manages the crash store schema. The schema files are
// embedded in the binary and applied in order, golang-migrate tracks the
// current version inside the database itself.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/slok/flare/internal/log"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// Migrator applies the embedded schema migrations to a SQLite database.
type Migrator struct {
	db     *sql.DB
	logger log.Logger
}

// NewMigrator creates a new migrator on an open database handle.
func NewMigrator(db *sql.DB, logger log.Logger) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if logger == nil {
		logger = log.Noop
	}

	return &Migrator{
		db:     db,
		logger: logger,
	}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	inst, cleanup, err := m.newInstance()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := inst.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	m.logger.Debugf("Crash store schema is up to date")
	return nil
}

// Down reverts every applied migration, dropping the crash store schema.
func (m *Migrator) Down(ctx context.Context) error {
	inst, cleanup, err := m.newInstance()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := inst.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not revert migrations: %w", err)
	}

	m.logger.Debugf("Crash store schema reverted")
	return nil
}

func (m *Migrator) newInstance() (*migrate.Migrate, func(), error) {
	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("could not create migration driver: %w", err)
	}

	src, err := iofs.New(schemaFiles, "sql")
	if err != nil {
		return nil, nil, fmt.Errorf("could not load schema files: %w", err)
	}
	cleanup := func() {
		if err := src.Close(); err != nil {
			m.logger.Errorf("could not close schema source: %s", err)
		}
	}

	inst, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("could not create migration instance: %w", err)
	}

	return inst, cleanup, nil
}
