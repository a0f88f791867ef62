// Package store implements a crash sink persisted on a storage repository.
//
// It keeps a rolling breadcrumb trail and turns every recorded error into
// a crash report carrying a snapshot of that trail, which makes crashes
// inspectable locally without any vendor backend.
package store

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/model"
	"github.com/slok/flare/internal/sink"
	"github.com/slok/flare/internal/storage"
)

// DefaultMaxBreadcrumbs is the trail size kept when none is configured.
const DefaultMaxBreadcrumbs = 64

// SinkConfig is the configuration for the store sink.
type SinkConfig struct {
	Repository storage.Repository
	// MaxBreadcrumbs caps the rolling trail. Defaults to DefaultMaxBreadcrumbs.
	MaxBreadcrumbs int
	Logger         log.Logger
}

func (c *SinkConfig) defaults() error {
	if c.Repository == nil {
		return fmt.Errorf("repository is required")
	}

	if c.MaxBreadcrumbs < 0 {
		return fmt.Errorf("max breadcrumbs must not be negative")
	}
	if c.MaxBreadcrumbs == 0 {
		c.MaxBreadcrumbs = DefaultMaxBreadcrumbs
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "sink.Store"})

	return nil
}

// Sink is a crash sink backed by a storage repository.
type Sink struct {
	repo           storage.Repository
	maxBreadcrumbs int
	logger         log.Logger
}

// NewSink creates a new store sink.
func NewSink(cfg SinkConfig) (*Sink, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Sink{
		repo:           cfg.Repository,
		maxBreadcrumbs: cfg.MaxBreadcrumbs,
		logger:         cfg.Logger,
	}, nil
}

// Log appends a breadcrumb to the rolling trail.
func (s *Sink) Log(ctx context.Context, message string) error {
	b := model.Breadcrumb{
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.AddBreadcrumb(ctx, b); err != nil {
		return fmt.Errorf("could not store breadcrumb: %w", err)
	}
	if err := s.repo.PruneBreadcrumbs(ctx, s.maxBreadcrumbs); err != nil {
		return fmt.Errorf("could not prune breadcrumbs: %w", err)
	}

	return nil
}

// RecordError creates a crash report with a snapshot of the current trail.
func (s *Sink) RecordError(ctx context.Context, opts sink.RecordOpts) error {
	crumbs, err := s.repo.ListBreadcrumbs(ctx)
	if err != nil {
		return fmt.Errorf("could not snapshot breadcrumbs: %w", err)
	}

	errMsg := ""
	if opts.Err != nil {
		errMsg = opts.Err.Error()
	}

	report := model.Report{
		ID:          ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String(),
		Error:       errMsg,
		StackTrace:  opts.StackTrace,
		Fatal:       opts.Fatal,
		CreatedAt:   time.Now().UTC(),
		Breadcrumbs: crumbs,
	}

	if err := s.repo.CreateReport(ctx, report); err != nil {
		return fmt.Errorf("could not store crash report: %w", err)
	}

	if !opts.SuppressDetails {
		s.logger.Infof("Crash report %s: %s", report.ID, report.Error)
	}
	s.logger.Debugf("Recorded crash report %s with %d breadcrumbs", report.ID, len(crumbs))

	return nil
}

var _ sink.Crash = &Sink{}
