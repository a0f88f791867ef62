package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/model"
)

// RepositoryConfig is the configuration for the memory repository.
type RepositoryConfig struct {
	Logger log.Logger
}

func (c *RepositoryConfig) defaults() error {
	if c.Logger == nil {
		c.Logger = log.Noop
	}
	c.Logger = c.Logger.WithValues(log.Kv{"svc": "storage.Memory"})
	return nil
}

// Repository is an in-memory implementation of storage.Repository.
type Repository struct {
	reports     map[string]model.Report
	breadcrumbs []model.Breadcrumb
	mu          sync.RWMutex
	logger      log.Logger
}

// NewRepository creates a new memory repository.
func NewRepository(cfg RepositoryConfig) (*Repository, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Repository{
		reports: make(map[string]model.Report),
		logger:  cfg.Logger,
	}, nil
}

// CreateReport stores a new crash report.
func (r *Repository) CreateReport(ctx context.Context, report model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reports[report.ID]; ok {
		return fmt.Errorf("report with id %s: %w", report.ID, model.ErrAlreadyExists)
	}

	report.Breadcrumbs = copyBreadcrumbs(report.Breadcrumbs)
	r.reports[report.ID] = report
	r.logger.Debugf("Created crash report in repository: %s", report.ID)

	return nil
}

// GetReport retrieves a crash report by ID, including its breadcrumb trail.
func (r *Repository) GetReport(ctx context.Context, id string) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, model.ErrNotFound)
	}

	// Return a copy.
	reportCopy := report
	reportCopy.Breadcrumbs = copyBreadcrumbs(report.Breadcrumbs)
	return &reportCopy, nil
}

// ListReports returns all crash reports newest first, without breadcrumb trails.
func (r *Repository) ListReports(ctx context.Context) ([]model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]model.Report, 0, len(r.reports))
	for _, report := range r.reports {
		report.Breadcrumbs = nil
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].ID > reports[j].ID
	})

	return reports, nil
}

// AddBreadcrumb appends an entry to the rolling trail.
func (r *Repository) AddBreadcrumb(ctx context.Context, b model.Breadcrumb) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.breadcrumbs = append(r.breadcrumbs, b)
	return nil
}

// ListBreadcrumbs returns the current trail, oldest first.
func (r *Repository) ListBreadcrumbs(ctx context.Context) ([]model.Breadcrumb, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyBreadcrumbs(r.breadcrumbs), nil
}

// PruneBreadcrumbs drops the oldest entries so at most keep remain.
func (r *Repository) PruneBreadcrumbs(ctx context.Context, keep int) error {
	if keep < 0 {
		return fmt.Errorf("keep must not be negative: %w", model.ErrNotValid)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.breadcrumbs) <= keep {
		return nil
	}

	trimmed := make([]model.Breadcrumb, keep)
	copy(trimmed, r.breadcrumbs[len(r.breadcrumbs)-keep:])
	r.breadcrumbs = trimmed

	return nil
}

func copyBreadcrumbs(bs []model.Breadcrumb) []model.Breadcrumb {
	if bs == nil {
		return nil
	}
	c := make([]model.Breadcrumb, len(bs))
	copy(c, bs)
	return c
}
