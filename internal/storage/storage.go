package storage

import (
	"context"

	"github.com/slok/flare/internal/model"
)

// Repository is the interface for crash report and breadcrumb persistence.
//
// Breadcrumbs form a rolling trail: entries are appended as console lines
// are mirrored and pruned to a fixed size, and the current trail is
// attached to every report created afterwards.
type Repository interface {
	CreateReport(ctx context.Context, r model.Report) error
	GetReport(ctx context.Context, id string) (*model.Report, error)
	// ListReports returns all reports newest first, without their
	// breadcrumb trails. Use GetReport for the full record.
	ListReports(ctx context.Context) ([]model.Report, error)
	AddBreadcrumb(ctx context.Context, b model.Breadcrumb) error
	ListBreadcrumbs(ctx context.Context) ([]model.Breadcrumb, error)
	// PruneBreadcrumbs drops the oldest entries so at most keep remain.
	PruneBreadcrumbs(ctx context.Context, keep int) error
}
