package model

import (
	"fmt"
	"time"
)

// Report is a crash report captured by the local crash store. It carries
// the recorded error together with the breadcrumb trail that led to it.
type Report struct {
	ID         string
	Error      string
	StackTrace string
	Fatal      bool
	CreatedAt  time.Time

	Breadcrumbs []Breadcrumb
}

// Breadcrumb is a single free-text trail entry mirrored from a console line.
type Breadcrumb struct {
	Message   string
	CreatedAt time.Time
}

// Validate validates the report.
func (r *Report) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("id is required: %w", ErrNotValid)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("created at timestamp is required: %w", ErrNotValid)
	}
	return nil
}
