package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/flare/internal/log"
	"github.com/slok/flare/internal/model"
	"github.com/slok/flare/internal/storage/sqlite"
)

func reportFixture(id string) model.Report {
	now := time.Now().UTC().Truncate(time.Second)
	return model.Report{
		ID:         id,
		Error:      "connection reset",
		StackTrace: "goroutine 1 [running]:\nmain.main()\n\t/app/main.go:10",
		Fatal:      false,
		CreatedAt:  now,
		Breadcrumbs: []model.Breadcrumb{
			{Message: "[main] INFO starting", CreatedAt: now},
			{Message: "[main] WARNING retrying", CreatedAt: now},
		},
	}
}

func newRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.NewRepository(context.Background(), sqlite.RepositoryConfig{
		DBPath: filepath.Join(t.TempDir(), "test.db"),
		Logger: log.Noop,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestRepositoryReports(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	report := reportFixture("report-1")
	require.NoError(t, repo.CreateReport(ctx, report))

	got, err := repo.GetReport(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, "connection reset", got.Error)
	assert.Equal(t, report.StackTrace, got.StackTrace)
	assert.False(t, got.Fatal)
	assert.Equal(t, report.CreatedAt, got.CreatedAt)
	require.Len(t, got.Breadcrumbs, 2)
	assert.Equal(t, "[main] INFO starting", got.Breadcrumbs[0].Message)
	assert.Equal(t, "[main] WARNING retrying", got.Breadcrumbs[1].Message)

	all, err := repo.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Breadcrumbs)

	err = repo.CreateReport(ctx, report)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrAlreadyExists))

	_, err = repo.GetReport(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestRepositoryReportsOrder(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		report := model.Report{
			ID:        fmt.Sprintf("report-%d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.CreateReport(ctx, report))
	}

	all, err := repo.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "report-2", all[0].ID)
	assert.Equal(t, "report-1", all[1].ID)
	assert.Equal(t, "report-0", all[2].ID)
}

func TestRepositoryBreadcrumbs(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	now := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		b := model.Breadcrumb{Message: fmt.Sprintf("line-%d", i), CreatedAt: now}
		require.NoError(t, repo.AddBreadcrumb(ctx, b))
	}

	trail, err := repo.ListBreadcrumbs(ctx)
	require.NoError(t, err)
	require.Len(t, trail, 5)
	assert.Equal(t, "line-0", trail[0].Message)
	assert.Equal(t, now, trail[0].CreatedAt)

	require.NoError(t, repo.PruneBreadcrumbs(ctx, 2))

	trail, err = repo.ListBreadcrumbs(ctx)
	require.NoError(t, err)
	require.Len(t, trail, 2)
	assert.Equal(t, "line-3", trail[0].Message)
	assert.Equal(t, "line-4", trail[1].Message)

	err = repo.PruneBreadcrumbs(ctx, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotValid))
}

func TestRepositoryPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	repo, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: dbPath, Logger: log.Noop})
	require.NoError(t, err)
	require.NoError(t, repo.CreateReport(ctx, reportFixture("report-1")))
	require.NoError(t, repo.Close())

	reopened, err := sqlite.NewRepository(ctx, sqlite.RepositoryConfig{DBPath: dbPath, Logger: log.Noop})
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.GetReport(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, "connection reset", got.Error)
	assert.Len(t, got.Breadcrumbs, 2)
}
