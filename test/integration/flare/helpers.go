package flare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdkflare "github.com/slok/flare/pkg/flare"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	// DBDir is the directory where test databases are created. When empty
	// every test uses its own temporary directory.
	DBDir string
}

// NewConfig loads integration test configuration from environment variables.
// If the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "FLARE_INTEGRATION"
		envDBDir      = "FLARE_INTEGRATION_DB_DIR"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	return Config{DBDir: os.Getenv(envDBDir)}
}

// DBPath generates a unique database path for test isolation.
func (c Config) DBPath(t *testing.T, prefix string) string {
	t.Helper()

	dir := c.DBDir
	if dir == "" {
		dir = t.TempDir()
	}

	return filepath.Join(dir, fmt.Sprintf("%s-%d.db", prefix, time.Now().UnixNano()))
}

// NewTestSink creates a local crash sink on the given database path.
// The sink is closed when the test finishes.
func NewTestSink(t *testing.T, dbPath string) *sdkflare.LocalCrashSink {
	t.Helper()

	sink, err := sdkflare.NewLocalCrashSink(context.Background(), sdkflare.LocalCrashSinkConfig{
		DBPath: dbPath,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		// Best effort, tests may have closed the sink already.
		_ = sink.Close()
	})

	return sink
}
