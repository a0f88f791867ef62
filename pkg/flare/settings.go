package flare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	settingsio "github.com/slok/flare/internal/settings/io"
)

// LoadSettingsFile loads a settings patch from a YAML file. Keys absent
// from the file are left nil, so applying the patch with
// [Logger.Configure] keeps their current values.
//
// File format:
//
//	analytics: true
//	analytics_echo: false
//	crash_reporting: true
func LoadSettingsFile(ctx context.Context, path string) (SettingsPatch, error) {
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	repo := settingsio.NewSettingsYAMLRepository(os.DirFS(dir))
	patch, err := repo.GetPatch(ctx, file)
	if err != nil {
		return SettingsPatch{}, fmt.Errorf("could not load settings file: %w", err)
	}

	return fromInternalSettingsPatch(patch), nil
}
