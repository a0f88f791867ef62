package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/slok/flare/internal/model"
)

// SettingsYAMLRepository loads logger settings patches from YAML files.
type SettingsYAMLRepository struct {
	fs fs.FS
}

// NewSettingsYAMLRepository creates a new YAML settings repository.
func NewSettingsYAMLRepository(filesystem fs.FS) *SettingsYAMLRepository {
	return &SettingsYAMLRepository{fs: filesystem}
}

// GetPatch loads a settings patch from a YAML file. Keys absent from the
// file are left nil so applying the patch keeps their current values.
func (r *SettingsYAMLRepository) GetPatch(ctx context.Context, path string) (model.SettingsPatch, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.SettingsPatch{}, fmt.Errorf("reading settings file: %w", err)
	}

	if ctx.Err() != nil {
		return model.SettingsPatch{}, ctx.Err()
	}

	var s settingsFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return model.SettingsPatch{}, fmt.Errorf("parsing YAML: %w", err)
	}

	return s.toModel(), nil
}

// settingsFile represents the YAML structure for logger settings.
type settingsFile struct {
	Analytics      *bool `yaml:"analytics"`
	AnalyticsEcho  *bool `yaml:"analytics_echo"`
	CrashReporting *bool `yaml:"crash_reporting"`
}

func (s settingsFile) toModel() model.SettingsPatch {
	return model.SettingsPatch{
		Analytics:      s.Analytics,
		AnalyticsEcho:  s.AnalyticsEcho,
		CrashReporting: s.CrashReporting,
	}
}
