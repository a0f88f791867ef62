package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/flare/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestSettingsApply(t *testing.T) {
	tests := map[string]struct {
		settings model.Settings
		patch    model.SettingsPatch
		expected model.Settings
	}{
		"An empty patch should leave everything untouched.": {
			settings: model.Settings{Analytics: true, CrashReporting: true},
			patch:    model.SettingsPatch{},
			expected: model.Settings{Analytics: true, CrashReporting: true},
		},
		"A single flag patch should update only that flag.": {
			settings: model.Settings{Analytics: true, AnalyticsEcho: true},
			patch:    model.SettingsPatch{CrashReporting: boolPtr(true)},
			expected: model.Settings{Analytics: true, AnalyticsEcho: true, CrashReporting: true},
		},
		"A patch should be able to disable a flag explicitly.": {
			settings: model.Settings{Analytics: true, AnalyticsEcho: true, CrashReporting: true},
			patch:    model.SettingsPatch{AnalyticsEcho: boolPtr(false)},
			expected: model.Settings{Analytics: true, AnalyticsEcho: false, CrashReporting: true},
		},
		"A full patch should replace every flag.": {
			settings: model.Settings{Analytics: true, AnalyticsEcho: true, CrashReporting: true},
			patch: model.SettingsPatch{
				Analytics:      boolPtr(false),
				AnalyticsEcho:  boolPtr(false),
				CrashReporting: boolPtr(false),
			},
			expected: model.Settings{},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			got := test.settings.Apply(test.patch)

			assert.Equal(test.expected, got)
		})
	}
}
