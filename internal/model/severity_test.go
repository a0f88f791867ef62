package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slok/flare/internal/model"
)

func TestSeverityIconAndLabel(t *testing.T) {
	tests := map[string]struct {
		severity model.Severity
		expIcon  string
		expLabel string
	}{
		"Info should render the speaking head glyph.": {
			severity: model.SeverityInfo,
			expIcon:  "🗣",
			expLabel: "INFO",
		},
		"Warning should render the warning glyph.": {
			severity: model.SeverityWarning,
			expIcon:  "⚠",
			expLabel: "WARNING",
		},
		"Error should render the cross mark glyph.": {
			severity: model.SeverityError,
			expIcon:  "❌",
			expLabel: "ERROR",
		},
		"Success should render the check mark glyph.": {
			severity: model.SeveritySuccess,
			expIcon:  "✅",
			expLabel: "SUCCESS",
		},
		"Analytic should render the chart glyph.": {
			severity: model.SeverityAnalytic,
			expIcon:  "📈",
			expLabel: "ANALYTIC",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(test.expIcon, test.severity.Icon())
			assert.Equal(test.expLabel, test.severity.Label())
		})
	}
}

func TestSeverityValidate(t *testing.T) {
	tests := map[string]struct {
		severity model.Severity
		expErr   bool
	}{
		"A known severity should be valid.": {
			severity: model.SeveritySuccess,
		},
		"An empty severity should fail.": {
			severity: model.Severity(""),
			expErr:   true,
		},
		"An unknown severity should fail.": {
			severity: model.Severity("verbose"),
			expErr:   true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)

			err := test.severity.Validate()

			if test.expErr {
				assert.ErrorIs(err, model.ErrNotValid)
			} else {
				assert.NoError(err)
			}
		})
	}
}
