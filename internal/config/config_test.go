package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gooutlier/outlier"
)

const sample = `
mode: rolling
low_q: 0
high_q: 95
window: 48
rules:
  - method: znorm
    threshold: 3.5
  - method: max_threshold
    threshold: 5000
logging:
  verbose: true
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	opts, err := c.Options()
	require.NoError(t, err)
	require.Equal(t, outlier.Options{Mode: outlier.ModeRolling, LowQ: 0, HighQ: 95, Window: 48}, opts)

	detectors, err := c.Detectors()
	require.NoError(t, err)
	require.Equal(t, []outlier.Detector{
		outlier.ZNormDetector{Threshold: 3.5, Options: opts},
		outlier.MaxThresholdDetector{Threshold: 5000},
	}, detectors)

	require.True(t, c.Logging.Verbose)
	require.Equal(t, "text", c.Logging.GetFormat())
}

func TestDefaults(t *testing.T) {
	c, err := Parse([]byte("rules: []\n"))
	require.NoError(t, err)

	opts, err := c.Options()
	require.NoError(t, err)
	require.Equal(t, outlier.DefaultOptions(), opts)

	var nilCfg *Config
	require.Equal(t, "global", nilCfg.GetMode())
	detectors, err := nilCfg.Detectors()
	require.NoError(t, err)
	require.Empty(t, detectors)

	d, err := Default().Detectors()
	require.NoError(t, err)
	require.Len(t, d, 2)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"unknown method", "rules:\n  - method: iqr\n    threshold: 1\n", outlier.ErrInvalidConfiguration},
		{"unknown mode", "mode: seasonal\nrules:\n  - method: znorm\n    threshold: 1\n", outlier.ErrInvalidConfiguration},
		{"rolling without window", "mode: rolling\nrules:\n  - method: znorm\n    threshold: 1\n", outlier.ErrMissingParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = c.Detectors()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Threshold rules alone do not need valid z-norm options.
	c, err := Parse([]byte("mode: rolling\nrules:\n  - method: min_threshold\n    threshold: 0\n"))
	require.NoError(t, err)
	_, err = c.Detectors()
	require.NoError(t, err)

	_, err = Parse([]byte("rules: {"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 48, c.Window)
	require.Len(t, c.Rules, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
