package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gooutlier/internal/config"
	"github.com/sartorproj/gooutlier/outlier"
)

func TestGenerate(t *testing.T) {
	f := demoFlags{days: 3, seed: 7, spikes: 4, gaps: 5}
	s, injected := generate(f)
	require.Equal(t, 72, s.Len())
	require.Len(t, injected, 4)
	require.NotZero(t, s.MissingCount())

	again, _ := generate(f)
	require.Equal(t, s.Values, again.Values, "same seed, same series")

	empty, injected := generate(demoFlags{spikes: 3})
	require.Zero(t, empty.Len())
	require.Empty(t, injected)
}

func TestRun(t *testing.T) {
	require.NoError(t, run(demoFlags{days: 7, seed: 1, spikes: 6, gaps: 10, autoWindow: true}))

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: rolling\nrules:\n  - method: znorm\n    threshold: 3\n"), 0o644))
	err := run(demoFlags{configPath: path, days: 2, seed: 1})
	require.ErrorIs(t, err, outlier.ErrMissingParameter)

	require.Error(t, run(demoFlags{configPath: filepath.Join(t.TempDir(), "nope.yaml"), days: 1}))
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "value < 0", describe(config.Rule{Method: "min_threshold", Threshold: 0}, "global"))
	require.Equal(t, "value > 5000", describe(config.Rule{Method: "max_threshold", Threshold: 5000}, "global"))
	require.Equal(t, "znorm > 3 (rolling baseline)", describe(config.Rule{Method: "znorm", Threshold: 3}, "rolling"))
}
