// Package main demonstrates outlier detection and cleaning on a synthetic
// hourly energy series with a daily cycle, injected spikes, sensor faults and
// gaps.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sartorproj/gooutlier/internal/config"
	"github.com/sartorproj/gooutlier/outlier"
	"github.com/sartorproj/gooutlier/stats"
	"github.com/sartorproj/gooutlier/summary"
	"github.com/sartorproj/gooutlier/timeseries"
)

type demoFlags struct {
	configPath string
	verbose    bool
	days       int
	seed       uint64
	spikes     int
	gaps       int
	autoWindow bool
}

func main() {
	var f demoFlags

	rootCmd := &cobra.Command{
		Use:   "demo",
		Short: "Detect and clean outliers in a synthetic energy series",
		Long: `Generates an hourly energy series, flags outliers with the configured
detectors and prints summaries before and after cleaning.

Examples:
  # Built-in profile (rolling z-norm over 24h plus a zero floor)
  demo --days 30

  # Detection profile from a file
  demo --config gooutlier.yaml --verbose`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	rootCmd.Flags().StringVarP(&f.configPath, "config", "c", "", "detection profile (default: built-in rolling profile)")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().IntVar(&f.days, "days", 14, "days of hourly readings to generate")
	rootCmd.Flags().Uint64Var(&f.seed, "seed", 1, "random seed")
	rootCmd.Flags().IntVar(&f.spikes, "spikes", 6, "number of injected spikes")
	rootCmd.Flags().IntVar(&f.gaps, "gaps", 10, "number of injected gaps")
	rootCmd.Flags().BoolVar(&f.autoWindow, "auto-window", false, "size the rolling window to the detected seasonal period")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(f demoFlags) error {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	logger := newLogger(f.verbose || cfg.Logging.Verbose, cfg.Logging.GetFormat())
	slog.SetDefault(logger)

	series, injected := generate(f)
	logger.Info("series generated", "points", series.Len(), "injected", injected)

	period := stats.SeasonalPeriod(series.Values, 2, 7*24)
	logger.Debug("seasonal period", "lag", period)
	if f.autoWindow {
		if period > 0 {
			cfg.Window = period
		} else {
			logger.Warn("no seasonal period found, keeping configured window", "window", cfg.Window)
		}
	}

	detectors, err := cfg.Detectors()
	if err != nil {
		return fmt.Errorf("build detectors: %w", err)
	}
	logger.Debug("profile loaded", "mode", cfg.GetMode(), "low_q", cfg.GetLowQ(),
		"high_q", cfg.GetHighQ(), "window", cfg.Window, "rules", len(cfg.Rules))

	printHeader("RAW SERIES")
	if err := report(series); err != nil {
		return err
	}

	printHeader("DETECTION")
	masks := make([]timeseries.Mask, len(detectors))
	for i, d := range detectors {
		m, err := d.Detect(series)
		if err != nil {
			return fmt.Errorf("rule %d: %w", i, err)
		}
		masks[i] = m
		fmt.Printf("  %-40s flagged %4d  %v\n", describe(cfg.Rules[i], cfg.GetMode()), m.Count(), m.Indices())
	}

	// Reference: the same z-norm threshold with a single global baseline.
	global := outlier.DefaultOptions()
	global.LowQ, global.HighQ = cfg.GetLowQ(), cfg.GetHighQ()
	if gm, err := outlier.DetectZNorm(series, 3, global); err == nil {
		fmt.Printf("  %-40s flagged %4d  %v\n", "znorm > 3 (global baseline)", gm.Count(), gm.Indices())
	} else {
		logger.Warn("global z-norm failed", "err", err)
	}

	mask, err := timeseries.Union(append([]timeseries.Mask{timeseries.NewMask(series.Len())}, masks...)...)
	if err != nil {
		return err
	}
	fmt.Printf("  %-40s flagged %4d\n", "union", mask.Count())

	cleaned, err := outlier.Clean(series, mask)
	if err != nil {
		return err
	}

	printHeader("CLEANED SERIES")
	return report(cleaned)
}

func newLogger(verbose bool, format string) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// generate builds the hourly series and returns the positions it tampered with.
func generate(f demoFlags) (*timeseries.Series, []int) {
	rng := rand.New(rand.NewPCG(f.seed, f.seed^0x9e3779b97f4a7c15))
	n := f.days * 24
	values := make([]float64, n)
	for i := range values {
		hour := float64(i % 24)
		// Trend + daily cycle peaking mid-afternoon + noise.
		values[i] = 400 + 0.5*float64(i) + 250*math.Sin(2*math.Pi*(hour-9)/24) + rng.NormFloat64()*15
	}

	var injected []int
	if n == 0 {
		return timeseries.New(values), injected
	}
	for k := 0; k < f.spikes; k++ {
		i := rng.IntN(n)
		if k%3 == 2 {
			values[i] = -values[i] // sensor fault
		} else {
			values[i] += 300 + rng.Float64()*300
		}
		injected = append(injected, i)
	}
	for k := 0; k < f.gaps; k++ {
		values[rng.IntN(n)] = math.NaN()
	}

	s := timeseries.New(values)
	s.Name = "synthetic_energy_kwh"
	return s, injected
}

func report(series *timeseries.Series) error {
	fmt.Printf("  gaps: %.2f%%\n", summary.PercentageOfGaps(series))

	sum, err := summary.Summarize(series, map[string]any{"name": series.Name})
	if err != nil {
		return err
	}
	m := sum.Map()
	for _, k := range slices.Concat(summary.Keys, []string{"name"}) {
		switch v := m[k].(type) {
		case float64:
			fmt.Printf("  %-10s %12.2f\n", k, v)
		case nil:
			fmt.Printf("  %-10s %12s\n", k, "NA")
		default:
			fmt.Printf("  %-10s %12v\n", k, v)
		}
	}
	return nil
}

func describe(r config.Rule, mode string) string {
	switch outlier.Method(r.Method) {
	case outlier.MethodMinThreshold:
		return fmt.Sprintf("value < %g", r.Threshold)
	case outlier.MethodMaxThreshold:
		return fmt.Sprintf("value > %g", r.Threshold)
	}
	return fmt.Sprintf("%s > %g (%s baseline)", r.Method, r.Threshold, mode)
}

func printHeader(title string) {
	fmt.Printf("\n%s\n%s\n%s\n", strings.Repeat("=", 80), title, strings.Repeat("=", 80))
}
