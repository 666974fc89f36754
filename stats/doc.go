// Package stats provides robust descriptive statistics for time series
// readings that may contain missing values.
//
// Every function ignores Missing readings and reports an undefined result
// as Missing instead of NaN.
//
// # Percentiles
//
// Percentiles use linear interpolation between ranked values:
//
//	p95, err := stats.Percentile(series.Values, 95)
//	ps, err := stats.Percentiles(series.Values, 1, 50, 99)
//
// # Trimmed Statistics
//
// The trimmed mean and standard deviation are computed only over readings
// inside a percentile band, both bounds inclusive, so extreme tails do not
// distort the baseline:
//
//	mean, err := stats.TrimmedMean(series.Values, 2.5, 97.5)
//	std, err := stats.TrimmedStd(series.Values, 2.5, 97.5)
//
//	// Both with a single trim
//	mean, std, err := stats.TrimmedMeanStd(series.Values, stats.DefaultLowQ, stats.DefaultHighQ)
//
// The standard deviation is the population one (divisor N).
//
// # Rolling Windows
//
// RollingTrimmed applies the trimmed estimators over a window centered on
// each position, truncated at the edges of the series:
//
//	means, stds, err := stats.RollingTrimmed(series.Values, 24, 2.5, 97.5)
//
// Use CenteredWindow to obtain the bounds used for a given position.
package stats
