// Package gooutlier detects and removes outliers in univariate time series.
//
// GoOutlier targets regularly sampled sensor readings such as energy or
// temperature, where readings can be missing and where daily or seasonal
// cycles make a single global threshold misleading.
//
// # Features
//
//   - Fixed lower and upper threshold detectors
//   - Z-norm detection against a trimmed mean and standard deviation,
//     computed globally or over a centered rolling window
//   - Composable detectors whose masks are unioned
//   - Cleaning of flagged readings
//   - Series summaries: date range, sampling frequency, moments,
//     percentiles and percentage of gaps
//
// # Quick Start
//
//	series := timeseries.New(readings) // NaN marks a gap
//	mask, err := outlier.Detect(series,
//	    outlier.ZNormDetector{Threshold: 3, Options: outlier.Rolling(24)},
//	    outlier.MinThresholdDetector{Threshold: 0},
//	)
//	cleaned, err := outlier.Clean(series, mask)
//	s, err := summary.Summarize(cleaned, nil)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Series, optional readings and masks
//   - stats: percentiles, trimmed statistics, rolling windows, ACF
//   - outlier: detectors, combination and cleaning
//   - summary: descriptive summaries and gap percentage
//
// All functions are pure: they never modify their inputs, hold no state
// between calls and may run concurrently on independent series.
package gooutlier
