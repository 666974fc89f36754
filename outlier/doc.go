// Package outlier detects and removes outliers in univariate time series.
//
// Detectors return a timeseries.Mask aligned with the input series; true
// marks an outlier. Missing readings are never flagged. Inputs are never
// modified.
//
// # Z-Norm Detection
//
// The z-norm of a reading is its absolute deviation from a trimmed mean,
// scaled by the trimmed standard deviation (see package stats). Readings
// outside the LowQ-HighQ percentile band are excluded from the baseline.
//
// Global mode uses one baseline for the whole series:
//
//	mask, err := outlier.DetectZNorm(series, 3, outlier.DefaultOptions())
//
// Rolling mode uses a baseline centered on each reading, which follows
// daily or seasonal cycles that a single baseline would misread:
//
//	mask, err := outlier.DetectZNorm(series, 3, outlier.Rolling(48))
//
// The scores themselves are available through ZNorm. A series with fewer
// than two distinct readings has no meaningful deviation and scores Missing
// everywhere.
//
// # Threshold Detection
//
//	low := outlier.DetectMinThreshold(series, 0)     // value < 0
//	high := outlier.DetectMaxThreshold(series, 5000) // value > 5000
//
// # Combining Detectors
//
// Every strategy is also a Detector; Detect unions their masks:
//
//	mask, err := outlier.Detect(series,
//	    outlier.ZNormDetector{Threshold: 3, Options: outlier.Rolling(48)},
//	    outlier.MaxThresholdDetector{Threshold: 5000},
//	    outlier.MinThresholdDetector{Threshold: 0},
//	)
//
// DetectOutliers offers the same through parallel lists of method names and
// thresholds and is kept for existing callers only.
//
// # Cleaning
//
//	cleaned, err := outlier.Clean(series, mask)
//
// # Errors
//
// Configuration problems are reported synchronously and wrap one of
// ErrInvalidConfiguration, ErrMissingParameter or ErrLengthMismatch.
// Degenerate data (constant series, zero spread) never causes an error.
package outlier
