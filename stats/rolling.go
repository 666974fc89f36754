package stats

import (
	"fmt"

	"github.com/sartorproj/gooutlier/timeseries"
)

// CenteredWindow returns the half-open range [start, end) of a window of the
// given width centered on position i of a sequence of length n. Even widths
// lean left: width 4 covers i-2..i+1. Windows are truncated at the sequence
// edges, so they always contain at least position i.
func CenteredWindow(i, n, window int) (start, end int) {
	start = i - window/2
	end = i + (window-1)/2 + 1
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	return start, end
}

// RollingTrimmed computes, for every position, the trimmed mean and
// population standard deviation of the centered window around it.
// Positions whose window holds no present reading get Missing.
func RollingTrimmed(values []timeseries.Value, window int, lowQ, highQ float64) (means, stds []timeseries.Value, err error) {
	if window < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	if err := CheckBand(lowQ, highQ); err != nil {
		return nil, nil, err
	}

	n := len(values)
	means = make([]timeseries.Value, n)
	stds = make([]timeseries.Value, n)
	for i := range values {
		start, end := CenteredWindow(i, n, window)
		means[i], stds[i] = trimmedMeanStd(values[start:end], lowQ, highQ)
	}
	return means, stds, nil
}
