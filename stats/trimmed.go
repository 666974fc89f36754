package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gooutlier/timeseries"
)

// Default trimming band, in percent.
const (
	DefaultLowQ  = 2.5
	DefaultHighQ = 97.5
)

// CheckBand validates a trimming band.
func CheckBand(lowQ, highQ float64) error {
	if err := checkPercentile(lowQ); err != nil {
		return err
	}
	if err := checkPercentile(highQ); err != nil {
		return err
	}
	if lowQ >= highQ {
		return fmt.Errorf("%w: low %g must be below high %g", ErrInvalidQuantiles, lowQ, highQ)
	}
	return nil
}

// Trim returns the present readings lying within the [lowQ, highQ]
// percentile band, both ends inclusive, in their original order.
func Trim(values []timeseries.Value, lowQ, highQ float64) ([]float64, error) {
	if err := CheckBand(lowQ, highQ); err != nil {
		return nil, err
	}
	return trim(values, lowQ, highQ), nil
}

func trim(values []timeseries.Value, lowQ, highQ float64) []float64 {
	sorted := sortedObserved(values)
	if len(sorted) == 0 {
		return []float64{}
	}
	lo := percentileSorted(sorted, lowQ)
	hi := percentileSorted(sorted, highQ)

	kept := make([]float64, 0, len(sorted))
	for _, v := range values {
		if v.Valid && lo <= v.Float64 && v.Float64 <= hi {
			kept = append(kept, v.Float64)
		}
	}
	return kept
}

// TrimmedMean returns the mean of the readings left after Trim, or Missing
// if nothing is left.
func TrimmedMean(values []timeseries.Value, lowQ, highQ float64) (timeseries.Value, error) {
	mean, _, err := TrimmedMeanStd(values, lowQ, highQ)
	return mean, err
}

// TrimmedStd returns the population standard deviation (divisor N) of the
// readings left after Trim, or Missing if nothing is left.
func TrimmedStd(values []timeseries.Value, lowQ, highQ float64) (timeseries.Value, error) {
	_, std, err := TrimmedMeanStd(values, lowQ, highQ)
	return std, err
}

// TrimmedMeanStd computes TrimmedMean and TrimmedStd with a single trim.
func TrimmedMeanStd(values []timeseries.Value, lowQ, highQ float64) (mean, std timeseries.Value, err error) {
	if err := CheckBand(lowQ, highQ); err != nil {
		return timeseries.Missing, timeseries.Missing, err
	}
	mean, std = trimmedMeanStd(values, lowQ, highQ)
	return mean, std, nil
}

func trimmedMeanStd(values []timeseries.Value, lowQ, highQ float64) (mean, std timeseries.Value) {
	kept := trim(values, lowQ, highQ)
	switch len(kept) {
	case 0:
		return timeseries.Missing, timeseries.Missing
	case 1:
		return timeseries.Some(kept[0]), timeseries.Some(0)
	}
	m, s := stat.PopMeanStdDev(kept, nil)
	if math.IsNaN(s) {
		// Infinite readings leave the spread undefined.
		return timeseries.Some(m), timeseries.Missing
	}
	return timeseries.Some(m), timeseries.Some(s)
}
