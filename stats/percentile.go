package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/sartorproj/gooutlier/timeseries"
)

var (
	// ErrInvalidQuantiles is returned for percentiles outside [0, 100] or a
	// trimming band whose low bound is not below its high bound.
	ErrInvalidQuantiles = errors.New("stats: invalid percentile")

	// ErrInvalidWindow is returned for rolling windows narrower than one point.
	ErrInvalidWindow = errors.New("stats: window must be at least 1")
)

// Percentile returns the q-th percentile (0-100) of the present readings,
// interpolating linearly between ranked values. Missing readings are ignored;
// if none are present the result is Missing.
func Percentile(values []timeseries.Value, q float64) (timeseries.Value, error) {
	if err := checkPercentile(q); err != nil {
		return timeseries.Missing, err
	}
	sorted := sortedObserved(values)
	if len(sorted) == 0 {
		return timeseries.Missing, nil
	}
	return timeseries.Some(percentileSorted(sorted, q)), nil
}

// Percentiles is Percentile for several q at once, sorting only once.
func Percentiles(values []timeseries.Value, qs ...float64) ([]timeseries.Value, error) {
	for _, q := range qs {
		if err := checkPercentile(q); err != nil {
			return nil, err
		}
	}
	out := make([]timeseries.Value, len(qs))
	sorted := sortedObserved(values)
	if len(sorted) == 0 {
		return out, nil
	}
	for i, q := range qs {
		out[i] = timeseries.Some(percentileSorted(sorted, q))
	}
	return out, nil
}

func checkPercentile(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 100 {
		return fmt.Errorf("%w: %g not in [0, 100]", ErrInvalidQuantiles, q)
	}
	return nil
}

func sortedObserved(values []timeseries.Value) []float64 {
	sorted := timeseries.Observed(values)
	sort.Float64s(sorted)
	return sorted
}

// percentileSorted expects a non-empty ascending slice.
func percentileSorted(sorted []float64, q float64) float64 {
	rank := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if hi >= len(sorted) {
		hi = len(sorted) - 1
	}
	frac := rank - float64(lo)
	if frac == 0 || sorted[lo] == sorted[hi] {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
