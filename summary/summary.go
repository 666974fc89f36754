// Package summary describes a time series: covered dates, sampling
// frequency, moments, percentiles and the share of missing readings.
package summary

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gooutlier/stats"
	"github.com/sartorproj/gooutlier/timeseries"
)

// ErrEmptySeries is returned when summarizing a series without points.
var ErrEmptySeries = errors.New("summary: empty series")

// Keys lists the fixed keys of Summary.Map in order.
var Keys = []string{
	"dateStart", "dateEnd", "frequency", "mean", "sd", "min", "max",
	"p1", "p5", "p25", "p50", "p75", "p95", "p99",
}

var percentiles = []float64{1, 5, 25, 50, 75, 95, 99}

// Summary holds descriptive statistics of a series. Numeric fields ignore
// missing readings and are Missing when the series has none.
type Summary struct {
	DateStart time.Time
	DateEnd   time.Time
	Frequency time.Duration // Most common interval between timestamps

	Mean timeseries.Value
	SD   timeseries.Value // Population standard deviation
	Min  timeseries.Value
	Max  timeseries.Value

	P1  timeseries.Value
	P5  timeseries.Value
	P25 timeseries.Value
	P50 timeseries.Value
	P75 timeseries.Value
	P95 timeseries.Value
	P99 timeseries.Value

	// Extra carries caller-supplied entries reported alongside the statistics.
	Extra map[string]any
}

// Summarize computes the Summary of series. extra may be nil.
func Summarize(series *timeseries.Series, extra map[string]any) (*Summary, error) {
	if series.Len() == 0 || len(series.Timestamps) == 0 {
		return nil, ErrEmptySeries
	}

	s := &Summary{
		DateStart: series.Timestamps[0],
		DateEnd:   series.Timestamps[len(series.Timestamps)-1],
		Frequency: Frequency(series),
		Extra:     make(map[string]any, len(extra)),
	}
	for k, v := range extra {
		s.Extra[k] = v
	}

	obs := series.Observed()
	if len(obs) > 0 {
		mean, sd := stat.PopMeanStdDev(obs, nil)
		if len(obs) == 1 {
			sd = 0
		}
		s.Mean = timeseries.Some(mean)
		s.SD = timeseries.Some(sd)
		s.Min = timeseries.Some(floats.Min(obs))
		s.Max = timeseries.Some(floats.Max(obs))
	}

	ps, err := stats.Percentiles(series.Values, percentiles...)
	if err != nil {
		return nil, err
	}
	s.P1, s.P5, s.P25, s.P50, s.P75, s.P95, s.P99 = ps[0], ps[1], ps[2], ps[3], ps[4], ps[5], ps[6]

	return s, nil
}

// Frequency returns the most common interval between consecutive
// timestamps. Ties go to the interval seen first. A series with fewer than
// two points has frequency 0.
func Frequency(series *timeseries.Series) time.Duration {
	intervals := series.Intervals()
	counts := make(map[time.Duration]int, len(intervals))
	maxCount := 0
	for _, d := range intervals {
		counts[d]++
		maxCount = max(maxCount, counts[d])
	}
	for _, d := range intervals {
		if counts[d] == maxCount {
			return d
		}
	}
	return 0
}

// Map returns the summary keyed by Keys, merged with Extra. Extra entries
// override fixed keys of the same name. Missing statistics map to nil.
func (s *Summary) Map() map[string]any {
	m := map[string]any{
		"dateStart": s.DateStart,
		"dateEnd":   s.DateEnd,
		"frequency": s.Frequency,
		"mean":      orNil(s.Mean),
		"sd":        orNil(s.SD),
		"min":       orNil(s.Min),
		"max":       orNil(s.Max),
		"p1":        orNil(s.P1),
		"p5":        orNil(s.P5),
		"p25":       orNil(s.P25),
		"p50":       orNil(s.P50),
		"p75":       orNil(s.P75),
		"p95":       orNil(s.P95),
		"p99":       orNil(s.P99),
	}
	for k, v := range s.Extra {
		m[k] = v
	}
	return m
}

func orNil(v timeseries.Value) any {
	if !v.Valid {
		return nil
	}
	return v.Float64
}

// PercentageOfGaps returns the percentage of missing readings, rounded to
// two decimals. An empty series has no gaps.
func PercentageOfGaps(series *timeseries.Series) float64 {
	if series.Len() == 0 {
		return 0
	}
	ratio := float64(series.MissingCount()) / float64(series.Len()) * 100
	return math.Round(ratio*100) / 100
}
