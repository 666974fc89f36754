// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrLengthMismatch is returned when two aligned sequences differ in length.
	ErrLengthMismatch = errors.New("timeseries: length mismatch")

	// ErrUnsorted is returned when timestamps are not strictly increasing.
	ErrUnsorted = errors.New("timeseries: timestamps must be strictly increasing")
)

// epoch anchors the synthetic timestamps produced by New.
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Series represents a time series with timestamps and possibly missing values.
type Series struct {
	Timestamps []time.Time
	Values     []Value
	Name       string
}

// New creates a new hourly time series from values. NaN entries become Missing.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	for i := range timestamps {
		timestamps[i] = epoch.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     FromFloats(values),
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
// Timestamps must be strictly increasing.
func NewWithTimestamps(timestamps []time.Time, values []Value) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%w: %d timestamps, %d values", ErrLengthMismatch, len(timestamps), len(values))
	}
	for i := 1; i < len(timestamps); i++ {
		if !timestamps[i].After(timestamps[i-1]) {
			return nil, fmt.Errorf("%w: index %d (%s) follows %s", ErrUnsorted, i,
				timestamps[i].Format(time.RFC3339), timestamps[i-1].Format(time.RFC3339))
		}
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Observed returns the present readings in order, skipping missing ones.
func (s *Series) Observed() []float64 {
	return Observed(s.Values)
}

// Observed returns the present readings of values in order.
func Observed(values []Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.Valid {
			out = append(out, v.Float64)
		}
	}
	return out
}

// MissingCount returns the number of missing readings.
func (s *Series) MissingCount() int {
	n := 0
	for _, v := range s.Values {
		if !v.Valid {
			n++
		}
	}
	return n
}

// Distinct returns the number of distinct present readings.
func (s *Series) Distinct() int {
	seen := make(map[float64]struct{})
	for _, v := range s.Values {
		if v.Valid {
			seen[v.Float64] = struct{}{}
		}
	}
	return len(seen)
}

// Intervals returns the gaps between consecutive timestamps.
func (s *Series) Intervals() []time.Duration {
	if len(s.Timestamps) < 2 {
		return []time.Duration{}
	}
	result := make([]time.Duration, len(s.Timestamps)-1)
	for i := 1; i < len(s.Timestamps); i++ {
		result[i-1] = s.Timestamps[i].Sub(s.Timestamps[i-1])
	}
	return result
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Timestamps: []time.Time{}, Values: []Value{}, Name: s.Name}
	}

	values := make([]Value, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]Value, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Mask returns a copy of the series where every flagged point is Missing.
func (s *Series) Mask(m Mask) (*Series, error) {
	if len(m) != len(s.Values) {
		return nil, fmt.Errorf("%w: mask has %d points, series has %d", ErrLengthMismatch, len(m), len(s.Values))
	}
	out := s.Copy()
	for i, flagged := range m {
		if flagged {
			out.Values[i] = Missing
		}
	}
	return out, nil
}
