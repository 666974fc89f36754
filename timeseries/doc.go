// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing regularly sampled
// readings (energy, temperature, ...) where individual readings may be absent,
// and the Mask type used to flag points of a series.
//
// # Missing Readings
//
// A reading is a Value. The zero Value is Missing; present readings are made
// with Some, which maps NaN to Missing:
//
//	v := timeseries.Some(21.5)
//	if !v.Valid {
//	    // missing
//	}
//
// Missing readings never satisfy a comparison:
//
//	timeseries.Missing.Less(10)    // false
//	timeseries.Missing.Greater(10) // false
//
// # Creating a Series
//
// Create an hourly series from a slice (NaN marks a gap):
//
//	series := timeseries.New([]float64{100, 102, math.NaN(), 103})
//
// Or with explicit, strictly increasing timestamps:
//
//	series, err := timeseries.NewWithTimestamps(times, values)
//
// # Masks
//
// Masks are produced by the outlier detectors and are aligned with the
// series they came from:
//
//	m, err := timeseries.Union(m1, m2)  // positional OR
//	n := m.Count()
//	cleaned, err := series.Mask(m)      // flagged points become Missing
//
// Every operation returns a new value; a Series is never modified in place.
package timeseries
