package timeseries

import (
	"math"
	"strconv"
)

// Value is a reading that may be missing. The zero value is Missing.
type Value struct {
	Float64 float64
	Valid   bool
}

// Missing marks the absence of a reading at a timestamp.
var Missing = Value{}

// Some wraps v as a present reading. NaN is treated as missing.
func Some(v float64) Value {
	if math.IsNaN(v) {
		return Missing
	}
	return Value{Float64: v, Valid: true}
}

// FromFloats converts a float slice, mapping NaN to Missing.
func FromFloats(values []float64) []Value {
	out := make([]Value, len(values))
	for i, v := range values {
		out[i] = Some(v)
	}
	return out
}

// Less reports whether v is present and strictly below t.
func (v Value) Less(t float64) bool {
	return v.Valid && v.Float64 < t
}

// Greater reports whether v is present and strictly above t.
func (v Value) Greater(t float64) bool {
	return v.Valid && v.Float64 > t
}

// OrNaN returns the reading, or NaN if it is missing.
func (v Value) OrNaN() float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float64
}

func (v Value) String() string {
	if !v.Valid {
		return "NA"
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}
