package timeseries

import "fmt"

// Mask flags points of a series; true marks an outlier. A mask is aligned
// index by index with the series it was derived from.
type Mask []bool

// NewMask returns an all-false mask of length n.
func NewMask(n int) Mask {
	return make(Mask, n)
}

// Count returns the number of flagged points.
func (m Mask) Count() int {
	n := 0
	for _, f := range m {
		if f {
			n++
		}
	}
	return n
}

// Indices returns the positions of the flagged points in ascending order.
func (m Mask) Indices() []int {
	idx := make([]int, 0, m.Count())
	for i, f := range m {
		if f {
			idx = append(idx, i)
		}
	}
	return idx
}

// Union ORs masks positionally. All masks must have the same length.
// With no masks the result is an empty mask.
func Union(masks ...Mask) (Mask, error) {
	if len(masks) == 0 {
		return Mask{}, nil
	}
	n := len(masks[0])
	out := NewMask(n)
	for k, m := range masks {
		if len(m) != n {
			return nil, fmt.Errorf("%w: mask %d has %d points, want %d", ErrLengthMismatch, k, len(m), n)
		}
		for i, f := range m {
			out[i] = out[i] || f
		}
	}
	return out, nil
}
