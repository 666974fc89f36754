package timeseries

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, math.NaN(), 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
	if s.Values[2].Valid {
		t.Errorf("Expected NaN at index 2 to be missing, got %v", s.Values[2])
	}
	for i, v := range s.Values {
		if i == 2 {
			continue
		}
		if !v.Valid || v.Float64 != values[i] {
			t.Errorf("Expected value %f at index %d, got %v", values[i], i, v)
		}
	}
	for i := 1; i < len(s.Timestamps); i++ {
		if d := s.Timestamps[i].Sub(s.Timestamps[i-1]); d != time.Hour {
			t.Errorf("Expected hourly spacing at index %d, got %s", i, d)
		}
	}
}

func TestNewWithTimestamps(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	ts := []time.Time{base, base.Add(15 * time.Minute), base.Add(30 * time.Minute)}

	tests := []struct {
		name    string
		ts      []time.Time
		values  []Value
		wantErr error
	}{
		{"ok", ts, []Value{Some(1), Missing, Some(3)}, nil},
		{"length", ts, []Value{Some(1)}, ErrLengthMismatch},
		{"duplicate", []time.Time{base, base}, []Value{Some(1), Some(2)}, ErrUnsorted},
		{"descending", []time.Time{ts[1], ts[0]}, []Value{Some(1), Some(2)}, ErrUnsorted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewWithTimestamps(tt.ts, tt.values)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s.Len() != len(tt.values) {
				t.Errorf("Expected length %d, got %d", len(tt.values), s.Len())
			}
		})
	}
}

func TestObservedAndMissing(t *testing.T) {
	s := New([]float64{math.NaN(), 1, 2, math.NaN(), 2})

	obs := s.Observed()
	expected := []float64{1, 2, 2}
	if len(obs) != len(expected) {
		t.Fatalf("Expected %d observed values, got %d", len(expected), len(obs))
	}
	for i, v := range obs {
		if v != expected[i] {
			t.Errorf("Expected %f at index %d, got %f", expected[i], i, v)
		}
	}

	if s.MissingCount() != 2 {
		t.Errorf("Expected 2 missing, got %d", s.MissingCount())
	}
	if s.Distinct() != 2 {
		t.Errorf("Expected 2 distinct values, got %d", s.Distinct())
	}
}

func TestIntervals(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s, err := NewWithTimestamps(
		[]time.Time{base, base.Add(time.Hour), base.Add(3 * time.Hour)},
		[]Value{Some(1), Some(2), Some(3)},
	)
	if err != nil {
		t.Fatal(err)
	}

	got := s.Intervals()
	if len(got) != 2 || got[0] != time.Hour || got[1] != 2*time.Hour {
		t.Errorf("Unexpected intervals %v", got)
	}

	if n := len(New([]float64{1}).Intervals()); n != 0 {
		t.Errorf("Expected no intervals for a single point, got %d", n)
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	sliced := s.Slice(1, 4)

	expected := []float64{2, 3, 4}
	if len(sliced.Values) != len(expected) {
		t.Errorf("Expected length %d, got %d", len(expected), len(sliced.Values))
	}

	for i, v := range sliced.Values {
		if math.Abs(v.Float64-expected[i]) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %v", expected[i], i, v)
		}
	}

	if empty := s.Slice(4, 2); empty.Len() != 0 {
		t.Errorf("Expected empty slice, got length %d", empty.Len())
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	copied := s.Copy()

	// Modify original
	s.Values[0] = Some(100)

	// Copy should be unchanged
	if copied.Values[0].Float64 != 1 {
		t.Errorf("Copy was modified when original changed")
	}
}

func TestMask(t *testing.T) {
	s := New([]float64{1, 2, 3, 4})
	m := Mask{false, true, false, true}

	cleaned, err := s.Mask(m)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i, v := range cleaned.Values {
		if m[i] == v.Valid {
			t.Errorf("Index %d: flagged=%v but value %v", i, m[i], v)
		}
		if !m[i] && v != s.Values[i] {
			t.Errorf("Index %d: expected %v, got %v", i, s.Values[i], v)
		}
	}

	// Original untouched
	if !s.Values[1].Valid {
		t.Errorf("Mask modified the original series")
	}

	if _, err := s.Mask(Mask{true}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Expected ErrLengthMismatch, got %v", err)
	}
}

func TestValueComparisons(t *testing.T) {
	if Missing.Less(math.Inf(1)) || Missing.Greater(math.Inf(-1)) {
		t.Errorf("Missing must never satisfy a comparison")
	}
	if !Some(1).Less(2) || Some(2).Less(2) {
		t.Errorf("Less must be strict")
	}
	if !Some(3).Greater(2) || Some(2).Greater(2) {
		t.Errorf("Greater must be strict")
	}
	if Some(math.NaN()).Valid {
		t.Errorf("NaN must become Missing")
	}
	if !math.IsNaN(Missing.OrNaN()) {
		t.Errorf("Expected NaN for Missing")
	}
	if Missing.String() != "NA" || Some(2.5).String() != "2.5" {
		t.Errorf("Unexpected string forms %q %q", Missing.String(), Some(2.5).String())
	}
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name    string
		masks   []Mask
		want    Mask
		wantErr bool
	}{
		{"none", nil, Mask{}, false},
		{"single", []Mask{{true, false}}, Mask{true, false}, false},
		{"or", []Mask{{true, false, false}, {false, false, true}}, Mask{true, false, true}, false},
		{"mismatch", []Mask{{true}, {true, false}}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Union(tt.masks...)
			if tt.wantErr {
				if !errors.Is(err, ErrLengthMismatch) {
					t.Fatalf("Expected ErrLengthMismatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected length %d, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Index %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestMaskIndices(t *testing.T) {
	m := Mask{false, true, true, false, true}
	if m.Count() != 3 {
		t.Errorf("Expected count 3, got %d", m.Count())
	}
	idx := m.Indices()
	expected := []int{1, 2, 4}
	for i := range expected {
		if idx[i] != expected[i] {
			t.Errorf("Expected index %d at %d, got %d", expected[i], i, idx[i])
		}
	}
}
