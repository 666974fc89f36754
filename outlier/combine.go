package outlier

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/sartorproj/gooutlier/timeseries"
)

// Method names a detection strategy.
type Method string

const (
	MethodZNorm        Method = "znorm"
	MethodMaxThreshold Method = "max_threshold"
	MethodMinThreshold Method = "min_threshold"
)

// ParseMethod converts a method name into a Method.
func ParseMethod(name string) (Method, error) {
	m := Method(name)
	switch m {
	case MethodZNorm, MethodMaxThreshold, MethodMinThreshold:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown method %q, want %q, %q or %q",
		ErrInvalidConfiguration, name, MethodZNorm, MethodMaxThreshold, MethodMinThreshold)
}

// NewDetector builds the Detector for a method. opts is only used by
// MethodZNorm and is validated there.
func NewDetector(method Method, threshold float64, opts Options) (Detector, error) {
	switch method {
	case MethodZNorm:
		if err := opts.Validate(); err != nil {
			return nil, err
		}
		return ZNormDetector{Threshold: threshold, Options: opts}, nil
	case MethodMaxThreshold:
		return MaxThresholdDetector{Threshold: threshold}, nil
	case MethodMinThreshold:
		return MinThresholdDetector{Threshold: threshold}, nil
	}
	_, err := ParseMethod(string(method))
	return nil, err
}

var deprecationOnce sync.Once

// DetectOutliers applies methods[i] with thresholds[i], in order, and unions
// the resulting masks. Every method is checked before any detection runs;
// an unknown one fails with ErrInvalidConfiguration and no mask.
//
// Deprecated: build detectors with NewDetector (or the detector types
// directly) and combine them with Detect.
func DetectOutliers(series *timeseries.Series, thresholds []float64, methods []Method, opts Options) (timeseries.Mask, error) {
	deprecationOnce.Do(func() {
		slog.Warn("outlier.DetectOutliers is deprecated; compose detectors with outlier.Detect")
	})

	if len(thresholds) != len(methods) {
		return nil, fmt.Errorf("%w: %d methods but %d thresholds", ErrInvalidConfiguration, len(methods), len(thresholds))
	}
	detectors := make([]Detector, len(methods))
	for i, m := range methods {
		d, err := NewDetector(m, thresholds[i], opts)
		if err != nil {
			return nil, err
		}
		detectors[i] = d
	}
	return Detect(series, detectors...)
}
