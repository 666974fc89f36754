package outlier

import (
	"fmt"

	"github.com/sartorproj/gooutlier/timeseries"
)

// Detector flags outliers in a series. The returned mask is aligned with the
// series.
type Detector interface {
	Detect(series *timeseries.Series) (timeseries.Mask, error)
}

// ZNormDetector flags points whose z-norm exceeds Threshold.
type ZNormDetector struct {
	Threshold float64
	Options   Options
}

// Detect implements Detector.
func (d ZNormDetector) Detect(series *timeseries.Series) (timeseries.Mask, error) {
	return DetectZNorm(series, d.Threshold, d.Options)
}

// MinThresholdDetector flags readings below Threshold.
type MinThresholdDetector struct {
	Threshold float64
}

// Detect implements Detector.
func (d MinThresholdDetector) Detect(series *timeseries.Series) (timeseries.Mask, error) {
	return DetectMinThreshold(series, d.Threshold), nil
}

// MaxThresholdDetector flags readings above Threshold.
type MaxThresholdDetector struct {
	Threshold float64
}

// Detect implements Detector.
func (d MaxThresholdDetector) Detect(series *timeseries.Series) (timeseries.Mask, error) {
	return DetectMaxThreshold(series, d.Threshold), nil
}

// Detect runs the detectors in order and unions their masks. The first
// failing detector aborts the whole run. With no detectors nothing is flagged.
func Detect(series *timeseries.Series, detectors ...Detector) (timeseries.Mask, error) {
	masks := make([]timeseries.Mask, 0, len(detectors)+1)
	masks = append(masks, timeseries.NewMask(series.Len()))
	for i, d := range detectors {
		m, err := d.Detect(series)
		if err != nil {
			return nil, fmt.Errorf("detector %d (%T): %w", i, d, err)
		}
		masks = append(masks, m)
	}
	return timeseries.Union(masks...)
}
