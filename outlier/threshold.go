package outlier

import "github.com/sartorproj/gooutlier/timeseries"

// DetectMinThreshold flags readings strictly below threshold.
func DetectMinThreshold(series *timeseries.Series, threshold float64) timeseries.Mask {
	mask := timeseries.NewMask(series.Len())
	for i, v := range series.Values {
		mask[i] = v.Less(threshold)
	}
	return mask
}

// DetectMaxThreshold flags readings strictly above threshold.
func DetectMaxThreshold(series *timeseries.Series, threshold float64) timeseries.Mask {
	mask := timeseries.NewMask(series.Len())
	for i, v := range series.Values {
		mask[i] = v.Greater(threshold)
	}
	return mask
}
