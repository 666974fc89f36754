package outlier

import "github.com/sartorproj/gooutlier/timeseries"

// Clean returns a copy of series with every flagged point set to Missing.
// The mask must have the same length as the series.
func Clean(series *timeseries.Series, mask timeseries.Mask) (*timeseries.Series, error) {
	return series.Mask(mask)
}
