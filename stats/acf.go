package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gooutlier/timeseries"
)

// ACF calculates the autocorrelation of values for lags 0 to maxLag.
// Missing readings are skipped: the mean and variance use present readings
// only and each lag sums over pairs where both readings are present.
// Returns nil for fewer than two present readings or zero variance.
func ACF(values []timeseries.Value, maxLag int) []float64 {
	n := len(values)
	if maxLag >= n {
		maxLag = n - 1
	}
	obs := timeseries.Observed(values)
	if maxLag < 0 || len(obs) < 2 {
		return nil
	}

	mean := stat.Mean(obs, nil)
	variance := 0.0
	for _, v := range obs {
		diff := v - mean
		variance += diff * diff
	}

	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			if values[i].Valid && values[i-k].Valid {
				sum += (values[i].Float64 - mean) * (values[i-k].Float64 - mean)
			}
		}
		acf[k] = sum / variance
	}

	return acf
}

// SignificantLags returns the lags where ACF values exceed confidence bounds.
func SignificantLags(values []float64, confBound float64) []int {
	var significant []int
	for i := 1; i < len(values); i++ { // Skip lag 0
		if math.Abs(values[i]) > confBound {
			significant = append(significant, i)
		}
	}
	return significant
}

// SeasonalPeriod returns the lag in [minLag, maxLag] where the ACF has its
// highest local peak above the 95% confidence bound (1.96/sqrt(n)), or 0 if
// there is none. Hourly readings with a daily cycle peak at 24.
func SeasonalPeriod(values []timeseries.Value, minLag, maxLag int) int {
	if minLag < 1 {
		minLag = 1
	}
	acf := ACF(values, maxLag+1)
	if acf == nil {
		return 0
	}
	bound := 1.96 / math.Sqrt(float64(len(values)))

	best, period := bound, 0
	for _, k := range SignificantLags(acf, bound) {
		if k < minLag || k >= len(acf)-1 || k > maxLag {
			continue
		}
		if acf[k] > best && acf[k] >= acf[k-1] && acf[k] >= acf[k+1] {
			best, period = acf[k], k
		}
	}
	return period
}
