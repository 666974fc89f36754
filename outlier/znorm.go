package outlier

import (
	"math"

	"github.com/sartorproj/gooutlier/stats"
	"github.com/sartorproj/gooutlier/timeseries"
)

// ZNorm returns, for every point, the absolute deviation from the trimmed
// mean divided by the trimmed standard deviation. In global mode the baseline
// covers the whole series; in rolling mode each point uses the window
// centered on it.
//
// A series with fewer than two distinct readings yields Missing everywhere.
// Missing readings, and points whose baseline is undefined, yield Missing.
// A zero standard deviation yields +Inf for a nonzero deviation and Missing
// for a zero one.
func ZNorm(series *timeseries.Series, opts Options) ([]timeseries.Value, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	scores := make([]timeseries.Value, series.Len())
	if series.Distinct() < 2 {
		return scores, nil
	}

	switch opts.Mode {
	case ModeGlobal:
		mean, std, err := stats.TrimmedMeanStd(series.Values, opts.LowQ, opts.HighQ)
		if err != nil {
			return nil, err
		}
		for i, v := range series.Values {
			scores[i] = score(v, mean, std)
		}
	case ModeRolling:
		means, stds, err := stats.RollingTrimmed(series.Values, opts.Window, opts.LowQ, opts.HighQ)
		if err != nil {
			return nil, err
		}
		for i, v := range series.Values {
			scores[i] = score(v, means[i], stds[i])
		}
	}
	return scores, nil
}

func score(v, mean, std timeseries.Value) timeseries.Value {
	if !v.Valid || !mean.Valid || !std.Valid {
		return timeseries.Missing
	}
	dev := v.Float64 - mean.Float64
	if std.Float64 == 0 {
		if dev == 0 {
			return timeseries.Missing
		}
		return timeseries.Some(math.Inf(1))
	}
	// Some maps the NaN of Inf/Inf to Missing.
	return timeseries.Some(math.Abs(dev / std.Float64))
}

// DetectZNorm flags points whose z-norm is strictly greater than threshold.
// Missing and infinite scores are never flagged.
func DetectZNorm(series *timeseries.Series, threshold float64, opts Options) (timeseries.Mask, error) {
	scores, err := ZNorm(series, opts)
	if err != nil {
		return nil, err
	}
	mask := timeseries.NewMask(len(scores))
	for i, z := range scores {
		mask[i] = !math.IsInf(z.Float64, 0) && z.Greater(threshold)
	}
	return mask, nil
}
