package outlier

import (
	"errors"

	"github.com/sartorproj/gooutlier/timeseries"
)

// Sentinel errors. Check with errors.Is; returned errors may wrap them with
// extra context.
var (
	// ErrInvalidConfiguration indicates an unknown mode or method, or an
	// option outside its domain (trimming band, negative window).
	ErrInvalidConfiguration = errors.New("outlier: invalid configuration")

	// ErrMissingParameter indicates that a mode was selected without one of
	// the parameters it needs, such as rolling mode without a window.
	ErrMissingParameter = errors.New("outlier: missing parameter")

	// ErrLengthMismatch indicates a mask that is not aligned with its series.
	ErrLengthMismatch = timeseries.ErrLengthMismatch
)
