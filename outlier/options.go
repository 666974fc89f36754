package outlier

import (
	"fmt"

	"github.com/sartorproj/gooutlier/stats"
)

// Mode selects the baseline used to normalize deviations.
type Mode string

const (
	// ModeGlobal uses one baseline computed over the whole series.
	ModeGlobal Mode = "global"
	// ModeRolling uses a baseline computed over a window centered on each point.
	ModeRolling Mode = "rolling"
)

// ParseMode converts a mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	m := Mode(name)
	switch m {
	case ModeGlobal, ModeRolling:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q, want %q or %q", ErrInvalidConfiguration, name, ModeGlobal, ModeRolling)
}

// Options configures z-norm detection.
type Options struct {
	Mode  Mode
	LowQ  float64 // Lower percentile excluded from the baseline, in percent
	HighQ float64 // Upper percentile excluded from the baseline, in percent

	// Window is the width, in points, of the rolling baseline. Zero means
	// unset; it is required in rolling mode and ignored in global mode.
	Window int
}

// DefaultOptions returns global mode with a 2.5-97.5 trimming band.
func DefaultOptions() Options {
	return Options{
		Mode:  ModeGlobal,
		LowQ:  stats.DefaultLowQ,
		HighQ: stats.DefaultHighQ,
	}
}

// Rolling returns DefaultOptions switched to rolling mode with the given window.
func Rolling(window int) Options {
	o := DefaultOptions()
	o.Mode = ModeRolling
	o.Window = window
	return o
}

// Validate reports whether the options can be used for detection.
func (o Options) Validate() error {
	if _, err := ParseMode(string(o.Mode)); err != nil {
		return err
	}
	if err := stats.CheckBand(o.LowQ, o.HighQ); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if o.Mode != ModeRolling {
		return nil
	}
	switch {
	case o.Window == 0:
		return fmt.Errorf("%w: rolling mode requires a window", ErrMissingParameter)
	case o.Window < 0:
		return fmt.Errorf("%w: window must be positive, got %d", ErrInvalidConfiguration, o.Window)
	}
	return nil
}
