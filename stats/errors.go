package stats

import "errors"

var (
	// ErrEmptySample indicates an empty sample, including one produced by
	// trimming or striding a longer series.
	ErrEmptySample = errors.New("stats: empty sample")
	// ErrNegativeIndex indicates a negative start or burn-in.
	ErrNegativeIndex = errors.New("stats: index must be >= 0")
	// ErrInvalidStep indicates a non-positive or non-finite range step.
	ErrInvalidStep = errors.New("stats: step must be finite and > 0")
	// ErrInvalidResamples indicates a non-positive bootstrap resample count.
	ErrInvalidResamples = errors.New("stats: bootstrap resamples must be > 0")
	// ErrInvalidSites indicates a non-positive lattice site count.
	ErrInvalidSites = errors.New("stats: site count must be > 0")
)
