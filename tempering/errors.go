package tempering

import "errors"

var (
	// ErrInvalidArgument is wrapped by every construction or run-parameter error.
	ErrInvalidArgument = errors.New("tempering: invalid argument")
	// ErrNoBetas indicates an empty inverse-temperature ladder.
	ErrNoBetas = errors.New("tempering: at least one beta is required")
	// ErrInvalidBeta indicates a NaN or infinite inverse temperature.
	ErrInvalidBeta = errors.New("tempering: beta must be finite")
	// ErrInvalidParameter indicates a NaN or infinite coupling or field.
	ErrInvalidParameter = errors.New("tempering: coupling and field must be finite")
	// ErrChainOutOfRange indicates a chain index outside 0..K-1.
	ErrChainOutOfRange = errors.New("tempering: chain index out of range")
)
