package lattice

import "errors"

var (
	// ErrInvalidDimensions indicates width or height is not positive.
	ErrInvalidDimensions = errors.New("lattice: width and height must be > 0")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("lattice: all rows must have the same length")
	// ErrInvalidSpin indicates a cell value other than +1 or -1.
	ErrInvalidSpin = errors.New("lattice: spin must be +1 or -1")
	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = errors.New("lattice: coordinate out of range")
	// ErrAggregateMismatch indicates cached aggregates differ from a full recomputation.
	ErrAggregateMismatch = errors.New("lattice: cached aggregates do not match grid")
)
