package exchange

import "errors"

var (
	// ErrInvalidRate indicates a non-positive exchange rate.
	ErrInvalidRate = errors.New("exchange: rate must be > 0")
	// ErrNotPermutation indicates rank labels that are not a bijection of 0..K-1.
	ErrNotPermutation = errors.New("exchange: ranks do not form a permutation")
	// ErrEmpty indicates a permutation over zero replicas.
	ErrEmpty = errors.New("exchange: permutation must cover at least one replica")
	// ErrLengthMismatch indicates betas and permutation sizes differ.
	ErrLengthMismatch = errors.New("exchange: betas and permutation length differ")
	// ErrOutOfRange indicates a chain or rank index outside 0..K-1.
	ErrOutOfRange = errors.New("exchange: index out of range")
)
