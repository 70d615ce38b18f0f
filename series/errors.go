package series

import "errors"

var (
	// ErrChainCount indicates a snapshot batch whose size differs from the number of chains.
	ErrChainCount = errors.New("series: snapshot count does not match chain count")
	// ErrChainOutOfRange indicates a chain index outside 0..K-1.
	ErrChainOutOfRange = errors.New("series: chain index out of range")
	// ErrRankOutOfRange indicates a rank index outside 0..K-1.
	ErrRankOutOfRange = errors.New("series: rank index out of range")
	// ErrStepOutOfRange indicates a step index outside the recorded history.
	ErrStepOutOfRange = errors.New("series: step index out of range")
	// ErrUnknownObservable indicates an observable name or value that is not recognised.
	ErrUnknownObservable = errors.New("series: unknown observable")
	// ErrInconsistent indicates recorded rank labels that disagree with the recorded permutation.
	ErrInconsistent = errors.New("series: rank history disagrees with permutation history")
)
