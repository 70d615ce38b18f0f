package series

import (
	"fmt"

	"github.com/katalvlaran/remc/exchange"
	"github.com/katalvlaran/remc/lattice"
)

// Recorder stores, per chain, the step-indexed snapshots and held ranks, and
// per step the chain occupying each rank.
type Recorder struct {
	k         int
	snapshots [][]lattice.Observables // [chain][step]
	ranks     [][]exchange.Rank       // [chain][step]
	occupants []exchange.Chain        // flattened [step][rank]
}

// NewRecorder starts a history with the initial sample (step 0).
// Returns ErrChainCount if len(initial) != perm.Len().
func NewRecorder(initial []lattice.Observables, perm *exchange.Permutation) (*Recorder, error) {
	k := perm.Len()
	if len(initial) != k {
		return nil, fmt.Errorf("initial=%d chains=%d: %w", len(initial), k, ErrChainCount)
	}
	r := &Recorder{
		k:         k,
		snapshots: make([][]lattice.Observables, k),
		ranks:     make([][]exchange.Rank, k),
	}
	r.append(initial, perm)
	return r, nil
}

// Record appends one step: snapshot c belongs to chain c, and perm is the
// chain↔rank mapping after the step.
// Returns ErrChainCount on a size mismatch; nothing is appended then.
func (r *Recorder) Record(snapshots []lattice.Observables, perm *exchange.Permutation) error {
	if len(snapshots) != r.k || perm.Len() != r.k {
		return fmt.Errorf("snapshots=%d permutation=%d chains=%d: %w",
			len(snapshots), perm.Len(), r.k, ErrChainCount)
	}
	r.append(snapshots, perm)
	return nil
}

func (r *Recorder) append(snapshots []lattice.Observables, perm *exchange.Permutation) {
	for c := 0; c < r.k; c++ {
		r.snapshots[c] = append(r.snapshots[c], snapshots[c])
		r.ranks[c] = append(r.ranks[c], perm.RankOf(exchange.Chain(c)))
	}
	for rank := 0; rank < r.k; rank++ {
		r.occupants = append(r.occupants, perm.ChainOf(exchange.Rank(rank)))
	}
}

// Chains returns the number of chains K.
func (r *Recorder) Chains() int { return r.k }

// Len returns the number of recorded samples: steps taken + 1.
func (r *Recorder) Len() int { return len(r.snapshots[0]) }

// Chain returns chain c's own series of obs, in step order.
func (r *Recorder) Chain(c exchange.Chain, obs Observable) ([]float64, error) {
	if c < 0 || int(c) >= r.k {
		return nil, fmt.Errorf("chain %d: %w", c, ErrChainOutOfRange)
	}
	if !obs.Valid() {
		return nil, fmt.Errorf("%v: %w", obs, ErrUnknownObservable)
	}
	out := make([]float64, len(r.snapshots[c]))
	for n, s := range r.snapshots[c] {
		out[n] = obs.Of(s)
	}
	return out, nil
}

// Snapshots returns a copy of chain c's raw snapshots.
func (r *Recorder) Snapshots(c exchange.Chain) ([]lattice.Observables, error) {
	if c < 0 || int(c) >= r.k {
		return nil, fmt.Errorf("chain %d: %w", c, ErrChainOutOfRange)
	}
	return append([]lattice.Observables(nil), r.snapshots[c]...), nil
}

// RankHistory returns a copy of the rank chain c held at each step.
func (r *Recorder) RankHistory(c exchange.Chain) ([]exchange.Rank, error) {
	if c < 0 || int(c) >= r.k {
		return nil, fmt.Errorf("chain %d: %w", c, ErrChainOutOfRange)
	}
	return append([]exchange.Rank(nil), r.ranks[c]...), nil
}

// ChainOfRankAt returns the chain that occupied rank at step n.
func (r *Recorder) ChainOfRankAt(rank exchange.Rank, n int) (exchange.Chain, error) {
	if rank < 0 || int(rank) >= r.k {
		return 0, fmt.Errorf("rank %d: %w", rank, ErrRankOutOfRange)
	}
	if n < 0 || n >= r.Len() {
		return 0, fmt.Errorf("step %d of %d: %w", n, r.Len(), ErrStepOutOfRange)
	}
	return r.occupants[n*r.k+int(rank)], nil
}

// PermutationAt rebuilds the chain↔rank mapping recorded at step n.
func (r *Recorder) PermutationAt(n int) (*exchange.Permutation, error) {
	if n < 0 || n >= r.Len() {
		return nil, fmt.Errorf("step %d of %d: %w", n, r.Len(), ErrStepOutOfRange)
	}
	ranks := make([]exchange.Rank, r.k)
	for c := 0; c < r.k; c++ {
		ranks[c] = r.ranks[c][n]
	}
	return exchange.NewPermutation(ranks)
}

// Reconstruct returns the trajectory of obs at rank: element n is the value
// recorded at step n by the chain occupying rank at step n.
// Complexity: O(steps).
func (r *Recorder) Reconstruct(rank exchange.Rank, obs Observable) ([]float64, error) {
	if rank < 0 || int(rank) >= r.k {
		return nil, fmt.Errorf("rank %d: %w", rank, ErrRankOutOfRange)
	}
	if !obs.Valid() {
		return nil, fmt.Errorf("%v: %w", obs, ErrUnknownObservable)
	}
	n := r.Len()
	out := make([]float64, n)
	for step := 0; step < n; step++ {
		c := r.occupants[step*r.k+int(rank)]
		out[step] = obs.Of(r.snapshots[c][step])
	}
	return out, nil
}

// ReconstructAll returns Reconstruct(rank, obs) for every rank, indexed by rank.
// Complexity: O(K·steps).
func (r *Recorder) ReconstructAll(obs Observable) ([][]float64, error) {
	out := make([][]float64, r.k)
	for rank := 0; rank < r.k; rank++ {
		s, err := r.Reconstruct(exchange.Rank(rank), obs)
		if err != nil {
			return nil, err
		}
		out[rank] = s
	}
	return out, nil
}

// Validate checks at every step that the recorded occupants and the rank
// labels held by chains are mutual inverses.
// Complexity: O(K·steps).
func (r *Recorder) Validate() error {
	for n := 0; n < r.Len(); n++ {
		for rank := 0; rank < r.k; rank++ {
			c := r.occupants[n*r.k+rank]
			if int(c) < 0 || int(c) >= r.k || r.ranks[c][n] != exchange.Rank(rank) {
				return fmt.Errorf("step %d rank %d chain %d: %w", n, rank, c, ErrInconsistent)
			}
		}
	}
	return nil
}
