package exchange

import (
	"fmt"

	"github.com/katalvlaran/remc/mcmc"
)

// Round performs one exchange step on p.
//
// For each pair (r, r+1) selected by parity, in increasing r:
//
//	L = ChainOf(r), R = ChainOf(r+1)
//	Δ = mcmc.ExchangeLogRatio(betas[r], betas[r+1], energyOf(L), energyOf(R))
//
// and the pair is swapped when mcmc.ExchangeAccept(rng, Δ) holds. Pairs of
// one parity are disjoint, so the order of attempts only fixes the order of
// random draws.
//
// Returns ErrLengthMismatch if len(betas) != p.Len().
// Complexity: O(K).
func Round(p *Permutation, betas []float64, energyOf func(Chain) float64, parity Parity, rng mcmc.Rand) (RoundResult, error) {
	if len(betas) != p.Len() {
		return RoundResult{}, fmt.Errorf("betas=%d replicas=%d: %w", len(betas), p.Len(), ErrLengthMismatch)
	}
	res := RoundResult{Parity: parity}
	for _, r := range LowerRanks(parity, p.Len()) {
		left, right := p.ChainOf(r), p.ChainOf(r+1)
		delta := mcmc.ExchangeLogRatio(betas[r], betas[r+1], energyOf(left), energyOf(right))
		pr := PairResult{Lower: r, Left: left, Right: right, Delta: delta}
		if mcmc.ExchangeAccept(rng, delta) {
			// r+1 < Len by construction of LowerRanks.
			_ = p.SwapRanks(r)
			pr.Accepted = true
		}
		res.Pairs = append(res.Pairs, pr)
	}
	return res, nil
}
