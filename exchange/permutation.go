package exchange

import "fmt"

// Permutation is the bidirectional chain↔rank mapping.
// rankOfChain[c] and chainOfRank[r] are kept as mutual inverses.
type Permutation struct {
	rankOfChain []Rank
	chainOfRank []Chain
}

// Identity returns the permutation with RankOf(c) == c for k replicas.
// Returns ErrEmpty for k ≤ 0.
func Identity(k int) (*Permutation, error) {
	if k <= 0 {
		return nil, ErrEmpty
	}
	p := &Permutation{
		rankOfChain: make([]Rank, k),
		chainOfRank: make([]Chain, k),
	}
	for i := 0; i < k; i++ {
		p.rankOfChain[i] = Rank(i)
		p.chainOfRank[i] = Chain(i)
	}
	return p, nil
}

// NewPermutation builds a permutation from rankOfChain (index = chain) and
// derives the inverse. The input is copied.
// Returns ErrEmpty for empty input and ErrNotPermutation when a rank is out
// of range or repeated.
// Complexity: O(K).
func NewPermutation(rankOfChain []Rank) (*Permutation, error) {
	k := len(rankOfChain)
	if k == 0 {
		return nil, ErrEmpty
	}
	p := &Permutation{
		rankOfChain: make([]Rank, k),
		chainOfRank: make([]Chain, k),
	}
	seen := make([]bool, k)
	for c, r := range rankOfChain {
		if r < 0 || int(r) >= k || seen[r] {
			return nil, fmt.Errorf("chain %d rank %d: %w", c, r, ErrNotPermutation)
		}
		seen[r] = true
		p.rankOfChain[c] = r
		p.chainOfRank[r] = Chain(c)
	}
	return p, nil
}

// Len returns the number of replicas K.
func (p *Permutation) Len() int { return len(p.rankOfChain) }

// RankOf returns the rank currently held by chain c.
// Panics if c is out of range, like a slice index.
func (p *Permutation) RankOf(c Chain) Rank { return p.rankOfChain[c] }

// ChainOf returns the chain currently occupying rank r.
// Panics if r is out of range, like a slice index.
func (p *Permutation) ChainOf(r Rank) Chain { return p.chainOfRank[r] }

// SwapRanks exchanges the chains occupying ranks r and r+1, updating both
// directions of the mapping. Returns ErrOutOfRange if r+1 ≥ K or r < 0.
// Complexity: O(1).
func (p *Permutation) SwapRanks(r Rank) error {
	if r < 0 || int(r)+1 >= len(p.chainOfRank) {
		return fmt.Errorf("swap rank %d of %d: %w", r, len(p.chainOfRank), ErrOutOfRange)
	}
	left, right := p.chainOfRank[r], p.chainOfRank[r+1]
	p.chainOfRank[r], p.chainOfRank[r+1] = right, left
	p.rankOfChain[left], p.rankOfChain[right] = r+1, r
	return nil
}

// Validate checks that both directions are bijections and mutual inverses.
// Complexity: O(K).
func (p *Permutation) Validate() error {
	k := len(p.rankOfChain)
	if k == 0 {
		return ErrEmpty
	}
	if len(p.chainOfRank) != k {
		return ErrNotPermutation
	}
	for c, r := range p.rankOfChain {
		if r < 0 || int(r) >= k || p.chainOfRank[r] != Chain(c) {
			return fmt.Errorf("chain %d rank %d: %w", c, r, ErrNotPermutation)
		}
	}
	return nil
}

// Clone returns an independent copy.
func (p *Permutation) Clone() *Permutation {
	return &Permutation{
		rankOfChain: append([]Rank(nil), p.rankOfChain...),
		chainOfRank: append([]Chain(nil), p.chainOfRank...),
	}
}

// ChainsByRank returns a copy of the chain occupying each rank.
func (p *Permutation) ChainsByRank() []Chain {
	return append([]Chain(nil), p.chainOfRank...)
}

// RanksByChain returns a copy of the rank held by each chain.
func (p *Permutation) RanksByChain() []Rank {
	return append([]Rank(nil), p.rankOfChain...)
}
