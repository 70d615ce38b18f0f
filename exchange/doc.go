// Package exchange implements the replica-exchange (parallel tempering)
// move: periodic swaps of temperature labels between replicas sitting at
// adjacent inverse temperatures.
//
// Two index spaces are kept apart by type:
//
//   - Chain: a physical replica (lattice + history), fixed for a run.
//   - Rank:  a position in the ordered list of inverse temperatures.
//
// Permutation is the single bidirectional mapping between them. Its two
// directions are updated together by SwapRanks and are mutual inverses at
// all times; NewPermutation and Validate check the invariant
//
//	ChainOf(RankOf(c)) == c   for every chain c.
//
// Schedule decides which global steps are exchange steps (step % Rate == 0)
// and which pairing they use: even rounds pair ranks (0,1),(2,3),…; odd
// rounds pair (1,2),(3,4),…; successive exchange steps alternate.
//
// Round performs one exchange step. Swaps only relabel: no lattice data
// moves between replicas.
//
// Errors:
//
//   - ErrInvalidRate:     Schedule rate ≤ 0.
//   - ErrNotPermutation:  NewPermutation input is not a bijection of 0..K−1.
//   - ErrEmpty:           zero-length permutation.
//   - ErrLengthMismatch:  betas and permutation sizes differ.
//   - ErrOutOfRange:      chain or rank index outside 0..K−1.
package exchange
