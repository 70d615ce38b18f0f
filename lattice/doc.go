// Package lattice holds one replica of the two-dimensional Ising model: a
// rectangular grid of ±1 spins together with cached aggregate observables
// that are kept in sync by O(1) incremental updates.
//
// What:
//
//   - State wraps a Width×Height grid with open (non-periodic) boundaries
//     and 4-neighbour coupling.
//   - Cached aggregates: Interaction (Σ over unordered neighbour pairs of
//     s_i·s_j), Magnetization (Σ s_i) and Energy = −J·Interaction − h·Magnetization.
//   - Sweep performs Width·Height single-spin Metropolis trials at a given β,
//     choosing sites uniformly at random with replacement.
//   - Recompute and Verify re-derive the aggregates from the grid so callers
//     can check the incremental bookkeeping at any time.
//
// Complexity:
//
//   - New, FromSpins, Recompute, Verify: O(W×H).
//   - One trial: O(1). One sweep: O(W×H).
//
// Options:
//
//   - WithCoupling(J): neighbour coupling, default 1.0.
//   - WithField(h):    uniform external field, default 0.0.
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0.
//   - ErrNonRectangular:    FromSpins rows differ in length.
//   - ErrInvalidSpin:       FromSpins cell is not ±1.
//   - ErrOutOfRange:        coordinate outside the grid.
//   - ErrAggregateMismatch: cached aggregates disagree with the grid.
//
// A State is not safe for concurrent use; a single goroutine owns it.
package lattice
