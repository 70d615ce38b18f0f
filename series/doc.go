// Package series records the per-step history of a replica-exchange run and
// reconstructs per-temperature trajectories from it.
//
// Each physical chain appends its own aggregate snapshot and the rank it
// held at every step; the chain occupying every rank is recorded alongside.
// Reconstruct(r, obs) walks the steps and, at each step n, reads the value
// of whichever chain occupied rank r at n:
//
//	series_r[n] = chain_{chainOfRank_n[r]}[n]
//
// All chain series and all reconstructed series have the same length:
// the number of recorded steps plus one for the initial sample.
package series
