// Package tempering drives a replica-exchange Monte Carlo run of the 2D
// Ising model over an ordered ladder of inverse temperatures.
//
// 🚀 What is replica exchange?
//
//	K replicas of the same lattice are simulated at K inverse temperatures
//	β_0 < β_1 < … < β_{K−1}. Most steps are ordinary Metropolis sweeps of
//	every replica at its current temperature. Every Rate-th step instead
//	attempts to swap the temperature labels of replicas sitting at adjacent
//	temperatures, so a configuration trapped at low temperature can escape
//	by wandering up the ladder and back down.
//
// ✨ Key features:
//   - O(1) incremental aggregates per spin flip (package lattice)
//   - typed Chain/Rank bookkeeping with a single bidirectional permutation
//     (package exchange)
//   - full per-chain history and per-temperature reconstruction (package series)
//   - bootstrap specific heat per temperature (package stats)
//   - optional parallel sweeps with per-chain derived random streams
//   - slog progress records, prometheus counters, an otel span per Run
//
// ⚙️ Usage:
//
//	ens, err := tempering.New(16, 16, betas, 10, tempering.WithSeed(7))
//	if err != nil { … }
//	if err := ens.Run(ctx, 20000, tempering.WithProgress(2000)); err != nil { … }
//	heat, err := ens.SpecificHeat(18000, 10, 100)
//
// Step schedule:
//
//	The step counter starts at 0 for the initial sample. Step n (n ≥ 1) is
//	an exchange step iff n % Rate == 0, using even pairs when (n/Rate) is
//	even and odd pairs otherwise; every other step sweeps all replicas.
//	Every step appends one sample per chain, so after Run(ctx, n) every
//	series has n+1 samples.
//
// Reproducibility:
//
//	With sequential sweeps (the default) all draws come from one source in a
//	fixed order: lattice initialisation chain 0..K−1, then per step either
//	chain 0..K−1 sweeps or the exchange pairs in rank order, then bootstrap
//	resamples rank 0..K−1. WithParallelSweeps replaces the sweep draws by
//	per-chain streams derived once at construction; results are still
//	deterministic for a fixed seed but differ from the sequential ones.
//
// An Ensemble is not safe for concurrent use.
package tempering
