// Package remc is a replica-exchange Monte Carlo toolkit for the 2D Ising
// model on an open-boundary lattice.
//
// 🚀 What is remc?
//
//	A small, deterministic-by-seed library that brings together:
//		• Metropolis primitives and seeded random streams (mcmc)
//		• An Ising lattice with O(1) incremental aggregates (lattice)
//		• Typed chain/rank permutations and exchange rounds (exchange)
//		• Per-chain history and per-temperature reconstruction (series)
//		• Moments, strided slicing and bootstrap specific heat (stats)
//		• The ensemble driver with slog, prometheus and otel hooks (tempering)
//
// Layout:
//
//	mcmc/       : Rand interface, NewRand/DeriveRand, acceptance rules
//	lattice/    : State, Sweep, Verify
//	exchange/   : Chain, Rank, Permutation, Schedule, Round
//	series/     : Observable, Recorder
//	stats/      : Mean, Variance, Stdev, Slice, ARange, BootstrapSpecificHeat
//	tempering/  : Ensemble: New, Step, Run, SpecificHeat
//	cmd/remc/   : command-line driver (run, sweep)
//	examples/   : runnable walkthroughs
//
// Quick start:
//
//	betas, _ := stats.ARange(0.35, 0.55, 0.01)
//	ens, _ := tempering.New(16, 16, betas, 10, tempering.WithSeed(1))
//	_ = ens.Run(ctx, 20000)
//	heat, _ := ens.SpecificHeat(18000, 10, 100)
//
//	go install github.com/katalvlaran/remc/cmd/remc@latest
package remc
