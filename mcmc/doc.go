// Package mcmc holds the acceptance rules and random-source plumbing shared
// by the local spin-flip sampler and the replica-exchange engine.
//
// Two rules live here:
//
//   - MetropolisAccept: accepts a proposal with probability
//     min(1, exp(newLL − oldLL)), where LL = −β·E is the log-likelihood.
//   - ExchangeAccept:   accepts a swap of two adjacent temperatures with
//     probability min(1, exp(Δ)), Δ = −(β_R − β_L)·(E_L − E_R).
//
// Both rules consume exactly one uniform draw when the log ratio is
// negative and none otherwise, so that runs with a fixed seed are
// reproducible draw-for-draw.
//
// Randomness:
//
//	All samplers take an explicit Rand. *math/rand.Rand satisfies it.
//	NewRand(seed) builds a deterministic source (seed==0 ⇒ a fixed default),
//	DeriveRand(base, stream) builds independent per-worker streams.
//	A Rand is NOT goroutine-safe; never share one across goroutines.
package mcmc
