// Package stats turns sampled energy trajectories into thermodynamic
// estimates with bootstrap confidence, plus the small sequence helpers the
// estimator is built from.
//
// Helpers:
//
//   - Mean, Variance, Stdev: population moments, Var = E[x²] − E[x]²
//     (no Bessel correction).
//   - Slice: strided subsequence xs[start:end:skip].
//   - ARange: evenly spaced half-open sweep start, start+step, … < end,
//     used to build inverse-temperature ladders.
//
// Estimators:
//
//   - SpecificHeat(E, β, N) = β²·Var(E)/N.
//   - BootstrapSpecificHeat: trims burn-in, keeps every skip-th sample,
//     draws Resamples bootstrap resamples of the same size with replacement,
//     and reports the mean and population standard deviation of the
//     per-resample specific heats.
//   - MeanLogLikelihood(E, β) = −β·mean(E) over the same subsample.
//
// Every function returns ErrEmptySample instead of producing NaN when its
// input (after trimming) has no elements.
package stats
