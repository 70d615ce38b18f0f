package stats

import (
	"fmt"

	"github.com/katalvlaran/remc/mcmc"
)

// Config controls how a trajectory is trimmed and resampled.
type Config struct {
	Burnin    int // samples discarded from the front
	Skip      int // stride between kept samples
	Resamples int // number of bootstrap resamples
}

// Defaults used by the command-line driver.
const (
	DefaultBurnin    = 1000
	DefaultSkip      = 10
	DefaultResamples = 100
)

// DefaultConfig returns Burnin=1000, Skip=10, Resamples=100.
func DefaultConfig() Config {
	return Config{Burnin: DefaultBurnin, Skip: DefaultSkip, Resamples: DefaultResamples}
}

// Estimate is a bootstrap mean with its standard deviation.
type Estimate struct {
	Mean float64
	Std  float64
}

// SpecificHeat returns β²·Var(E)/sites for one energy sample.
// Returns ErrEmptySample or ErrInvalidSites.
func SpecificHeat(energies []float64, beta float64, sites int) (float64, error) {
	if sites <= 0 {
		return 0, fmt.Errorf("sites %d: %w", sites, ErrInvalidSites)
	}
	v, err := Variance(energies)
	if err != nil {
		return 0, err
	}
	return beta * beta * v / float64(sites), nil
}

// BootstrapSpecificHeat estimates the specific heat of one temperature.
//
// Stages:
//  1. sub = Slice(energies, cfg.Burnin, 0, cfg.Skip).
//  2. For each of cfg.Resamples resamples, draw len(sub) indices with
//     rng.Intn(len(sub)) and evaluate SpecificHeat on the drawn values.
//  3. Report Mean and population Stdev of the resample estimates.
//
// Returns ErrEmptySample when the subsample is empty, ErrInvalidResamples,
// ErrInvalidSites, ErrNegativeIndex or mcmc.ErrNilRand.
// Complexity: O(Resamples·len(sub)).
func BootstrapSpecificHeat(energies []float64, cfg Config, beta float64, sites int, rng mcmc.Rand) (Estimate, error) {
	if cfg.Resamples <= 0 {
		return Estimate{}, fmt.Errorf("resamples %d: %w", cfg.Resamples, ErrInvalidResamples)
	}
	if sites <= 0 {
		return Estimate{}, fmt.Errorf("sites %d: %w", sites, ErrInvalidSites)
	}
	if rng == nil {
		return Estimate{}, mcmc.ErrNilRand
	}
	sub, err := Slice(energies, cfg.Burnin, 0, cfg.Skip)
	if err != nil {
		return Estimate{}, err
	}

	n := len(sub)
	draw := make([]float64, n)
	estimates := make([]float64, cfg.Resamples)
	for b := range estimates {
		for i := range draw {
			draw[i] = sub[rng.Intn(n)]
		}
		// draw is non-empty and sites > 0: SpecificHeat cannot fail here.
		estimates[b], _ = SpecificHeat(draw, beta, sites)
	}

	mean, _ := Mean(estimates)
	std, _ := Stdev(estimates)
	return Estimate{Mean: mean, Std: std}, nil
}

// MeanLogLikelihood returns −β·mean(E) over the burn-in-trimmed, strided
// subsample. Returns ErrEmptySample or ErrNegativeIndex from Slice.
func MeanLogLikelihood(energies []float64, beta float64, burnin, skip int) (float64, error) {
	sub, err := Slice(energies, burnin, 0, skip)
	if err != nil {
		return 0, err
	}
	m, _ := Mean(sub)
	return mcmc.LogLikelihood(beta, m), nil
}
