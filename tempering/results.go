package tempering

import (
	"fmt"

	"github.com/katalvlaran/remc/series"
	"github.com/katalvlaran/remc/stats"
)

// ReconstructedSeries returns, for every rank, the trajectory of obs
// attributed to that temperature: element n comes from the chain that held
// the rank at step n. Every series has Steps()+1 elements.
func (e *Ensemble) ReconstructedSeries(obs series.Observable) ([][]float64, error) {
	return e.rec.ReconstructAll(obs)
}

// SpecificHeat estimates the specific heat at every rank from its
// reconstructed energy trajectory, trimmed by burnin and strided by skip,
// using nBootstrap resamples drawn from the ensemble's random source
// (rank 0 first).
//
// Returns stats.ErrEmptySample (wrapped with the rank) when the trimmed
// subsample is empty, and ErrInvalidArgument-wrapped
// stats.ErrInvalidResamples for nBootstrap ≤ 0.
func (e *Ensemble) SpecificHeat(burnin, skip, nBootstrap int) ([]stats.Estimate, error) {
	if nBootstrap <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, stats.ErrInvalidResamples)
	}
	energies, err := e.rec.ReconstructAll(series.Energy)
	if err != nil {
		return nil, err
	}
	cfg := stats.Config{Burnin: burnin, Skip: skip, Resamples: nBootstrap}
	out := make([]stats.Estimate, len(energies))
	for r, traj := range energies {
		out[r], err = stats.BootstrapSpecificHeat(traj, cfg, e.betas[r], e.Sites(), e.rng)
		if err != nil {
			return nil, fmt.Errorf("rank %d (beta=%v): %w", r, e.betas[r], err)
		}
	}
	return out, nil
}

// MeanLogLikelihood returns −β_r·mean(E_r) at every rank over the same
// trimmed, strided subsample SpecificHeat uses.
func (e *Ensemble) MeanLogLikelihood(burnin, skip int) ([]float64, error) {
	energies, err := e.rec.ReconstructAll(series.Energy)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(energies))
	for r, traj := range energies {
		out[r], err = stats.MeanLogLikelihood(traj, e.betas[r], burnin, skip)
		if err != nil {
			return nil, fmt.Errorf("rank %d (beta=%v): %w", r, e.betas[r], err)
		}
	}
	return out, nil
}
