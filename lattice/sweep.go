package lattice

import "github.com/katalvlaran/remc/mcmc"

// Sweep performs Width·Height single-spin Metropolis trials at inverse
// temperature beta. Each trial:
//  1. draws x = rng.Intn(Width), then y = rng.Intn(Height) (with replacement);
//  2. proposes flipping s(x,y);
//  3. computes dI = Σ s(x,y)·s(n) over in-bounds neighbours n, giving
//     I' = I − 2·dI, M' = M − 2·s(x,y), E' = −J·I' − h·M';
//  4. accepts by mcmc.MetropolisAccept with LL = −beta·E, committing the
//     flip and all three aggregates together.
//
// Complexity: O(W×H).
func (s *State) Sweep(beta float64, rng mcmc.Rand) SweepResult {
	res := SweepResult{Proposed: s.width * s.height}
	for t := 0; t < res.Proposed; t++ {
		x, y := rng.Intn(s.width), rng.Intn(s.height)
		if s.trial(x, y, beta, rng) {
			res.Accepted++
		}
	}
	return res
}

// trial proposes flipping the spin at (x,y) and reports whether it was accepted.
func (s *State) trial(x, y int, beta float64, rng mcmc.Rand) bool {
	i := s.index(x, y)
	old := int(s.spins[i])

	dInteraction := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !s.InBounds(nx, ny) {
			continue
		}
		dInteraction += old * int(s.spins[s.index(nx, ny)])
	}
	newInteraction := s.interaction - 2*dInteraction
	newMagnetization := s.magnetization - 2*old
	newEnergy := s.energyOf(newInteraction, newMagnetization)

	oldLL := mcmc.LogLikelihood(beta, s.energy)
	newLL := mcmc.LogLikelihood(beta, newEnergy)
	if !mcmc.MetropolisAccept(rng, oldLL, newLL) {
		return false
	}
	s.spins[i] = Spin(-old)
	s.interaction = newInteraction
	s.magnetization = newMagnetization
	s.energy = newEnergy
	return true
}
