package mcmc

import "math"

// LogLikelihood returns the Boltzmann log-weight −β·E of a configuration.
func LogLikelihood(beta, energy float64) float64 {
	return -beta * energy
}

// MetropolisAccept reports whether a move from oldLL to newLL is accepted.
// Uphill or level moves (newLL ≥ oldLL) are accepted without drawing;
// otherwise one uniform u ∈ [0,1) is drawn and the move is accepted iff
// u ≤ exp(newLL − oldLL).
func MetropolisAccept(rng Rand, oldLL, newLL float64) bool {
	if newLL >= oldLL {
		return true
	}
	return rng.Float64() <= math.Exp(newLL-oldLL)
}

// ExchangeLogRatio returns the log acceptance ratio for swapping the
// configurations held at two adjacent temperatures, L at betaL and R at betaR:
//
//	Δ = [−β_L·E_R − β_R·E_L] − [−β_L·E_L − β_R·E_R] = −(β_R − β_L)·(E_L − E_R)
//
// With β_R > β_L the swap is always accepted when it moves the lower-energy
// configuration to the colder temperature.
func ExchangeLogRatio(betaL, betaR, energyL, energyR float64) float64 {
	return -(betaR - betaL) * (energyL - energyR)
}

// ExchangeAccept reports whether a swap with log ratio delta is accepted.
// delta ≥ 0 is accepted without drawing; otherwise with probability exp(delta).
func ExchangeAccept(rng Rand, delta float64) bool {
	if delta >= 0 {
		return true
	}
	return rng.Float64() <= math.Exp(delta)
}
