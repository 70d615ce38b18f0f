package mcmc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/remc/mcmc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRand returns a fixed uniform value and counts Float64 draws.
type countingRand struct {
	u     float64
	draws int
}

func (c *countingRand) Intn(n int) int   { return 0 }
func (c *countingRand) Int63() int64     { return 0 }
func (c *countingRand) Float64() float64 { c.draws++; return c.u }

// TestMetropolisAccept_UphillNoDraw verifies that non-decreasing log-likelihood
// moves are accepted without consuming a draw.
func TestMetropolisAccept_UphillNoDraw(t *testing.T) {
	rng := &countingRand{u: 0.999}

	assert.True(t, mcmc.MetropolisAccept(rng, -3, -1), "uphill move must be accepted")
	assert.True(t, mcmc.MetropolisAccept(rng, -2, -2), "level move must be accepted")
	assert.Equal(t, 0, rng.draws, "no draw for accepted-by-rule moves")
}

// TestMetropolisAccept_DownhillThreshold checks u ≤ exp(Δ) boundary behaviour.
func TestMetropolisAccept_DownhillThreshold(t *testing.T) {
	p := math.Exp(-1)

	below := &countingRand{u: p - 1e-9}
	assert.True(t, mcmc.MetropolisAccept(below, 0, -1))
	assert.Equal(t, 1, below.draws)

	above := &countingRand{u: p + 1e-9}
	assert.False(t, mcmc.MetropolisAccept(above, 0, -1))
	assert.Equal(t, 1, above.draws)
}

// TestExchangeAccept_NonNegativeDelta verifies probability exactly 1 for Δ ≥ 0.
func TestExchangeAccept_NonNegativeDelta(t *testing.T) {
	rng := &countingRand{u: 0.999999}
	for _, delta := range []float64{0, 1e-12, 0.5, 40} {
		assert.True(t, mcmc.ExchangeAccept(rng, delta), "delta=%v", delta)
	}
	assert.Equal(t, 0, rng.draws)
}

// TestExchangeAccept_Frequency checks that the empirical acceptance rate of a
// fixed negative Δ converges to exp(Δ).
func TestExchangeAccept_Frequency(t *testing.T) {
	const trials = 200000
	rng := mcmc.NewRand(42)

	for _, delta := range []float64{-0.1, -1, -2.5} {
		accepted := 0
		for i := 0; i < trials; i++ {
			if mcmc.ExchangeAccept(rng, delta) {
				accepted++
			}
		}
		got := float64(accepted) / trials
		assert.InDelta(t, math.Exp(delta), got, 0.01, "delta=%v", delta)
	}
}

// TestExchangeLogRatio covers the sign convention: moving the lower-energy
// configuration to the colder temperature is always favourable.
func TestExchangeLogRatio(t *testing.T) {
	// L at β=0.2 holds E=-10, R at β=0.5 holds E=-2: swapping sends the
	// lower energy to the colder slot.
	delta := mcmc.ExchangeLogRatio(0.2, 0.5, -10, -2)
	assert.InDelta(t, 2.4, delta, 1e-12)

	// Reverse energies: the colder replica already holds the lower energy.
	delta = mcmc.ExchangeLogRatio(0.2, 0.5, -2, -10)
	assert.InDelta(t, -2.4, delta, 1e-12)

	// Equal temperatures or equal energies are neutral.
	assert.Zero(t, mcmc.ExchangeLogRatio(0.3, 0.3, -4, 8))
	assert.Zero(t, mcmc.ExchangeLogRatio(0.1, 0.9, 5, 5))
}

// TestLogLikelihood checks LL = −β·E.
func TestLogLikelihood(t *testing.T) {
	assert.Equal(t, 2.0, mcmc.LogLikelihood(0.5, -4))
	assert.Equal(t, -1.5, mcmc.LogLikelihood(0.5, 3))
}

// TestNewRand_ZeroSeedPolicy verifies seed==0 maps to DefaultSeed.
func TestNewRand_ZeroSeedPolicy(t *testing.T) {
	a, b := mcmc.NewRand(0), mcmc.NewRand(mcmc.DefaultSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

// TestDeriveRand_Deterministic verifies that derivation is reproducible and
// that distinct streams diverge.
func TestDeriveRand_Deterministic(t *testing.T) {
	x1 := mcmc.DeriveRand(mcmc.NewRand(7), 3)
	x2 := mcmc.DeriveRand(mcmc.NewRand(7), 3)
	y := mcmc.DeriveRand(mcmc.NewRand(7), 4)

	same, differ := true, false
	for i := 0; i < 8; i++ {
		a, b, c := x1.Int63(), x2.Int63(), y.Int63()
		same = same && a == b
		differ = differ || a != c
	}
	assert.True(t, same, "same parent seed and stream must reproduce")
	assert.True(t, differ, "different streams must diverge")

	// nil base falls back to DefaultSeed as parent.
	n1, n2 := mcmc.DeriveRand(nil, 1), mcmc.DeriveRand(nil, 1)
	assert.Equal(t, n1.Int63(), n2.Int63())
}
