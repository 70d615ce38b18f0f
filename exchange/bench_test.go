package exchange_test

import (
	"testing"

	"github.com/katalvlaran/remc/exchange"
	"github.com/katalvlaran/remc/mcmc"
)

// BenchmarkRound measures alternating exchange rounds over 64 replicas.
func BenchmarkRound(b *testing.B) {
	const k = 64
	p, err := exchange.Identity(k)
	if err != nil {
		b.Fatalf("setup Identity failed: %v", err)
	}
	betas := make([]float64, k)
	energy := make([]float64, k)
	rng := mcmc.NewRand(42)
	for i := range betas {
		betas[i] = 0.3 + 0.005*float64(i)
		energy[i] = -float64(rng.Intn(2000))
	}
	energyOf := func(c exchange.Chain) float64 { return energy[c] }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := exchange.Round(p, betas, energyOf, exchange.Parity(i%2), rng); err != nil {
			b.Fatalf("Round failed: %v", err)
		}
	}
}
