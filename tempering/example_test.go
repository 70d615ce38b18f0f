package tempering_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/remc/series"
	"github.com/katalvlaran/remc/tempering"
)

// ExampleEnsemble_Run runs two temperatures on a small lattice and reports
// the shape of the reconstructed history.
func ExampleEnsemble_Run() {
	ens, err := tempering.New(4, 4, []float64{0.1, 0.5}, 5, tempering.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := ens.Run(context.Background(), 100, tempering.WithVerify()); err != nil {
		fmt.Println(err)
		return
	}

	energies, _ := ens.ReconstructedSeries(series.Energy)
	fmt.Println("ranks:", len(energies))
	fmt.Println("samples per rank:", len(energies[0]))

	heat, _ := ens.SpecificHeat(20, 2, 50)
	fmt.Println("estimates:", len(heat))
	// Output:
	// ranks: 2
	// samples per rank: 101
	// estimates: 2
}
