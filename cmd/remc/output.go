package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/remc/series"
	"github.com/katalvlaran/remc/stats"
	"github.com/katalvlaran/remc/tempering"
)

// writeHistory prints, every skip steps, the rank held by each chain, then
// a "ranks, samples" line, then every skip steps the energy at each rank.
func writeHistory(w io.Writer, ens *tempering.Ensemble, skip int) error {
	bw := bufio.NewWriter(w)
	h := ens.History()
	k := ens.Len()

	for n := 0; n < h.Len(); n += skip {
		perm, err := h.PermutationAt(n)
		if err != nil {
			return err
		}
		row := make([]string, k)
		for c, r := range perm.RanksByChain() {
			row[c] = strconv.Itoa(int(r))
		}
		fmt.Fprintln(bw, strings.Join(row, ", "))
	}

	energies, err := ens.ReconstructedSeries(series.Energy)
	if err != nil {
		return err
	}
	fmt.Fprintf(bw, "%d, %d\n", len(energies), len(energies[0]))
	for n := 0; n < len(energies[0]); n += skip {
		row := make([]string, k)
		for r := range energies {
			row[r] = strconv.FormatFloat(energies[r][n], 'f', 0, 64)
		}
		fmt.Fprintln(bw, strings.Join(row, ", "))
	}
	return bw.Flush()
}

// writeEstimates prints "beta, heat mean, heat std, mean log-likelihood"
// per temperature.
func writeEstimates(w io.Writer, betas []float64, heat []stats.Estimate, ll []float64) error {
	bw := bufio.NewWriter(w)
	for r, beta := range betas {
		fmt.Fprintf(bw, "%.2f, %.3f, %.3f, %.3f\n", beta, heat[r].Mean, heat[r].Std, ll[r])
	}
	return bw.Flush()
}
