package tempering_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/remc/tempering"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// gatherValues returns the sample values of one metric family keyed by the
// joined label values.
func gatherValues(t *testing.T, reg *prometheus.Registry, name string) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	out := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetValue())
			}
			key := strings.Join(labels, ",")
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out
}

// TestMetrics_Counts checks step and move counters against the run shape.
func TestMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	ens, err := tempering.New(3, 3, []float64{0.2, 0.4, 0.6}, 4,
		tempering.WithSeed(12), tempering.WithMetrics(reg))
	require.NoError(t, err)
	require.NoError(t, ens.Run(context.Background(), 20))

	steps := gatherValues(t, reg, "remc_steps_total")
	assert.Equal(t, 15.0, steps["local"])
	assert.Equal(t, 5.0, steps["exchange"])

	moves := gatherValues(t, reg, "remc_local_moves_total")
	assert.Equal(t, float64(15*3*9), moves["accepted"]+moves["rejected"])

	acc := ens.Acceptance()
	exchanges := gatherValues(t, reg, "remc_exchange_attempts_total")
	for r, ratio := range acc.Exchange {
		pair := strconv.Itoa(r)
		assert.Equal(t, float64(ratio.Attempted), exchanges[pair+",accepted"]+exchanges[pair+",rejected"], "pair %d", r)
		assert.Equal(t, float64(ratio.Accepted), exchanges[pair+",accepted"], "pair %d", r)
	}

	energies := gatherValues(t, reg, "remc_rank_energy")
	assert.Len(t, energies, 3)
}

// TestMetrics_SharedRegistry reuses collectors when a second ensemble
// registers on the same registry.
func TestMetrics_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := tempering.New(2, 2, []float64{0.3}, 100, tempering.WithSeed(1), tempering.WithMetrics(reg))
	require.NoError(t, err)
	b, err := tempering.New(2, 2, []float64{0.3}, 100, tempering.WithSeed(2), tempering.WithMetrics(reg))
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background(), 3))
	require.NoError(t, b.Run(context.Background(), 4))
	assert.Equal(t, 7.0, gatherValues(t, reg, "remc_steps_total")["local"])
}

// TestRun_ProgressLogging emits one record per interval.
func TestRun_ProgressLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ens, err := tempering.New(3, 3, []float64{0.1, 0.2}, 3,
		tempering.WithSeed(1), tempering.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, ens.Run(context.Background(), 10, tempering.WithProgress(4)))

	var steps []float64
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] != "tempering progress" {
			continue
		}
		steps = append(steps, rec["step"].(float64))
		assert.Len(t, rec["energy"], 2)
		assert.Len(t, rec["chain_by_rank"], 2)
	}
	assert.Equal(t, []float64{4, 8}, steps)
}

// TestRun_WithTracer runs with an explicit tracer.
func TestRun_WithTracer(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("test")
	ens, err := tempering.New(2, 2, []float64{0.1, 0.2}, 2,
		tempering.WithSeed(1), tempering.WithTracer(tracer))
	require.NoError(t, err)
	require.NoError(t, ens.Run(context.Background(), 6))
	assert.Equal(t, 6, ens.Steps())
}
