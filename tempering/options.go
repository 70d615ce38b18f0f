package tempering

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/remc/mcmc"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Defaults for optional construction parameters.
const (
	// DefaultCoupling is the neighbour coupling J.
	DefaultCoupling = 1.0
	// DefaultField is the external field h.
	DefaultField = 0.0
	// DefaultWorkers runs sweeps sequentially on the shared random source.
	DefaultWorkers = 1
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/remc/tempering"

// Option configures an Ensemble at construction.
type Option func(*config)

type config struct {
	coupling float64
	field    float64
	rng      mcmc.Rand
	logger   *slog.Logger
	registry prometheus.Registerer
	tracer   trace.Tracer
	workers  int
}

func defaultConfig() config {
	return config{
		coupling: DefaultCoupling,
		field:    DefaultField,
		workers:  DefaultWorkers,
	}
}

// WithCoupling sets the neighbour coupling J (default 1.0).
func WithCoupling(j float64) Option {
	return func(c *config) { c.coupling = j }
}

// WithField sets the uniform external field h (default 0.0).
func WithField(h float64) Option {
	return func(c *config) { c.field = h }
}

// WithSeed uses a deterministic source seeded with seed (0 ⇒ mcmc.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = mcmc.NewRand(seed) }
}

// WithRand injects the shared random source. Without WithSeed or WithRand
// the ensemble uses mcmc.NewRand(0).
func WithRand(r mcmc.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithLogger sets the logger for progress and debug records.
// Default: records are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics registers the ensemble's prometheus collectors on reg.
// Collectors already registered under the same names are reused.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) { c.registry = reg }
}

// WithTracer sets the tracer used for Run spans.
// Default: otel's global tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// WithParallelSweeps sweeps up to workers replicas concurrently, each on its
// own random stream derived from the shared source at construction.
// workers ≤ 1 keeps sequential sweeps on the shared source.
func WithParallelSweeps(workers int) Option {
	return func(c *config) { c.workers = workers }
}

func (c *config) finish() {
	if c.rng == nil {
		c.rng = mcmc.NewRand(0)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}
	if c.workers < 1 {
		c.workers = 1
	}
}

// RunOption configures a single Run call.
type RunOption func(*runConfig)

type runConfig struct {
	progressEvery int
	verify        bool
}

// WithProgress logs a progress record every interval steps (interval ≤ 0 disables).
func WithProgress(interval int) RunOption {
	return func(r *runConfig) { r.progressEvery = interval }
}

// WithVerify checks every chain's cached aggregates and the permutation
// after each step and stops the run at the first violation.
func WithVerify() RunOption {
	return func(r *runConfig) { r.verify = true }
}
