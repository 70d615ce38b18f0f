package tempering

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/remc/exchange"
	"github.com/katalvlaran/remc/lattice"
	"github.com/katalvlaran/remc/mcmc"
	"github.com/katalvlaran/remc/series"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Ensemble is a set of K Ising replicas at K inverse temperatures together
// with their exchange bookkeeping and recorded history.
type Ensemble struct {
	width, height int
	betas         []float64 // indexed by rank
	schedule      exchange.Schedule

	states []*lattice.State // indexed by chain
	perm   *exchange.Permutation
	rec    *series.Recorder
	step   int

	rng        mcmc.Rand
	chainRands []mcmc.Rand // per-chain streams, parallel sweeps only
	workers    int

	acc     acceptance
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
}

// New builds an ensemble of len(betas) replicas of a width×height lattice.
// betas[r] is the inverse temperature of rank r; exchanges are attempted
// every exchangeRate steps. Replica c starts at rank c with spins drawn from
// the shared source in chain order.
//
// All arguments are validated before anything is allocated; every failure
// wraps ErrInvalidArgument together with the specific cause.
//
// Complexity: O(K·W·H).
func New(width, height int, betas []float64, exchangeRate int, opts ...Option) (*Ensemble, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	schedule, err := validate(width, height, betas, exchangeRate, cfg)
	if err != nil {
		return nil, err
	}
	cfg.finish()

	m, err := newMetrics(cfg.registry)
	if err != nil {
		return nil, fmt.Errorf("tempering: register metrics: %w", err)
	}

	k := len(betas)
	e := &Ensemble{
		width:    width,
		height:   height,
		betas:    append([]float64(nil), betas...),
		schedule: schedule,
		states:   make([]*lattice.State, k),
		rng:      cfg.rng,
		workers:  cfg.workers,
		acc:      newAcceptance(k),
		logger:   cfg.logger,
		tracer:   cfg.tracer,
		metrics:  m,
	}
	latticeOpts := []lattice.Option{lattice.WithCoupling(cfg.coupling), lattice.WithField(cfg.field)}
	initial := make([]lattice.Observables, k)
	for c := range e.states {
		// Dimensions and rng were validated above.
		e.states[c], _ = lattice.New(width, height, e.rng, latticeOpts...)
		initial[c] = e.states[c].Snapshot()
	}
	e.perm, _ = exchange.Identity(k)
	e.rec, _ = series.NewRecorder(initial, e.perm)

	if e.workers > 1 {
		e.chainRands = make([]mcmc.Rand, k)
		for c := range e.chainRands {
			e.chainRands[c] = mcmc.DeriveRand(e.rng, uint64(c))
		}
	}
	e.metrics.observeEnergies(e.energiesByRank())
	e.logger.Debug("ensemble created",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("replicas", k),
		slog.Int("exchange_rate", exchangeRate),
		slog.Int("workers", e.workers))

	return e, nil
}

// validate checks every construction argument and returns the schedule.
func validate(width, height int, betas []float64, exchangeRate int, cfg config) (exchange.Schedule, error) {
	if width <= 0 || height <= 0 {
		return exchange.Schedule{}, fmt.Errorf("%w: width=%d height=%d: %w",
			ErrInvalidArgument, width, height, lattice.ErrInvalidDimensions)
	}
	if len(betas) == 0 {
		return exchange.Schedule{}, fmt.Errorf("%w: %w", ErrInvalidArgument, ErrNoBetas)
	}
	for r, b := range betas {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return exchange.Schedule{}, fmt.Errorf("%w: beta[%d]=%v: %w", ErrInvalidArgument, r, b, ErrInvalidBeta)
		}
	}
	schedule, err := exchange.NewSchedule(exchangeRate)
	if err != nil {
		return exchange.Schedule{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	for _, v := range []float64{cfg.coupling, cfg.field} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return exchange.Schedule{}, fmt.Errorf("%w: coupling=%v field=%v: %w",
				ErrInvalidArgument, cfg.coupling, cfg.field, ErrInvalidParameter)
		}
	}
	return schedule, nil
}

// Len returns the number of replicas K.
func (e *Ensemble) Len() int { return len(e.states) }

// Width returns the lattice width.
func (e *Ensemble) Width() int { return e.width }

// Height returns the lattice height.
func (e *Ensemble) Height() int { return e.height }

// Sites returns Width·Height.
func (e *Ensemble) Sites() int { return e.width * e.height }

// Betas returns a copy of the inverse temperatures, indexed by rank.
func (e *Ensemble) Betas() []float64 { return append([]float64(nil), e.betas...) }

// ExchangeRate returns the number of steps between exchange attempts.
func (e *Ensemble) ExchangeRate() int { return e.schedule.Rate() }

// Steps returns the number of steps taken so far.
func (e *Ensemble) Steps() int { return e.step }

// Permutation returns a copy of the current chain↔rank mapping.
func (e *Ensemble) Permutation() *exchange.Permutation { return e.perm.Clone() }

// History returns the recorded history. Callers must not modify the
// ensemble while reading it.
func (e *Ensemble) History() *series.Recorder { return e.rec }

// State returns the lattice of chain c. The state is owned by the ensemble;
// callers may read it but must not sweep it.
func (e *Ensemble) State(c exchange.Chain) (*lattice.State, error) {
	if c < 0 || int(c) >= len(e.states) {
		return nil, fmt.Errorf("chain %d of %d: %w", c, len(e.states), ErrChainOutOfRange)
	}
	return e.states[c], nil
}

// Verify checks every chain's cached aggregates against its grid and the
// permutation invariant.
func (e *Ensemble) Verify() error {
	for c, s := range e.states {
		if err := s.Verify(); err != nil {
			return fmt.Errorf("chain %d: %w", c, err)
		}
	}
	return e.perm.Validate()
}

// Step advances the ensemble by one step: an exchange round when the new
// step number is a multiple of the exchange rate, otherwise one sweep of
// every replica at the temperature of the rank it holds. Every chain then
// appends its snapshot and the permutation is recorded.
//
// Step returns ctx.Err() without changing anything if ctx is already done.
func (e *Ensemble) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.step++
	if e.schedule.IsExchangeStep(e.step) {
		e.exchangeStep()
	} else if err := e.localStep(ctx); err != nil {
		return err
	}

	snaps := make([]lattice.Observables, len(e.states))
	for c, s := range e.states {
		snaps[c] = s.Snapshot()
	}
	if err := e.rec.Record(snaps, e.perm); err != nil {
		return err
	}
	e.metrics.observeEnergies(e.energiesByRank())
	return nil
}

// localStep sweeps every chain once.
func (e *Ensemble) localStep(ctx context.Context) error {
	results := make([]lattice.SweepResult, len(e.states))
	if e.workers <= 1 {
		for c, s := range e.states {
			results[c] = s.Sweep(e.betaOf(exchange.Chain(c)), e.rng)
		}
	} else {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(e.workers)
		for c := range e.states {
			chain := exchange.Chain(c)
			beta := e.betaOf(chain)
			g.Go(func() error {
				results[chain] = e.states[chain].Sweep(beta, e.chainRands[chain])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
	}

	accepted, proposed := 0, 0
	for c, r := range results {
		e.acc.local[c].Attempted += r.Proposed
		e.acc.local[c].Accepted += r.Accepted
		accepted += r.Accepted
		proposed += r.Proposed
	}
	e.metrics.observeLocal(accepted, proposed)
	return nil
}

// exchangeStep attempts the swaps of the parity due at the current step.
func (e *Ensemble) exchangeStep() {
	parity := e.schedule.Parity(e.step)
	energyOf := func(c exchange.Chain) float64 { return e.states[c].Energy() }
	// betas and perm always have K entries.
	res, _ := exchange.Round(e.perm, e.betas, energyOf, parity, e.rng)
	for _, p := range res.Pairs {
		e.acc.exchange[p.Lower].Attempted++
		if p.Accepted {
			e.acc.exchange[p.Lower].Accepted++
		}
	}
	e.metrics.observeExchange(res)
	e.logger.Debug("exchange round",
		slog.Int("step", e.step),
		slog.String("parity", parity.String()),
		slog.Int("accepted", res.Accepted()),
		slog.Int("attempted", len(res.Pairs)))
}

// betaOf returns the inverse temperature of the rank chain c currently holds.
func (e *Ensemble) betaOf(c exchange.Chain) float64 {
	return e.betas[e.perm.RankOf(c)]
}

// energiesByRank returns the current energy at each rank.
func (e *Ensemble) energiesByRank() []float64 {
	out := make([]float64, len(e.states))
	for r := range out {
		out[r] = e.states[e.perm.ChainOf(exchange.Rank(r))].Energy()
	}
	return out
}
