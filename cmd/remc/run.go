package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/remc/stats"
	"github.com/katalvlaran/remc/tempering"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newLogger builds the run logger, tagged with a fresh run id.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(h).With(slog.String("run_id", uuid.NewString())), nil
}

// ensembleOptions translates cfg into tempering options.
func ensembleOptions(cfg Config, logger *slog.Logger, reg *prometheus.Registry) []tempering.Option {
	opts := []tempering.Option{
		tempering.WithCoupling(cfg.Coupling),
		tempering.WithField(cfg.Field),
		tempering.WithSeed(cfg.Seed),
		tempering.WithLogger(logger),
		tempering.WithParallelSweeps(cfg.Workers),
	}
	if reg != nil {
		opts = append(opts, tempering.WithMetrics(reg))
	}
	return opts
}

func runOptions(cfg Config) []tempering.RunOption {
	opts := []tempering.RunOption{tempering.WithProgress(cfg.Progress)}
	if cfg.Verify {
		opts = append(opts, tempering.WithVerify())
	}
	return opts
}

// serveMetrics exposes reg on addr until the returned stop is called.
// An empty addr serves nothing and returns a nil registry.
func serveMetrics(addr string, logger *slog.Logger) (*prometheus.Registry, func()) {
	if addr == "" {
		return nil, func() {}
	}
	reg := prometheus.NewRegistry()
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.String("addr", addr), slog.Any("error", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", addr))
	return reg, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// runExchange runs one ensemble over the whole ladder and prints its report.
func runExchange(ctx context.Context, cfg Config, out, logOut io.Writer) error {
	logger, err := newLogger(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	betas, err := cfg.Betas()
	if err != nil {
		return err
	}
	reg, stop := serveMetrics(cfg.MetricsAddr, logger)
	defer stop()

	ens, err := tempering.New(cfg.Width, cfg.Height, betas, cfg.ExchangeRate, ensembleOptions(cfg, logger, reg)...)
	if err != nil {
		return err
	}
	logger.Info("run started",
		slog.Int("width", cfg.Width),
		slog.Int("height", cfg.Height),
		slog.Int("replicas", len(betas)),
		slog.Int("samples", cfg.Samples))
	start := time.Now()
	if err := ens.Run(ctx, cfg.Samples, runOptions(cfg)...); err != nil {
		return err
	}
	logger.Info("run finished", slog.Duration("elapsed", time.Since(start)))

	burnin := cfg.ResolvedBurnin()
	heat, err := ens.SpecificHeat(burnin, cfg.Skip, cfg.Bootstrap)
	if err != nil {
		return err
	}
	ll, err := ens.MeanLogLikelihood(burnin, cfg.Skip)
	if err != nil {
		return err
	}

	if cfg.History {
		if err := writeHistory(out, ens, cfg.Skip); err != nil {
			return err
		}
	}
	acc := ens.Acceptance()
	for r := range acc.Exchange {
		logger.Debug("exchange acceptance",
			slog.Int("pair", r),
			slog.Float64("rate", acc.Exchange[r].Rate()))
	}
	return writeEstimates(out, betas, heat, ll)
}

// runSweep runs one single-replica ensemble per beta, exchange disabled.
func runSweep(ctx context.Context, cfg Config, out, logOut io.Writer) error {
	logger, err := newLogger(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}
	betas, err := cfg.Betas()
	if err != nil {
		return err
	}
	reg, stop := serveMetrics(cfg.MetricsAddr, logger)
	defer stop()

	burnin := cfg.ResolvedBurnin()
	heat := make([]stats.Estimate, len(betas))
	ll := make([]float64, len(betas))
	for i, beta := range betas {
		// A rate beyond the run length never exchanges.
		ens, err := tempering.New(cfg.Width, cfg.Height, []float64{beta}, cfg.Samples+1,
			ensembleOptions(cfg, logger.With(slog.Float64("beta", beta)), reg)...)
		if err != nil {
			return err
		}
		if err := ens.Run(ctx, cfg.Samples, runOptions(cfg)...); err != nil {
			return err
		}
		h, err := ens.SpecificHeat(burnin, cfg.Skip, cfg.Bootstrap)
		if err != nil {
			return err
		}
		m, err := ens.MeanLogLikelihood(burnin, cfg.Skip)
		if err != nil {
			return err
		}
		heat[i], ll[i] = h[0], m[0]
		logger.Debug("beta done", slog.Float64("beta", beta), slog.Float64("specific_heat", h[0].Mean))
	}
	return writeEstimates(out, betas, heat, ll)
}
