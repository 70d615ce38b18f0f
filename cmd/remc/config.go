package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/remc/stats"
	"github.com/katalvlaran/remc/tempering"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned for run parameters rejected before the
// ensemble is built.
var ErrInvalidConfig = errors.New("remc: invalid configuration")

// autoBurnin selects burnin = samples − samples/10.
const autoBurnin = -1

// Config holds every run parameter. Keys absent from a YAML file keep
// their defaults.
type Config struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Samples      int     `yaml:"samples"`
	BetaMin      float64 `yaml:"beta_min"`
	BetaMax      float64 `yaml:"beta_max"`
	BetaStep     float64 `yaml:"beta_step"`
	Bootstrap    int     `yaml:"bootstrap"`
	ExchangeRate int     `yaml:"exchange_rate"`
	Skip         int     `yaml:"skip"`
	Burnin       int     `yaml:"burnin"`
	Coupling     float64 `yaml:"coupling"`
	Field        float64 `yaml:"field"`
	Seed         int64   `yaml:"seed"`
	Workers      int     `yaml:"workers"`
	Progress     int     `yaml:"progress"`
	History      bool    `yaml:"history"`
	Verify       bool    `yaml:"verify"`
	MetricsAddr  string  `yaml:"metrics_addr"`
	LogLevel     string  `yaml:"log_level"`
}

// DefaultConfig returns the command-line defaults.
func DefaultConfig() Config {
	return Config{
		Width:        16,
		Height:       16,
		Samples:      10000,
		BetaMin:      0.35,
		BetaMax:      0.55,
		BetaStep:     0.01,
		Bootstrap:    stats.DefaultResamples,
		ExchangeRate: 10,
		Skip:         stats.DefaultSkip,
		Burnin:       autoBurnin,
		Coupling:     tempering.DefaultCoupling,
		Field:        tempering.DefaultField,
		Workers:      tempering.DefaultWorkers,
		History:      true,
		LogLevel:     "info",
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolvedBurnin returns the burn-in to use for the statistics.
func (c Config) ResolvedBurnin() int {
	if c.Burnin < 0 {
		return c.Samples - c.Samples/10
	}
	return c.Burnin
}

// Betas returns the inverse-temperature ladder [BetaMin, BetaMax) in
// BetaStep increments.
func (c Config) Betas() ([]float64, error) {
	betas, err := stats.ARange(c.BetaMin, c.BetaMax, c.BetaStep)
	if err != nil {
		return nil, fmt.Errorf("%w: beta ladder: %w", ErrInvalidConfig, err)
	}
	if len(betas) == 0 {
		return nil, fmt.Errorf("%w: empty beta ladder [%v, %v) step %v",
			ErrInvalidConfig, c.BetaMin, c.BetaMax, c.BetaStep)
	}
	return betas, nil
}

// Validate checks parameters the simulation packages do not see.
func (c Config) Validate() error {
	switch {
	case c.Samples < 0:
		return fmt.Errorf("%w: samples %d", ErrInvalidConfig, c.Samples)
	case c.Bootstrap <= 0:
		return fmt.Errorf("%w: bootstrap %d", ErrInvalidConfig, c.Bootstrap)
	case c.Skip <= 0:
		return fmt.Errorf("%w: skip %d", ErrInvalidConfig, c.Skip)
	}
	return nil
}

// bindFlags registers one flag per Config field on cmd, writing into dst.
func bindFlags(cmd *cobra.Command, dst *Config) {
	def := DefaultConfig()
	f := cmd.Flags()
	f.IntVar(&dst.Width, "width", def.Width, "lattice width")
	f.IntVar(&dst.Height, "height", def.Height, "lattice height")
	f.IntVar(&dst.Samples, "samples", def.Samples, "number of steps after the initial sample")
	f.Float64Var(&dst.BetaMin, "beta-min", def.BetaMin, "lowest inverse temperature (inclusive)")
	f.Float64Var(&dst.BetaMax, "beta-max", def.BetaMax, "highest inverse temperature (exclusive)")
	f.Float64Var(&dst.BetaStep, "beta-step", def.BetaStep, "inverse-temperature increment")
	f.IntVar(&dst.Bootstrap, "bootstrap", def.Bootstrap, "bootstrap resamples per temperature")
	f.IntVar(&dst.ExchangeRate, "exchange-rate", def.ExchangeRate, "steps between exchange rounds")
	f.IntVar(&dst.Skip, "skip", def.Skip, "stride between kept samples")
	f.IntVar(&dst.Burnin, "burnin", def.Burnin, "samples discarded before statistics (-1: samples - samples/10)")
	f.Float64Var(&dst.Coupling, "coupling", def.Coupling, "neighbour coupling J")
	f.Float64Var(&dst.Field, "field", def.Field, "external field h")
	f.Int64Var(&dst.Seed, "seed", def.Seed, "random seed (0 uses the default seed)")
	f.IntVar(&dst.Workers, "workers", def.Workers, "concurrent replica sweeps")
	f.IntVar(&dst.Progress, "progress", def.Progress, "log progress every N steps (0 disables)")
	f.BoolVar(&dst.History, "history", def.History, "print rank and energy history sections")
	f.BoolVar(&dst.Verify, "verify", def.Verify, "check cached aggregates after every step")
	f.StringVar(&dst.MetricsAddr, "metrics-addr", def.MetricsAddr, "serve prometheus metrics on this address while running")
	f.StringVar(&dst.LogLevel, "log-level", def.LogLevel, "debug, info, warn or error")
}

// resolveConfig loads --config when given and overlays every flag the user
// set explicitly.
func resolveConfig(cmd *cobra.Command, path string, flags Config) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	set := cmd.Flags().Changed
	overlay := []struct {
		name  string
		apply func()
	}{
		{"width", func() { cfg.Width = flags.Width }},
		{"height", func() { cfg.Height = flags.Height }},
		{"samples", func() { cfg.Samples = flags.Samples }},
		{"beta-min", func() { cfg.BetaMin = flags.BetaMin }},
		{"beta-max", func() { cfg.BetaMax = flags.BetaMax }},
		{"beta-step", func() { cfg.BetaStep = flags.BetaStep }},
		{"bootstrap", func() { cfg.Bootstrap = flags.Bootstrap }},
		{"exchange-rate", func() { cfg.ExchangeRate = flags.ExchangeRate }},
		{"skip", func() { cfg.Skip = flags.Skip }},
		{"burnin", func() { cfg.Burnin = flags.Burnin }},
		{"coupling", func() { cfg.Coupling = flags.Coupling }},
		{"field", func() { cfg.Field = flags.Field }},
		{"seed", func() { cfg.Seed = flags.Seed }},
		{"workers", func() { cfg.Workers = flags.Workers }},
		{"progress", func() { cfg.Progress = flags.Progress }},
		{"history", func() { cfg.History = flags.History }},
		{"verify", func() { cfg.Verify = flags.Verify }},
		{"metrics-addr", func() { cfg.MetricsAddr = flags.MetricsAddr }},
		{"log-level", func() { cfg.LogLevel = flags.LogLevel }},
	}
	for _, o := range overlay {
		if set(o.name) {
			o.apply()
		}
	}
	return cfg, cfg.Validate()
}
