package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "remc",
		Short: "Replica-exchange Monte Carlo for the 2D Ising model",
		Long: `remc samples the 2D Ising model at a ladder of inverse temperatures,
swapping configurations between neighbouring temperatures, and reports a
bootstrap estimate of the specific heat at each temperature.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newSweepCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		flags      Config
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one replica-exchange ensemble over the beta ladder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flags)
			if err != nil {
				return err
			}
			return runExchange(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	bindFlags(cmd, &flags)
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with run parameters; explicit flags override it")
	return cmd
}

func newSweepCmd() *cobra.Command {
	var (
		flags      Config
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run an independent single-temperature simulation per beta",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flags)
			if err != nil {
				return err
			}
			return runSweep(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	bindFlags(cmd, &flags)
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with run parameters; explicit flags override it")
	return cmd
}
