// Command remc runs replica-exchange Monte Carlo simulations of the 2D
// Ising model and prints bootstrap specific-heat estimates per temperature.
//
//	remc run --width 16 --height 16 --samples 20000
//	remc sweep --width 8 --height 8 --samples 5000 --beta-step 0.05
//	remc run --config run.yaml --seed 7
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "remc:", err)
		stop()
		os.Exit(1)
	}
}
