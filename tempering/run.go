package tempering

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/remc/exchange"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Run advances the ensemble sampleSize steps.
//
// The context is checked between steps: on cancellation Run returns
// ctx.Err() and the history holds every step completed so far, consistent
// in length across chains. With WithVerify the run stops at the first
// cached-aggregate or permutation violation.
//
// Returns ErrInvalidArgument for sampleSize < 0.
func (e *Ensemble) Run(ctx context.Context, sampleSize int, opts ...RunOption) (err error) {
	if sampleSize < 0 {
		return fmt.Errorf("%w: sample size %d", ErrInvalidArgument, sampleSize)
	}
	var rc runConfig
	for _, opt := range opts {
		opt(&rc)
	}

	ctx, span := e.tracer.Start(ctx, "tempering.Run",
		trace.WithAttributes(
			attribute.Int("sample_size", sampleSize),
			attribute.Int("replicas", len(e.states)),
			attribute.Int("sites", e.Sites()),
			attribute.Int("exchange_rate", e.schedule.Rate()),
			attribute.Int("start_step", e.step),
		))
	defer func() {
		span.SetAttributes(attribute.Int("end_step", e.step))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	for i := 0; i < sampleSize; i++ {
		if err = e.Step(ctx); err != nil {
			return err
		}
		if rc.verify {
			if err = e.Verify(); err != nil {
				return fmt.Errorf("step %d: %w", e.step, err)
			}
		}
		if rc.progressEvery > 0 && e.step%rc.progressEvery == 0 {
			e.logProgress()
		}
	}
	return nil
}

// logProgress emits one record with the current aggregates by rank.
func (e *Ensemble) logProgress() {
	k := len(e.states)
	chains := make([]int, k)
	interaction := make([]int, k)
	magnetization := make([]int, k)
	for r := 0; r < k; r++ {
		c := e.perm.ChainOf(exchange.Rank(r))
		chains[r] = int(c)
		interaction[r] = e.states[c].Interaction()
		magnetization[r] = e.states[c].Magnetization()
	}
	e.logger.Info("tempering progress",
		slog.Int("step", e.step),
		slog.Any("chain_by_rank", chains),
		slog.Any("interaction", interaction),
		slog.Any("magnetization", magnetization),
		slog.Any("energy", e.energiesByRank()))
}
