package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Juliapixel/emote-shuffler/internal/planner"
	"github.com/Juliapixel/emote-shuffler/internal/random"
)

// Shuffle randomly permutes the emote names of a set.
//
// Algorithm steps:
// 1. Resolve and fetch the emote set snapshot
// 2. Shuffle the current names into the target assignment
// 3. Build the rename plan
// 4. Return the plan if DryRun
// 5. Execute the plan through the 7TV client at the requested rate
// 6. Return result (partial on failure, alongside the error)
func (e *Engine) Shuffle(ctx context.Context, req *ShuffleRequest) (*ShuffleResult, error) {
	runID := uuid.NewString()
	logger := e.logger.With().Str("run_id", runID).Logger()

	set, err := e.resolveSet(ctx, req.Username, req.SetID)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("set", set.ID).Int("emotes", len(set.Emotes)).Msg("fetched emote set")

	items := itemsOf(set)
	targets := make([]string, len(items))
	for i, item := range items {
		targets[i] = item.Name
	}
	random.Shuffle(e.rng, targets)

	plan, err := planner.BuildRenamePlan(items, targets, e.rng.TempNamer(req.TempNameLength))
	if err != nil {
		return nil, fmt.Errorf("failed to build rename plan: %w", err)
	}
	logger.Info().
		Int("operations", len(plan.Operations)).
		Int("cycles", plan.Cycles).
		Msg("built rename plan")

	result := &ShuffleResult{
		RunID:   runID,
		Set:     set,
		Targets: targets,
		Plan:    plan,
		DryRun:  req.DryRun,
	}
	if req.DryRun {
		return result, nil
	}

	executor, err := NewExecutor(e.clock, req.Rate, req.Progress, logger)
	if err != nil {
		return nil, err
	}

	setID := set.ID
	result.Applied, err = executor.Run(ctx, plan.Operations, func(ctx context.Context, op planner.Operation) error {
		return e.remote.RenameEmote(ctx, setID, op.TargetID, op.NewName)
	})
	if err != nil {
		logger.Warn().
			Int("applied", result.Applied).
			Int("planned", len(plan.Operations)).
			Msg("shuffle stopped early")
		return result, err
	}

	logger.Info().Int("applied", result.Applied).Msg("shuffle complete")
	return result, nil
}
