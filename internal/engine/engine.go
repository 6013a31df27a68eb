// Package engine provides the core business logic for emote-shuffler.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It resolves the emote set to shuffle, draws the target
// permutation, asks the planner for a collision-free rename order and drains that
// order through the 7TV client at a bounded rate.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - Executor: Paced, strictly sequential application of a rename plan
//   - StepError: Reports exactly which planned rename a run stopped at
package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Juliapixel/emote-shuffler/internal/clock"
	"github.com/Juliapixel/emote-shuffler/internal/planner"
	"github.com/Juliapixel/emote-shuffler/internal/random"
	"github.com/Juliapixel/emote-shuffler/internal/seventv"
)

// Remote is the subset of the 7TV API the engine needs.
type Remote interface {
	// UserEmoteSet returns the user's active Twitch emote set.
	UserEmoteSet(ctx context.Context, username string) (*seventv.EmoteSet, error)

	// EmoteSet returns the emote set with the given id.
	EmoteSet(ctx context.Context, setID string) (*seventv.EmoteSet, error)

	// RenameEmote renames one emote inside a set.
	RenameEmote(ctx context.Context, setID, emoteID, name string) error
}

// Engine orchestrates shuffle operations.
// It is the main API surface called by the CLI.
type Engine struct {
	remote Remote
	clock  clock.Clock
	rng    *random.Rand
	logger zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(remote Remote, clk clock.Clock, rng *random.Rand, logger zerolog.Logger) *Engine {
	return &Engine{
		remote: remote,
		clock:  clk,
		rng:    rng,
		logger: logger,
	}
}

// resolveSet fetches the set named by the request, preferring an explicit set id.
func (e *Engine) resolveSet(ctx context.Context, username, setID string) (*seventv.EmoteSet, error) {
	switch {
	case setID != "":
		set, err := e.remote.EmoteSet(ctx, setID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch emote set %s: %w", setID, err)
		}
		return set, nil
	case username != "":
		set, err := e.remote.UserEmoteSet(ctx, username)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch active emote set of %s: %w", username, err)
		}
		return set, nil
	default:
		return nil, ErrNoTarget
	}
}

// DescribeSet returns the emote set named by the request without changing it.
func (e *Engine) DescribeSet(ctx context.Context, req *DescribeRequest) (*seventv.EmoteSet, error) {
	return e.resolveSet(ctx, req.Username, req.SetID)
}

// itemsOf converts a set snapshot to planner items, in set order.
func itemsOf(set *seventv.EmoteSet) []planner.Item {
	items := make([]planner.Item, len(set.Emotes))
	for i, emote := range set.Emotes {
		items[i] = planner.Item{ID: emote.ID, Name: emote.Name}
	}
	return items
}
