package engine

import (
	"github.com/Juliapixel/emote-shuffler/internal/planner"
	"github.com/Juliapixel/emote-shuffler/internal/progress"
	"github.com/Juliapixel/emote-shuffler/internal/seventv"
)

// ShuffleRequest represents a request to shuffle an emote set.
type ShuffleRequest struct {
	// Username selects the user's active Twitch emote set
	Username string

	// SetID selects an emote set directly and takes precedence over Username
	SetID string

	// Rate is the maximum number of renames per minute
	Rate float64

	// TempNameLength is the length of placeholder names
	TempNameLength int

	// DryRun performs planning only without renaming anything
	DryRun bool

	// Progress receives run progress; nil discards it
	Progress progress.Reporter
}

// DescribeRequest represents a request to show an emote set.
type DescribeRequest struct {
	// Username selects the user's active Twitch emote set
	Username string

	// SetID selects an emote set directly and takes precedence over Username
	SetID string
}

// ShuffleResult represents the outcome of a shuffle.
type ShuffleResult struct {
	// RunID identifies this run in logs
	RunID string

	// Set is the snapshot the plan was built from
	Set *seventv.EmoteSet

	// Targets holds the name each emote of Set ends with, positionally
	Targets []string

	// Plan is the ordered list of renames
	Plan *planner.RenamePlan

	// Applied is the number of renames applied
	Applied int

	// DryRun is true if nothing was renamed on purpose
	DryRun bool
}

// Complete returns true if every planned rename was applied.
func (r *ShuffleResult) Complete() bool {
	return r.Plan != nil && r.Applied == len(r.Plan.Operations)
}
