package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Juliapixel/emote-shuffler/internal/engine"
	"github.com/Juliapixel/emote-shuffler/internal/progress"
)

var (
	shuffleSetID      string
	shuffleRate       float64
	shuffleDryRun     bool
	shuffleSeed       uint64
	shuffleTempLength int
	shuffleNoProgress bool
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [username]",
	Short: "Shuffle the names of a user's active emote set",
	Long: `Shuffle the emote names of a user's active Twitch emote set (or the set given
by --set-id) into a random order.

Renames run one at a time at no more than --rate per minute. If a rename fails
the run stops; renames already made stay in place and every emote still has a
unique name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("rate") {
			cfg.Rate = shuffleRate
		}
		if cmd.Flags().Changed("temp-length") {
			cfg.TempNameLength = shuffleTempLength
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		var seed *uint64
		if cmd.Flags().Changed("seed") {
			seed = &shuffleSeed
		}
		eng := newEngine(cfg, logger, seed)

		ctx, stop := interruptContext()
		defer stop()

		req := &engine.ShuffleRequest{
			SetID:          shuffleSetID,
			Rate:           cfg.Rate,
			TempNameLength: cfg.TempNameLength,
			DryRun:         shuffleDryRun,
			Progress:       progress.Nop{},
		}
		if len(args) > 0 {
			req.Username = args[0]
		}
		if !shuffleDryRun && !jsonOutput && !shuffleNoProgress {
			req.Progress = progress.NewBar(stderr)
		}

		result, err := eng.Shuffle(ctx, req)
		if err != nil {
			var stepErr *engine.StepError
			if result != nil && errors.As(err, &stepErr) {
				PrintWarning(fmt.Sprintf("Applied %d of %s; the set is left partially shuffled",
					result.Applied, PrintCount(len(result.Plan.Operations), "rename", "renames")))
			}
			return err
		}

		if jsonOutput {
			return outputJSON(newShuffleView(result))
		}

		if result.DryRun {
			printDryRun(result)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Shuffled %s with %s",
			PrintCount(len(result.Set.Emotes), "emote", "emotes"),
			PrintCount(result.Applied, "rename", "renames")))
		PrintLabelValue("Emote set", fmt.Sprintf("%s (%s)", result.Set.Name, result.Set.ID))
		return nil
	},
}

func printDryRun(result *engine.ShuffleResult) {
	PrintSection("Dry Run")
	PrintLabelValue("Emote set", fmt.Sprintf("%s (%s)", result.Set.Name, result.Set.ID))
	PrintInfo(fmt.Sprintf("Would apply %s across %s",
		PrintCount(len(result.Plan.Operations), "rename", "renames"),
		PrintCount(result.Plan.Cycles, "cycle", "cycles")))
	if result.Plan.IsEmpty() {
		return
	}

	current := make(map[string]string, len(result.Set.Emotes))
	for _, emote := range result.Set.Emotes {
		current[emote.ID] = emote.Name
	}

	PrintSubsection("Renames:")
	lines := make([]string, 0, len(result.Plan.Operations))
	for _, op := range result.Plan.Operations {
		line := fmt.Sprintf("%s: %s → %s", op.TargetID, current[op.TargetID], op.NewName)
		if op.Temporary {
			line += " (temporary)"
		}
		current[op.TargetID] = op.NewName
		lines = append(lines, line)
	}
	PrintList(lines, 1)
}

// shuffleView is the JSON shape of a shuffle result.
type shuffleView struct {
	RunID   string          `json:"run_id"`
	SetID   string          `json:"set_id"`
	SetName string          `json:"set_name"`
	DryRun  bool            `json:"dry_run"`
	Cycles  int             `json:"cycles"`
	Applied int             `json:"applied"`
	Renames []renameView    `json:"renames"`
	Final   []emoteNameView `json:"final"`
}

type renameView struct {
	EmoteID   string `json:"emote_id"`
	Name      string `json:"name"`
	Temporary bool   `json:"temporary,omitempty"`
}

type emoteNameView struct {
	EmoteID string `json:"emote_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

func newShuffleView(result *engine.ShuffleResult) shuffleView {
	view := shuffleView{
		RunID:   result.RunID,
		SetID:   result.Set.ID,
		SetName: result.Set.Name,
		DryRun:  result.DryRun,
		Cycles:  result.Plan.Cycles,
		Applied: result.Applied,
		Renames: make([]renameView, 0, len(result.Plan.Operations)),
		Final:   make([]emoteNameView, 0, len(result.Set.Emotes)),
	}
	for _, op := range result.Plan.Operations {
		view.Renames = append(view.Renames, renameView{EmoteID: op.TargetID, Name: op.NewName, Temporary: op.Temporary})
	}
	for i, emote := range result.Set.Emotes {
		view.Final = append(view.Final, emoteNameView{EmoteID: emote.ID, From: emote.Name, To: result.Targets[i]})
	}
	return view
}

func init() {
	shuffleCmd.Flags().StringVar(&shuffleSetID, "set-id", "", "Shuffle this emote set instead of the user's active one")
	shuffleCmd.Flags().Float64VarP(&shuffleRate, "rate", "r", 0, "Maximum renames per minute (default from config, 100)")
	shuffleCmd.Flags().BoolVar(&shuffleDryRun, "dry-run", false, "Show the planned renames without applying them")
	shuffleCmd.Flags().Uint64Var(&shuffleSeed, "seed", 0, "Seed for a reproducible shuffle")
	shuffleCmd.Flags().IntVar(&shuffleTempLength, "temp-length", 0, "Length of temporary placeholder names (default from config, 16)")
	shuffleCmd.Flags().BoolVar(&shuffleNoProgress, "no-progress", false, "Do not draw the progress bar")
}
