package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Juliapixel/emote-shuffler/internal/engine"
)

var showSetID string

var showCmd = &cobra.Command{
	Use:   "show [username]",
	Short: "List the emotes of a user's active emote set",
	Long:  `Display every emote of a user's active Twitch emote set, or of the set given by --set-id.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		eng := newEngine(cfg, logger, nil)

		req := &engine.DescribeRequest{SetID: showSetID}
		if len(args) > 0 {
			req.Username = args[0]
		}

		ctx, stop := interruptContext()
		defer stop()

		set, err := eng.DescribeSet(ctx, req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(set)
		}

		PrintSection(fmt.Sprintf("%s (%s)", set.Name, set.ID))
		if len(set.Emotes) == 0 {
			PrintEmptyState("No emotes in this set")
			return nil
		}

		rows := make([][]string, 0, len(set.Emotes))
		for _, emote := range set.Emotes {
			rows = append(rows, []string{emote.Name, emote.ID})
		}
		PrintTable([]string{"NAME", "ID"}, rows)
		fmt.Fprintln(stdout)
		PrintInfo(PrintCount(len(set.Emotes), "emote", "emotes"))
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showSetID, "set-id", "", "Show this emote set instead of the user's active one")
}
