package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelinput/internal/store"
	"panelinput/internal/system"
)

func init() {
	choicesCmd.AddCommand(choicesRmCmd)
}

var choicesRmCmd = &cobra.Command{
	Use:     "rm <choice>...",
	Aliases: []string{"remove"},
	Short:   "Remove choices",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := cleanArgs(args)
		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "no valid choices given")
			return nil
		}
		removed, missing, err := store.Remove(items)
		if err != nil {
			return fmt.Errorf("remove choices: %w", err)
		}
		for _, s := range removed {
			fmt.Fprintf(out, "✓ removed: %s\n", s)
		}
		for _, s := range missing {
			fmt.Fprintf(out, "• not found: %s\n", s)
		}
		if len(removed) > 0 {
			system.Logger.Info("choices saved", "removed", len(removed))
		}
		return nil
	},
}
