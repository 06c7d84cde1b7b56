package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelinput/internal/store"
	"panelinput/internal/system"
)

func init() {
	choicesCmd.AddCommand(choicesAddCmd)
}

var choicesAddCmd = &cobra.Command{
	Use:   "add <choice>...",
	Short: "Append choices",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := cleanArgs(args)
		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "no valid choices given")
			return nil
		}
		added, existed, err := store.Add(items)
		if err != nil {
			return fmt.Errorf("add choices: %w", err)
		}
		for _, s := range added {
			fmt.Fprintf(out, "✓ added: %s\n", s)
		}
		for _, s := range existed {
			fmt.Fprintf(out, "• exists: %s\n", s)
		}
		if len(added) > 0 {
			system.Logger.Info("choices saved", "added", len(added))
		}
		return nil
	},
}
