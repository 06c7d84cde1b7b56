package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelinput/internal/store"
)

func init() {
	choicesCmd.AddCommand(choicesLsCmd)
}

var choicesLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List saved choices",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := store.Load()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(list) == 0 {
			fmt.Fprintln(out, "(empty)")
			return nil
		}
		for _, s := range list {
			fmt.Fprintln(out, s)
		}
		return nil
	},
}
