package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// choicesCmd groups the choices.json management subcommands.
var choicesCmd = &cobra.Command{
	Use:   "choices",
	Short: "Manage the static choices list",
	Long:  "Add, remove and list entries of choices.json, the list `pick` and --static suggest from.",
}

func init() {
	rootCmd.AddCommand(choicesCmd)
}

// cleanArgs trims args and drops empty ones.
func cleanArgs(args []string) []string {
	items := make([]string, 0, len(args))
	for _, a := range args {
		if a = strings.TrimSpace(a); a != "" {
			items = append(items, a)
		}
	}
	return items
}
