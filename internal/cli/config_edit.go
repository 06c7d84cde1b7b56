package cli

import (
	"github.com/spf13/cobra"

	"panelinput/internal/settings"
)

func init() {
	configCmd.AddCommand(configEditCmd)
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit config.yaml in an interactive form",
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Edit()
	},
}
