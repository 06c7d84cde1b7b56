package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "panelinput/internal/config"
	"panelinput/internal/system"
)

func init() { rootCmd.AddCommand(configCmd) }

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Create config.yaml when missing and print its location",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, created, err := cfg.Init()
		if err != nil {
			return fmt.Errorf("init config: %w", err)
		}
		if created {
			system.Logger.Info("config created", "path", p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p)
		return nil
	},
}
