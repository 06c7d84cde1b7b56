package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelinput/internal/config"
)

func init() {
	rootCmd.AddCommand(pickCmd)
}

var pickCmd = &cobra.Command{
	Use:   "pick [choice]...",
	Short: "Prompt once over static choices and print the result",
	Long: "Shows one prompt whose suggestions come from the given choices, else choices.json,\n" +
		"else the config file, else the built-in list. Exits 130 when interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cfg.Source = config.SourceStatic
		in, err := newInput(cfg, args)
		if err != nil {
			return err
		}
		v, err := in.Prompt(cmd.Context(), cfg.Prompt)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}
