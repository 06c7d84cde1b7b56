package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "panelinput/internal/config"
)

func init() {
	configCmd.AddCommand(configSchemaCmd)
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.yaml",
	Long:  "Writes the JSON Schema of config.yaml to stdout, for editor validation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cfg.MarshalSchema(cfg.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
