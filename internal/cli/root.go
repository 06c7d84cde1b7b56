package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"panelinput/internal/app"
	"panelinput/internal/config"
	"panelinput/internal/system"
	"panelinput/pkg/panelinput"
)

var (
	flagStatic  bool
	flagFuzzy   bool
	flagMaxRows int
	flagWidth   int
	flagPrompt  string
	flagTimeout time.Duration
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "panelinput",
	Short: "panelinput – prompt with a suggestion panel",
	Long: "panelinput reads lines with a bordered suggestion panel below the prompt.\n" +
		"Without a subcommand it runs a demo loop that completes the last word with bash compgen\n" +
		"and prints every accepted line. When stdin is piped, each line is replayed as keystrokes\n" +
		"(tab fills from the selection) and the accepted value is printed.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		system.SetDebug(flagDebug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if flagStatic {
			cfg.Source = config.SourceStatic
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Completer.Timeout = flagTimeout.String()
		}
		in, err := newInput(cfg, nil)
		if err != nil {
			return err
		}
		return app.Start(cmd.Context(), in, cfg.Prompt)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "log debug output to stderr")
	pf.BoolVar(&flagFuzzy, "fuzzy", false, "rank static choices by fuzzy score")
	pf.IntVar(&flagMaxRows, "max-rows", 0, "suggestion rows in the panel (default from config)")
	pf.IntVar(&flagWidth, "width", 0, "panel width in columns (default from config)")
	pf.StringVar(&flagPrompt, "prompt", "", "prompt text (default from config)")

	rootCmd.Flags().BoolVar(&flagStatic, "static", false, "suggest static choices instead of shell completions")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 2*time.Second, "upper bound for one completer call (0 disables)")
}

// Execute runs the CLI.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}
	stop()
	if errors.Is(err, panelinput.ErrInterrupted) {
		os.Exit(130)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
