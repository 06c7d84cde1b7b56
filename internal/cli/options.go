package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"panelinput/internal/config"
	"panelinput/internal/store"
	"panelinput/internal/system"
	"panelinput/pkg/panelinput"
)

// resolveConfig loads config.yaml and applies the shared flags on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	f := cmd.Flags()
	if f.Changed("fuzzy") && flagFuzzy {
		cfg.Match = config.MatchFuzzy
	}
	if f.Changed("max-rows") {
		cfg.MaxRows = flagMaxRows
	}
	if f.Changed("width") {
		cfg.Width = flagWidth
	}
	if f.Changed("prompt") {
		cfg.Prompt = flagPrompt
	}
	cfg = cfg.Normalize()
	system.Logger.Debug("config resolved", "source", cfg.Source, "match", cfg.Match, "rows", cfg.MaxRows, "width", cfg.Width)
	return cfg, nil
}

// staticChoices picks the first non-empty list of: args, choices.json,
// config choices, built-in defaults.
func staticChoices(cfg config.Config, args []string) ([]string, error) {
	if list := store.Normalize(args); len(list) > 0 {
		return list, nil
	}
	saved, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load choices: %w", err)
	}
	if len(saved) > 0 {
		return saved, nil
	}
	if list := store.Normalize(cfg.Choices); len(list) > 0 {
		return list, nil
	}
	return panelinput.DefaultChoices(), nil
}

// newInput builds the widget for cfg. args only matter for a static source.
func newInput(cfg config.Config, args []string) (*panelinput.Input, error) {
	st, err := cfg.Styles()
	if err != nil {
		return nil, fmt.Errorf("config style: %w", err)
	}
	opts := []panelinput.Option{
		panelinput.WithStyle(st),
		panelinput.WithMaxRows(cfg.MaxRows),
		panelinput.WithWidth(cfg.Width),
	}
	if cfg.Match == config.MatchFuzzy {
		opts = append(opts, panelinput.WithFuzzy())
	}
	if cfg.Source == config.SourceShell {
		return panelinput.New(append(opts, panelinput.WithCompleter(cfg.Compgen().Complete))...), nil
	}
	choices, err := staticChoices(cfg, args)
	if err != nil {
		return nil, err
	}
	return panelinput.New(append(opts, panelinput.WithChoices(choices))...), nil
}
