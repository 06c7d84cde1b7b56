package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"panelinput/internal/complete"
	"panelinput/internal/panel"
)

// Suggestion sources.
const (
	SourceShell  = "shell"
	SourceStatic = "static"
)

// Static matching modes.
const (
	MatchSubstring = "substring"
	MatchFuzzy     = "fuzzy"
)

// DefaultPrompt is the prompt text used when none is configured.
const DefaultPrompt = "❯ "

// Completer configures the bash compgen completer.
type Completer struct {
	Shell       string `yaml:"shell" json:"shell,omitempty" jsonschema:"description=Shell executable that runs compgen,default=bash"`
	Flags       string `yaml:"flags" json:"flags,omitempty" jsonschema:"description=compgen action flags,default=-cdfa"`
	Interactive bool   `yaml:"interactive" json:"interactive,omitempty" jsonschema:"description=Run the shell with -i so aliases and functions load,default=true"`
	Timeout     string `yaml:"timeout" json:"timeout,omitempty" jsonschema:"description=Upper bound for one completion call (Go duration; 0 disables),default=2s"`
}

// Config is the on-disk config.yaml.
type Config struct {
	Prompt    string            `yaml:"prompt" json:"prompt,omitempty" jsonschema:"description=Prompt text shown before the input"`
	MaxRows   int               `yaml:"max_rows" json:"max_rows,omitempty" jsonschema:"description=Suggestion rows in the panel,minimum=1,default=6"`
	Width     int               `yaml:"width" json:"width,omitempty" jsonschema:"description=Total panel width in columns,minimum=10,default=46"`
	Source    string            `yaml:"source" json:"source,omitempty" jsonschema:"description=Where suggestions come from,enum=shell,enum=static,default=shell"`
	Match     string            `yaml:"match" json:"match,omitempty" jsonschema:"description=How static choices are matched,enum=substring,enum=fuzzy,default=substring"`
	Choices   []string          `yaml:"choices" json:"choices,omitempty" jsonschema:"description=Static choices used when source is static"`
	Completer Completer         `yaml:"completer" json:"completer,omitempty"`
	Style     map[string]string `yaml:"style" json:"style,omitempty" jsonschema:"description=Style spec per tag (e.g. panel-border: ansibrightblack)"`
}

// Default returns the built-in configuration.
func Default() Config {
	cg := complete.DefaultCompgen()
	style := make(map[string]string, len(panel.DefaultSpecs))
	for tag, spec := range panel.DefaultSpecs {
		style[string(tag)] = spec
	}
	l := panel.DefaultLayout()
	return Config{
		Prompt:  DefaultPrompt,
		MaxRows: l.MaxRows,
		Width:   l.Width,
		Source:  SourceShell,
		Match:   MatchSubstring,
		Choices: append([]string(nil), complete.DefaultChoices...),
		Completer: Completer{
			Shell:       cg.Shell,
			Flags:       cg.Flags,
			Interactive: cg.Interactive,
			Timeout:     cg.Timeout.String(),
		},
		Style: style,
	}
}

// Normalize replaces invalid or empty values with defaults.
func (c Config) Normalize() Config {
	def := Default()
	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
	l := panel.Layout{MaxRows: c.MaxRows, Width: c.Width}.Normalize()
	c.MaxRows, c.Width = l.MaxRows, l.Width
	c.Source = strings.ToLower(strings.TrimSpace(c.Source))
	if c.Source != SourceShell && c.Source != SourceStatic {
		c.Source = def.Source
	}
	c.Match = strings.ToLower(strings.TrimSpace(c.Match))
	if c.Match != MatchSubstring && c.Match != MatchFuzzy {
		c.Match = def.Match
	}
	if strings.TrimSpace(c.Completer.Shell) == "" {
		c.Completer.Shell = def.Completer.Shell
	}
	if strings.TrimSpace(c.Completer.Flags) == "" {
		c.Completer.Flags = def.Completer.Flags
	}
	if _, err := time.ParseDuration(c.Completer.Timeout); err != nil {
		c.Completer.Timeout = def.Completer.Timeout
	}
	if c.Style == nil {
		c.Style = def.Style
	}
	return c
}

// Layout returns the panel geometry.
func (c Config) Layout() panel.Layout {
	return panel.Layout{MaxRows: c.MaxRows, Width: c.Width}.Normalize()
}

// Compgen returns the completer settings. An unparsable timeout falls back to the default.
func (c Config) Compgen() complete.Compgen {
	cg := complete.DefaultCompgen()
	if c.Completer.Shell != "" {
		cg.Shell = c.Completer.Shell
	}
	if c.Completer.Flags != "" {
		cg.Flags = c.Completer.Flags
	}
	cg.Interactive = c.Completer.Interactive
	if d, err := time.ParseDuration(c.Completer.Timeout); err == nil {
		cg.Timeout = d
	}
	return cg
}

// Styles parses the style map.
func (c Config) Styles() (panel.Style, error) {
	return panel.StyleFromSpecs(c.Style)
}

// Load reads config.yaml. A missing file yields Default() and no error.
// Keys absent from the file keep their default values.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(p)
}

// LoadFile reads a config from path; see Load.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.Normalize(), nil
}

// Save writes cfg to config.yaml, creating the directory if needed.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg.Normalize())
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Init writes the default config when none exists and returns its path.
func Init() (path string, created bool, err error) {
	path, err = Path()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := Save(Default()); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// Schema returns a JSON Schema describing config.yaml.
func Schema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Config{})
	sch.Title = "panelinput config"
	sch.Description = "Contents of config.yaml in the panelinput config directory."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
