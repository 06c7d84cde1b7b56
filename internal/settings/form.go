package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"panelinput/internal/config"
)

// values holds the editable fields as the form binds them.
type values struct {
	prompt      string
	maxRows     string
	width       string
	source      string
	match       string
	interactive bool
	timeout     string
}

func fromConfig(c config.Config) values {
	return values{
		prompt:      c.Prompt,
		maxRows:     strconv.Itoa(c.MaxRows),
		width:       strconv.Itoa(c.Width),
		source:      c.Source,
		match:       c.Match,
		interactive: c.Completer.Interactive,
		timeout:     c.Completer.Timeout,
	}
}

// apply copies validated form values onto c.
func (v values) apply(c config.Config) config.Config {
	c.Prompt = v.prompt
	c.MaxRows, _ = strconv.Atoi(strings.TrimSpace(v.maxRows))
	c.Width, _ = strconv.Atoi(strings.TrimSpace(v.width))
	c.Source = v.source
	c.Match = v.match
	c.Completer.Interactive = v.interactive
	c.Completer.Timeout = strings.TrimSpace(v.timeout)
	return c.Normalize()
}

func positive(min int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < min {
			return fmt.Errorf("must be at least %d", min)
		}
		return nil
	}
}

func validTimeout(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a duration such as 2s or 500ms")
	}
	if d < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// Edit opens an interactive form over the current config.yaml and saves it on
// submit. Aborting the form leaves the file untouched.
func Edit() error {
	cur, err := config.Load()
	if err != nil {
		return err
	}
	v := fromConfig(cur)

	green := lipgloss.Color("#03BF87")
	theme := huh.ThemeCharm()
	theme.FieldSeparator = lipgloss.NewStyle()
	theme.Blurred.Title = theme.Blurred.Title.Width(18).Foreground(lipgloss.Color("7"))
	theme.Focused.Title = theme.Focused.Title.Width(18).Foreground(green).Bold(true)
	theme.Focused.SelectedOption = lipgloss.NewStyle().Foreground(green)
	theme.Focused.Base = theme.Focused.Base.BorderForeground(green)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("panelinput").Description("Edit config.yaml"),
			huh.NewInput().Title("Prompt").Value(&v.prompt),
			huh.NewInput().Title("Rows").Value(&v.maxRows).Validate(positive(1)),
			huh.NewInput().Title("Width").Value(&v.width).Validate(positive(10)),
			huh.NewSelect[string]().
				Title("Source").
				Options(huh.NewOptions(config.SourceShell, config.SourceStatic)...).
				Value(&v.source),
			huh.NewSelect[string]().
				Title("Match").
				Options(huh.NewOptions(config.MatchSubstring, config.MatchFuzzy)...).
				Value(&v.match),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Interactive").Description("load aliases and functions (bash -i)").Value(&v.interactive),
			huh.NewInput().Title("Timeout").Value(&v.timeout).Validate(validTimeout),
		),
	).WithTheme(theme).WithWidth(60)

	if err := form.Run(); err != nil {
		return err // form canceled or failed
	}
	if err := config.Save(v.apply(cur)); err != nil {
		return err
	}
	p, _ := config.Path()
	fmt.Printf("\n✓ saved %s\n\n", p)
	return nil
}
