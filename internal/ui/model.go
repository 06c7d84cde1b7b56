package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"panelinput/internal/complete"
	"panelinput/internal/panel"
)

// phase tracks where the session is in its lifecycle.
type phase int

const (
	editing phase = iota
	accepted
	cancelled
)

// Model for one prompt session
type model struct {
	prompt string
	state  *panel.State
	layout panel.Layout
	style  panel.Style

	keys keyMap
	help help.Model

	phase  phase
	result string
}

// Options configures one prompt session.
type Options struct {
	Prompt string
	Source complete.Source
	Style  panel.Style
	Layout panel.Layout
	// Seed pre-populates the candidate list while the buffer is still empty.
	Seed []string
}

func newModel(opts Options) model {
	st := opts.Style
	if st == nil {
		st = panel.DefaultStyle()
	}
	s := panel.NewState(opts.Source)
	if len(opts.Seed) > 0 {
		s.Seed(opts.Seed)
	}
	h := help.New()
	h.ShortSeparator = " | "
	// footer styling happens through the style map, keep help output plain
	plain := lipgloss.NewStyle()
	h.Styles.ShortKey = plain
	h.Styles.ShortDesc = plain
	h.Styles.ShortSeparator = plain
	return model{
		prompt: opts.Prompt,
		state:  s,
		layout: opts.Layout.Normalize(),
		style:  st,
		keys:   defaultKeyMap(),
		help:   h,
	}
}

func (m model) Init() tea.Cmd { return nil }
