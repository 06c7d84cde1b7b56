package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Fill      key.Binding
	Accept    key.Binding
	Dismiss   key.Binding
	ClearLine key.Binding
	Backspace key.Binding
	Interrupt key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Fill:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab:", "fill from selection")),
		Accept:    key.NewBinding(key.WithKeys("enter")),
		Dismiss:   key.NewBinding(key.WithKeys("esc")),
		ClearLine: key.NewBinding(key.WithKeys("ctrl+u")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C:", "abort")),
	}
}

func (k keyMap) ShortHelp() []key.Binding { return []key.Binding{k.Fill, k.Interrupt} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// printable returns the text a key event would type, or "" for control keys.
// Pasted text arrives as one event with many runes.
func printable(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
	default:
		return ""
	}
	rs := msg.Runes
	if msg.Type == tea.KeySpace && len(rs) == 0 {
		rs = []rune{' '}
	}
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if unicode.IsPrint(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
