package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.phase != editing {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Interrupt):
			m.phase = cancelled
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.result = m.acceptValue()
			m.phase = accepted
			return m, tea.Quit
		case key.Matches(msg, m.keys.Fill):
			m.state.AcceptHighlighted()
		case key.Matches(msg, m.keys.Up):
			m.state.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.state.MoveDown()
		case key.Matches(msg, m.keys.Backspace):
			m.state.Backspace()
		case key.Matches(msg, m.keys.Dismiss), key.Matches(msg, m.keys.ClearLine):
			m.state.Clear()
		default:
			// any other key is ignored unless it types something
			if text := printable(msg); text != "" {
				m.state.AppendText(text)
			}
		}
	}
	return m, nil
}

// acceptValue picks what Enter returns: the buffer, else the highlighted
// candidate, else the empty string.
func (m model) acceptValue() string {
	if b := m.state.Buffer(); b != "" {
		return b
	}
	if sel, ok := m.state.Selected(); ok {
		return sel
	}
	return ""
}
