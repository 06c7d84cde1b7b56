package ui

import "panelinput/internal/panel"

func (m model) View() string {
	// nothing left on screen once the session is over
	if m.phase != editing {
		return ""
	}
	return panel.Paint(m.lines(), m.style)
}

func (m model) lines() []panel.Line {
	return panel.RenderView(m.prompt, m.state, m.layout, m.help.ShortHelpView(m.keys.ShortHelp()))
}
