package panel

import "strings"

const (
	DefaultMaxRows = 6
	DefaultWidth   = 46

	minWidth = 10

	selectedMarker = "› "
	plainMarker    = "  "

	titleSuggestions = "Suggestions"
	titleNoResults   = "No results"
	noResultsMessage = "no results"
)

// DefaultHint is the footer shown under the panel.
const DefaultHint = "Tab: fill from selection | Ctrl+C: abort"

// Layout fixes the panel geometry.
type Layout struct {
	MaxRows int // candidate rows, excluding borders
	Width   int // total width including borders
}

// DefaultLayout returns a 6-row, 46-column panel.
func DefaultLayout() Layout {
	return Layout{MaxRows: DefaultMaxRows, Width: DefaultWidth}
}

// Normalize fills zero values with defaults and enforces minimums.
func (l Layout) Normalize() Layout {
	if l.MaxRows <= 0 {
		l.MaxRows = DefaultMaxRows
	}
	if l.Width <= 0 {
		l.Width = DefaultWidth
	}
	if l.Width < minWidth {
		l.Width = minWidth
	}
	return l
}

// Inner returns the text width available inside a row.
func (l Layout) Inner() int { return l.Width - 4 }

// Height returns the number of lines RenderPanel produces.
func (l Layout) Height() int { return l.Normalize().MaxRows + 2 }

// RenderPanel draws the suggestion box for s. It returns nil when the buffer
// is empty; otherwise exactly MaxRows+2 lines, whatever the candidate count.
func RenderPanel(s *State, l Layout) []Line {
	if s.Buffer() == "" {
		return nil
	}
	l = l.Normalize()
	lines := make([]Line, 0, l.MaxRows+2)
	items := s.items
	if len(items) == 0 {
		lines = append(lines, header(titleNoResults, l))
		lines = append(lines, row(Truncate(noResultsMessage, l.Inner()), TagNoResults, l))
		for i := 0; i < l.MaxRows-1; i++ {
			lines = append(lines, row("", TagPlaceholder, l))
		}
		return append(lines, footer(l))
	}

	lines = append(lines, header(titleSuggestions, l))
	start := 0
	if s.index >= l.MaxRows {
		start = s.index - l.MaxRows + 1
	}
	for i := 0; i < l.MaxRows; i++ {
		idx := start + i
		if idx >= len(items) {
			lines = append(lines, row("", TagPlaceholder, l))
			continue
		}
		marker, tag := plainMarker, TagLine
		if idx == s.index {
			marker, tag = selectedMarker, TagSelected
		}
		text := marker + Truncate(items[idx], l.Inner()-len([]rune(marker)))
		lines = append(lines, row(text, tag, l))
	}
	return append(lines, footer(l))
}

// RenderView draws the whole widget: prompt and buffer, the panel when the
// buffer is non-empty, and the footer hint.
func RenderView(prompt string, s *State, l Layout, hint string) []Line {
	lines := []Line{{{Tag: TagPrompt, Text: prompt}, {Tag: TagInput, Text: s.Buffer()}}}
	if p := RenderPanel(s, l); p != nil {
		lines = append(lines, Line{})
		lines = append(lines, p...)
		lines = append(lines, Line{})
	}
	return append(lines, Line{{Tag: TagFooter, Text: hint}})
}

func header(title string, l Layout) Line {
	inner := l.Width - 2
	title = Truncate(title, inner-2)
	return Line{{Tag: TagBorder, Text: "┌" + center(" "+title+" ", inner, "─") + "┐"}}
}

func footer(l Layout) Line {
	return Line{{Tag: TagBorder, Text: "└" + strings.Repeat("─", l.Width-2) + "┘"}}
}

func row(text string, tag Tag, l Layout) Line {
	return Line{
		{Tag: TagBorder, Text: "│ "},
		{Tag: tag, Text: padRight(text, l.Inner())},
		{Tag: TagBorder, Text: " │"},
	}
}
