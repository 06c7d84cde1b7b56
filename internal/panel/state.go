// Package panel holds the edit buffer with its filtered candidates and renders
// them as a fixed-height bordered suggestion box.
package panel

import (
	"unicode/utf8"

	"panelinput/internal/complete"
)

// State is the mutable model behind one prompt: the buffer, the candidates
// derived from it and the highlighted row.
type State struct {
	source complete.Source
	buffer string
	items  []string
	index  int
}

// NewState returns an empty state bound to src. A nil src never matches.
func NewState(src complete.Source) *State {
	s := &State{source: src}
	s.Recompute()
	return s
}

// Buffer returns the typed text.
func (s *State) Buffer() string { return s.buffer }

// Index returns the highlighted row; 0 when there are no candidates.
func (s *State) Index() int { return s.index }

// Items returns a copy of the current candidates.
func (s *State) Items() []string { return append([]string(nil), s.items...) }

// Selected returns the highlighted candidate, if any.
func (s *State) Selected() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[s.index], true
}

// AppendRune adds one character to the end of the buffer.
func (s *State) AppendRune(r rune) {
	s.buffer += string(r)
	s.Recompute()
}

// AppendText adds text to the end of the buffer with a single recompute.
func (s *State) AppendText(text string) {
	if text == "" {
		return
	}
	s.buffer += text
	s.Recompute()
}

// Backspace drops the last character of the buffer.
func (s *State) Backspace() {
	if s.buffer != "" {
		_, size := utf8.DecodeLastRuneInString(s.buffer)
		s.buffer = s.buffer[:len(s.buffer)-size]
	}
	s.Recompute()
}

// Clear empties the buffer.
func (s *State) Clear() {
	s.buffer = ""
	s.Recompute()
}

// MoveUp highlights the previous candidate, stopping at the first.
func (s *State) MoveUp() {
	if len(s.items) > 0 && s.index > 0 {
		s.index--
	}
}

// MoveDown highlights the next candidate, stopping at the last.
func (s *State) MoveDown() {
	if len(s.items) > 0 && s.index < len(s.items)-1 {
		s.index++
	}
}

// AcceptHighlighted copies the highlighted candidate into the buffer and
// recomputes, so further typing narrows from the new text.
func (s *State) AcceptHighlighted() {
	sel, ok := s.Selected()
	if !ok {
		return
	}
	s.buffer = sel
	s.Recompute()
}

// Recompute refreshes the candidates from the source and clamps the
// selection so it keeps its row when it still can.
func (s *State) Recompute() {
	var got []string
	if s.source != nil {
		got = s.source.Candidates(s.buffer)
	}
	items := make([]string, 0, len(got))
	for _, c := range got {
		if c != "" {
			items = append(items, c)
		}
	}
	s.items = items
	s.clamp()
}

// Seed replaces the candidates without consulting the source. The next
// buffer edit recomputes them as usual.
func (s *State) Seed(items []string) {
	s.items = s.items[:0]
	for _, c := range items {
		if c != "" {
			s.items = append(s.items, c)
		}
	}
	s.clamp()
}

func (s *State) clamp() {
	s.index = min(s.index, max(len(s.items)-1, 0))
	if s.index < 0 {
		s.index = 0
	}
}
