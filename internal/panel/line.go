package panel

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Segment is a run of text drawn with one style tag.
type Segment struct {
	Tag  Tag
	Text string
}

// Line is one display row made of styled segments.
type Line []Segment

// Text returns the unstyled content of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Len returns the line length in characters.
func (l Line) Len() int {
	return utf8.RuneCountInString(l.Text())
}

// Truncate shortens text to at most width characters, ending in an ellipsis
// when something was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(text)
	if len(r) <= width {
		return text
	}
	if width == 1 {
		return Ellipsis
	}
	return string(r[:width-1]) + Ellipsis
}

// padRight left-justifies text to width characters.
func padRight(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}

// center pads text on both sides with fill up to width characters. Odd
// padding goes to the right unless width is odd too, matching str.center.
func center(text string, width int, fill string) string {
	n := utf8.RuneCountInString(text)
	marg := width - n
	if marg <= 0 {
		return text
	}
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(fill, left) + text + strings.Repeat(fill, marg-left)
}

// Paint renders lines with the given style, one terminal row per line.
func Paint(lines []Line, st Style) string {
	var b strings.Builder
	for i, ln := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, seg := range ln {
			if seg.Text == "" {
				continue
			}
			b.WriteString(st.Get(seg.Tag).Render(seg.Text))
		}
	}
	return b.String()
}
