package panel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tag names a semantic piece of the widget; styles are looked up by tag.
type Tag string

const (
	TagPrompt      Tag = "prompt"
	TagInput       Tag = "input"
	TagBorder      Tag = "panel-border"
	TagLine        Tag = "panel-line"
	TagPlaceholder Tag = "panel-placeholder"
	TagSelected    Tag = "selected-line"
	TagFooter      Tag = "footer"
	TagNoResults   Tag = "no-results"
)

// Tags lists every tag the renderer emits.
var Tags = []Tag{TagPrompt, TagInput, TagBorder, TagLine, TagPlaceholder, TagSelected, TagFooter, TagNoResults}

// Style maps tags to display attributes. Missing tags render unstyled.
type Style map[Tag]lipgloss.Style

// DefaultSpecs holds the default style in spec-string form.
var DefaultSpecs = map[Tag]string{
	TagPrompt:      "ansicyan bold",
	TagInput:       "ansicyan",
	TagBorder:      "ansibrightblack",
	TagLine:        "",
	TagPlaceholder: "ansibrightblack",
	TagSelected:    "reverse",
	TagFooter:      "ansibrightblack",
	TagNoResults:   "italic ansiyellow",
}

// DefaultStyle returns a fresh copy of the default style.
func DefaultStyle() Style {
	st := make(Style, len(DefaultSpecs))
	for tag, spec := range DefaultSpecs {
		s, _ := ParseStyle(spec)
		st[tag] = s
	}
	return st
}

// Get returns the style for tag.
func (s Style) Get(tag Tag) lipgloss.Style {
	if st, ok := s[tag]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Clone returns a shallow copy that can be modified independently.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// StyleFromSpecs layers spec strings over the default style.
// Unknown tags and malformed specs are reported together.
func StyleFromSpecs(specs map[string]string) (Style, error) {
	st := DefaultStyle()
	known := make(map[Tag]bool, len(Tags))
	for _, t := range Tags {
		known[t] = true
	}
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var errs []string
	for _, k := range keys {
		tag := Tag(strings.TrimPrefix(k, "class:"))
		if !known[tag] {
			errs = append(errs, fmt.Sprintf("unknown style tag %q", k))
			continue
		}
		s, err := ParseStyle(specs[k])
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", k, err))
			continue
		}
		st[tag] = s
	}
	if len(errs) > 0 {
		return st, fmt.Errorf("style: %s", strings.Join(errs, "; "))
	}
	return st, nil
}

var ansiNames = map[string]string{
	"ansiblack":         "0",
	"ansired":           "1",
	"ansigreen":         "2",
	"ansiyellow":        "3",
	"ansiblue":          "4",
	"ansimagenta":       "5",
	"ansicyan":          "6",
	"ansigray":          "7",
	"ansiwhite":         "7",
	"ansibrightblack":   "8",
	"ansibrightred":     "9",
	"ansibrightgreen":   "10",
	"ansibrightyellow":  "11",
	"ansibrightblue":    "12",
	"ansibrightmagenta": "13",
	"ansibrightcyan":    "14",
	"ansibrightwhite":   "15",
}

// ParseStyle reads a space-separated attribute list such as
// "italic ansiyellow", "reverse", "#4d9375 bg:ansiblack" or "bold 63".
// Colors may be ANSI names, 0-255 indexes or #rgb/#rrggbb hex.
func ParseStyle(spec string) (lipgloss.Style, error) {
	st := lipgloss.NewStyle()
	for _, tok := range strings.Fields(strings.ToLower(spec)) {
		switch tok {
		case "bold":
			st = st.Bold(true)
		case "italic":
			st = st.Italic(true)
		case "underline":
			st = st.Underline(true)
		case "reverse":
			st = st.Reverse(true)
		case "blink":
			st = st.Blink(true)
		case "faint", "dim":
			st = st.Faint(true)
		case "strike":
			st = st.Strikethrough(true)
		case "nobold", "noitalic", "nounderline", "noreverse", "default":
			// accepted for compatibility; absence already means off
		default:
			bg := false
			if v, ok := strings.CutPrefix(tok, "bg:"); ok {
				tok, bg = v, true
			} else if v, ok := strings.CutPrefix(tok, "fg:"); ok {
				tok = v
			}
			c, err := parseColor(tok)
			if err != nil {
				return lipgloss.NewStyle(), err
			}
			if bg {
				st = st.Background(c)
			} else {
				st = st.Foreground(c)
			}
		}
	}
	return st, nil
}

func parseColor(tok string) (lipgloss.Color, error) {
	if n, ok := ansiNames[tok]; ok {
		return lipgloss.Color(n), nil
	}
	if strings.HasPrefix(tok, "#") {
		h := tok[1:]
		if len(h) != 3 && len(h) != 6 {
			return "", fmt.Errorf("bad hex color %q", tok)
		}
		if _, err := strconv.ParseUint(h, 16, 32); err != nil {
			return "", fmt.Errorf("bad hex color %q", tok)
		}
		return lipgloss.Color(tok), nil
	}
	if n, err := strconv.Atoi(tok); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(tok), nil
	}
	return "", fmt.Errorf("unknown attribute %q", tok)
}
