// Package complete produces candidate lists for the panel prompt, either by
// filtering a fixed list of choices or by asking an external completer about
// the last word of the buffer.
package complete

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Source turns the current buffer into an ordered list of candidates.
// Implementations never fail; problems yield an empty list.
type Source interface {
	Candidates(buffer string) []string
}

// DefaultChoices is the built-in static list used when nothing else is configured.
var DefaultChoices = []string{
	"com.google.android.apps.messaging",
	"com.whatsapp",
	"com.instagram.android",
	"com.spotify.music",
	"com.facebook.android",
	"com.twitter.android",
	"com.youtube",
	"com.tiktok",
}

// blank reports whether the buffer should produce no candidates at all.
func blank(buffer string) bool {
	return strings.TrimSpace(buffer) == ""
}

// Static filters a fixed list of choices against the whole buffer.
type Static struct {
	items []string
	fuzzy bool
}

// StaticOption configures a Static source.
type StaticOption func(*Static)

// WithFuzzy ranks choices with fuzzy matching instead of plain substring
// containment. Results are ordered best match first.
func WithFuzzy() StaticOption {
	return func(s *Static) { s.fuzzy = true }
}

// NewStatic returns a source over a copy of items.
func NewStatic(items []string, opts ...StaticOption) *Static {
	s := &Static{items: append([]string(nil), items...)}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Items returns a copy of the configured choices.
func (s *Static) Items() []string {
	return append([]string(nil), s.items...)
}

// Candidates matches case-insensitively, keeping source order.
func (s *Static) Candidates(buffer string) []string {
	if blank(buffer) {
		return nil
	}
	if s.fuzzy {
		matches := fuzzy.Find(buffer, s.items)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m.Str)
		}
		return out
	}
	q := strings.ToLower(buffer)
	out := make([]string, 0, len(s.items))
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it), q) {
			out = append(out, it)
		}
	}
	return out
}
