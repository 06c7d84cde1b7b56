package complete

import (
	"fmt"

	"panelinput/internal/system"
)

// FragmentFunc returns raw completions for the last word of the buffer.
type FragmentFunc func(fragment string) ([]string, error)

// External completes only the trailing fragment of the buffer and re-prefixes
// every result with the lead, so accepting a candidate keeps earlier words.
type External struct {
	fn FragmentFunc
}

// NewExternal wraps fn. A nil fn produces no candidates.
func NewExternal(fn FragmentFunc) *External {
	return &External{fn: fn}
}

// Candidates returns deduplicated lead+completion strings in first-seen order.
func (e *External) Candidates(buffer string) []string {
	if blank(buffer) || e.fn == nil {
		return nil
	}
	lead, fragment := Split(buffer)
	raw, err := e.call(fragment)
	if err != nil {
		system.Logger.Debug("completer failed", "fragment", fragment, "err", err)
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		if c == "" {
			continue
		}
		full := lead + c
		if _, ok := seen[full]; ok {
			continue
		}
		seen[full] = struct{}{}
		out = append(out, full)
	}
	return out
}

// call invokes the completer, turning a panic into an error.
func (e *External) call(fragment string) (out []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("completer panic: %v", r)
		}
	}()
	return e.fn(fragment)
}
