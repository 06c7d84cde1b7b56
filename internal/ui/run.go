package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user aborts the prompt with Ctrl+C.
var ErrInterrupted = errors.New("prompt interrupted")

// Run shows the prompt inline and blocks until it is accepted or aborted.
// in and out default to the process terminal when nil.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (string, error) {
	popts := []tea.ProgramOption{tea.WithContext(ctx)}
	if in != nil {
		popts = append(popts, tea.WithInput(in))
	}
	if out != nil {
		popts = append(popts, tea.WithOutput(out))
	}
	final, err := tea.NewProgram(newModel(opts), popts...).Run()
	if err != nil {
		switch {
		case errors.Is(err, tea.ErrInterrupted):
			return "", ErrInterrupted
		case errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
			return "", ctx.Err()
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}
	return result(final)
}

// result extracts the outcome from the final model.
func result(final tea.Model) (string, error) {
	m, ok := final.(model)
	if !ok {
		return "", fmt.Errorf("unexpected final model %T", final)
	}
	switch m.phase {
	case accepted:
		return m.result, nil
	case cancelled:
		return "", ErrInterrupted
	}
	// program ended without a decision (input closed)
	return "", io.EOF
}

// Replay feeds keys to a fresh session without a terminal, then presses
// Enter. Control bytes map to their keys (\t is Tab, \x7f Backspace,
// \x1b Escape, \x15 Ctrl+U, \x03 Ctrl+C). It drives the same key handling as
// Run, so piped input fills and accepts exactly like typed input.
func Replay(opts Options, keys string) (string, error) {
	var m tea.Model = newModel(opts)
	for _, msg := range append(keyMsgs(keys), tea.KeyMsg{Type: tea.KeyEnter}) {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd != nil {
			break
		}
	}
	return result(m)
}

// keyMsgs splits raw text into key events, grouping printable runs.
func keyMsgs(keys string) []tea.Msg {
	var msgs []tea.Msg
	var run []rune
	flush := func() {
		if len(run) > 0 {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: run})
			run = nil
		}
	}
	for _, r := range keys {
		switch {
		case r < 0x20 || r == 0x7f:
			flush()
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyType(r)})
		case r == ' ':
			flush()
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		default:
			run = append(run, r)
		}
	}
	flush()
	return msgs
}
