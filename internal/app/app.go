package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"panelinput/internal/system"
	"panelinput/pkg/panelinput"
)

// Prompter is satisfied by *panelinput.Input.
type Prompter interface {
	Prompt(ctx context.Context, promptText string) (string, error)
}

// Feeder is satisfied by *panelinput.Input.
type Feeder interface {
	Feed(keys string) (string, error)
}

// Start runs the demo loop on the process terminal. When stdin is not a
// terminal each input line is replayed as keystrokes instead of drawing the
// widget.
func Start(ctx context.Context, in *panelinput.Input, promptText string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		system.Logger.Debug("stdin is not a terminal, replaying lines")
		return RunLines(os.Stdin, os.Stdout, in)
	}
	return Loop(ctx, in, promptText, os.Stdout)
}

// Loop prompts repeatedly and prints each accepted value to out.
// Interrupt and end of input end the loop without error.
func Loop(ctx context.Context, in Prompter, promptText string, out io.Writer) error {
	for {
		v, err := in.Prompt(ctx, promptText)
		switch {
		case errors.Is(err, panelinput.ErrInterrupted):
			fmt.Fprintln(out)
			return nil
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		fmt.Fprintln(out, v)
	}
}

// RunLines feeds each line of r to in as typed keys and prints the accepted
// value to w, until end of input or an interrupt (\x03) in a line.
func RunLines(r io.Reader, w io.Writer, in Feeder) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		v, err := in.Feed(strings.TrimRight(sc.Text(), "\r"))
		if errors.Is(err, panelinput.ErrInterrupted) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
