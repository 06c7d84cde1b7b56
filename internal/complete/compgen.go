package complete

import (
	"context"
	"fmt"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"

	"panelinput/internal/system"
)

// Compgen asks a bash-compatible shell for completions of a fragment.
type Compgen struct {
	Shell       string        // shell binary, default "bash"
	Flags       string        // compgen flags, default "-cdfa"
	Interactive bool          // run with -i so aliases and rc functions load
	Timeout     time.Duration // 0 disables the bound
}

// DefaultCompgen mirrors `bash -ic "compgen -cdfa -- <fragment>"` with a 2s bound.
func DefaultCompgen() Compgen {
	return Compgen{Shell: "bash", Flags: "-cdfa", Interactive: true, Timeout: 2 * time.Second}
}

// Script returns the compgen command line for fragment.
func (c Compgen) Script(fragment string) string {
	flags := strings.TrimSpace(c.Flags)
	if flags == "" {
		flags = "-cdfa"
	}
	return fmt.Sprintf("compgen %s -- %s", flags, shellescape.Quote(fragment))
}

// Complete runs the shell and returns one completion per non-empty output line.
func (c Compgen) Complete(fragment string) ([]string, error) {
	shell := c.Shell
	if strings.TrimSpace(shell) == "" {
		shell = "bash"
	}
	flag := "-c"
	if c.Interactive {
		flag = "-ic"
	}
	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	out, err := system.RunOutput(ctx, shell, flag, c.Script(fragment))
	if err != nil {
		return nil, err
	}
	var res []string
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if ln != "" {
			res = append(res, ln)
		}
	}
	return res, nil
}
