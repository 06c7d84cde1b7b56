package system

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// waitDelay is how long Wait keeps reading output after the context is done
// or the child exits. Descendants that inherited stdout would otherwise hold
// the pipe open past the deadline.
const waitDelay = 200 * time.Millisecond

// RunOutput executes a command and returns its stdout. Stderr is discarded
// since interactive shells print job-control warnings there. On unix the
// command runs in its own session and cancellation kills the whole group.
func RunOutput(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// Avoid opening pager or interactive prompts
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.WaitDelay = waitDelay
	detach(cmd)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%s: %w", name, ctx.Err())
	}
	return stdout.String(), err
}
