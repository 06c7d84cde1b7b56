package system

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// writeScript creates an executable shell script in a temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	p := filepath.Join(t.TempDir(), "fake.sh")
	if err := os.WriteFile(p, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRunOutput(t *testing.T) {
	p := writeScript(t, "echo hello\n")
	out, err := RunOutput(context.Background(), p)
	if err != nil || out != "hello\n" {
		t.Fatalf("RunOutput = %q, %v", out, err)
	}
}

func TestRunOutput_DeadlineWithLingeringChild(t *testing.T) {
	p := writeScript(t, "sleep 6 &\nsleep 6\n")
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	start := time.Now()
	_, err := RunOutput(ctx, p)
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("RunOutput blocked %v past a 300ms deadline", elapsed)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
}
