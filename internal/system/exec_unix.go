//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package system

import (
	"os/exec"
	"syscall"
)

// detach starts cmd as a session leader without a controlling terminal, so an
// interactive shell never competes for the prompt's tty, and makes
// cancellation kill every process in the group.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
