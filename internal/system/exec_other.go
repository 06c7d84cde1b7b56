//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package system

import "os/exec"

func detach(*exec.Cmd) {}
