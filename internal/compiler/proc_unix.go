//go:build !windows

package compiler

import (
	"os/exec"
	"strings"
	"syscall"
)

// setupProcessGroup configures the command to run in its own process group
// so the compiler and any processes it spawns can be killed together.
func setupProcessGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// killProcessGroup kills the compiler process and all of its descendants.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err == nil && pgid > 0 {
		if err := syscall.Kill(-pgid, syscall.SIGKILL); err != nil {
			syscall.Kill(-pgid, syscall.SIGTERM)
		}
	}

	// Kill the main process directly as a fallback.
	if err := cmd.Process.Kill(); err != nil {
		if !strings.Contains(err.Error(), "process already finished") {
			return err
		}
	}

	return nil
}
