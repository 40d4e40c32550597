//go:build windows

package compiler

import "os/exec"

// setupProcessGroup is a no-op on Windows; there is no POSIX process group.
func setupProcessGroup(_ *exec.Cmd) {}

// killProcessGroup kills the compiler process. Descendant cleanup relies on
// the process exiting; Windows job objects are not used here.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
