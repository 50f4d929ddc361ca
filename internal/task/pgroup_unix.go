//go:build !windows

package task

import (
	"os/exec"
	"syscall"
)

// shellCommand builds the task command. Setpgid gives the task its own
// process group so killGroup can signal the entire subtree.
func shellCommand(cmdline string) *exec.Cmd {
	cmd := exec.Command("sh", "-c", cmdline)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	return cmd
}

// killGroup signals the task's process group. Errors are ignored: the
// process may already be gone, and exit is observed through polling anyway.
func killGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
}
