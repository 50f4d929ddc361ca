//go:build windows

package task

import "os/exec"

func shellCommand(cmdline string) *exec.Cmd {
	return exec.Command("cmd", "/C", cmdline)
}

// killGroup terminates only the direct child on Windows. Reliable subtree
// termination needs Job Objects; this is a documented best-effort limitation.
func killGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
}
