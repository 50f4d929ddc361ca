// Package clipboard copies text to the system clipboard by piping it to
// the platform's clipboard tool. Used for the dashboard's yank binding;
// every failure is non-fatal and surfaces as a log line there.
package clipboard

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

const copyTimeout = 500 * time.Millisecond

// Seams for tests to simulate other platforms and tool availability.
var (
	goos     = runtime.GOOS
	lookPath = exec.LookPath
	getenv   = os.Getenv
)

// tool is one clipboard command candidate.
type tool struct {
	name string
	args []string
}

// Copy writes text to the system clipboard.
func Copy(text string) error {
	name, args, err := clipboardCmd()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("clipboard timed out (is a display server running?)")
		}
		return fmt.Errorf("clipboard command failed: %w", err)
	}
	return nil
}

// clipboardCmd picks the clipboard tool for the current platform.
func clipboardCmd() (string, []string, error) {
	switch goos {
	case "darwin":
		return "pbcopy", nil, nil
	case "windows":
		return "clip.exe", nil, nil
	case "linux":
		for _, c := range linuxCandidates() {
			if path, err := lookPath(c.name); err == nil {
				return path, c.args, nil
			}
		}
		return "", nil, fmt.Errorf(
			"no clipboard tool found; install wl-copy (Wayland), xclip, or xsel (X11)")
	default:
		return "", nil, fmt.Errorf(
			"clipboard not supported on %s; install xclip, xsel, or wl-copy", goos)
	}
}

// linuxCandidates lists the tools to probe, in preference order: wl-copy
// when a Wayland session is detected, then the X11 tools, then clip.exe
// for WSL hosts.
func linuxCandidates() []tool {
	var out []tool
	if getenv("WAYLAND_DISPLAY") != "" {
		out = append(out, tool{name: "wl-copy"})
	}
	return append(out,
		tool{name: "xclip", args: []string{"-selection", "clipboard"}},
		tool{name: "xsel", args: []string{"--clipboard", "--input"}},
		tool{name: "clip.exe"},
	)
}
