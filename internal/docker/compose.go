package docker

import (
	"context"
	"os/exec"
)

// Compose runs a `docker compose` subcommand for the given profile in dir.
// Compose has no stable SDK surface, so this shells out to the CLI like the
// rest of the ecosystem does. Output is discarded; callers only get the
// exit code, and report success or failure as a log line.
func Compose(ctx context.Context, dir, profile string, args ...string) int {
	full := append([]string{"compose", "--profile", profile}, args...)

	cmd := exec.CommandContext(ctx, "docker", full...)
	cmd.Dir = dir
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

// ComposeUp brings the stack up detached.
func ComposeUp(ctx context.Context, dir, profile string) int {
	return Compose(ctx, dir, profile, "up", "-d")
}

// ComposeRestart restarts the stack's services.
func ComposeRestart(ctx context.Context, dir, profile string) int {
	return Compose(ctx, dir, profile, "restart")
}
