package docker

import (
	"os"
	"path/filepath"
	"runtime"
)

// detectDockerSocket probes the conventional engine socket locations for
// the current platform, returning a host URL or "" when nothing is found
// (the SDK then falls back to its own default).
func detectDockerSocket() string {
	if runtime.GOOS == "windows" {
		return "npipe:////./pipe/docker_engine"
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		// Docker Desktop per-user sockets first, then the system one.
		home := os.Getenv("HOME")
		candidates = []string{
			filepath.Join(home, ".docker/run/docker.sock"),
			filepath.Join(home, "Library/Containers/com.docker.docker/Data/docker.sock"),
			"/var/run/docker.sock",
		}
	case "linux":
		candidates = []string{
			"/var/run/docker.sock",
			"/run/docker.sock",
			// Rootless daemon
			filepath.Join(os.Getenv("XDG_RUNTIME_DIR"), "docker.sock"),
		}
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return "unix://" + path
		}
	}
	return ""
}
