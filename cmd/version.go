package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bsisduck/tentacle/internal/config"
	"github.com/bsisduck/tentacle/internal/docker"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display Tentacle version, build information, and Docker connection status.",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	fmt.Printf("Tentacle version %s\n", Version)
	fmt.Printf("Go version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	if BuildTime != "" {
		fmt.Printf("Build time: %s\n", BuildTime)
	}
	if GitCommit != "" {
		fmt.Printf("Git commit: %s\n", GitCommit)
	}

	// Report the project this invocation would operate on. A missing or
	// broken config is not an error here; version still prints.
	if cfg, err := loadConfig(); err == nil {
		for _, line := range projectSummary(cfg) {
			fmt.Println(line)
		}
	}

	// Check Docker connection
	client, err := docker.NewClient()
	if err != nil {
		fmt.Printf("Docker: Not connected (%v)\n", err)
		return nil
	}
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	info, err := client.ServerInfo(ctx)
	if err != nil {
		fmt.Printf("Docker: Error getting info (%v)\n", err)
		return nil
	}

	fmt.Printf("Docker version: %s\n", info.ServerVersion)
	fmt.Printf("Docker OS: %s\n", info.OperatingSystem)
	fmt.Printf("Docker Arch: %s\n", info.Architecture)
	fmt.Printf("Containers: %d (running: %d)\n", info.Containers, info.ContainersRunning)
	fmt.Printf("Images: %d\n", info.Images)
	return nil
}

// projectSummary renders the resolved project context shown by version.
func projectSummary(cfg *config.Config) []string {
	return []string{
		"Project root: " + cfg.WorkDir,
		"Profile: " + cfg.Profile,
		fmt.Sprintf("Tasks configured: %d", len(cfg.Tasks)),
	}
}
