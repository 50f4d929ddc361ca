// Package cmd provides the CLI command structure for Tentacle.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bsisduck/tentacle/internal/config"
	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/tui/dashboard"
	"github.com/bsisduck/tentacle/internal/ui/styles"
)

var (
	// Version information
	Version   = "0.1.0"
	BuildTime = ""
	GitCommit = ""

	// Global flags
	rootDir string
	profile string
	debug   bool
	noColor bool
)

const (
	tentacleTagline = "One pane for your dev stack: tasks, containers, logs."
	tentacleLogo    = `
  _             _             _
 | |_ ___ _ __ | |_ __ _  ___| | ___
 | __/ _ \ '_ \| __/ _' |/ __| |/ _ \
 | ||  __/ | | | || (_| | (__| |  __/
  \__\___|_| |_|\__\__,_|\___|_|\___|
`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tentacle",
	Short: "Live dashboard for project tasks and Docker containers",
	Long: fmt.Sprintf(`%s
%s

Tentacle supervises your project's background tasks (dev servers, watchers,
tunnels) alongside its Docker containers, multiplexing their logs into a
single dashboard.

Run 'tentacle' without arguments to launch the dashboard.`, tentacleLogo, tentacleTagline),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", "", "Project root (default: walk up looking for tentacle.yaml)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", config.DefaultProfile, "Config profile (selects .env.<profile>)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the project root and builds the runtime config.
func loadConfig() (*config.Config, error) {
	root := rootDir
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = config.FindProjectRoot(cwd)
	}

	return config.Load(root, profile)
}

// runDashboard launches the full-screen dashboard.
func runDashboard() error {
	if NoColor() {
		styles.DisableColors()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// An unreachable engine degrades the dashboard rather than aborting:
	// task supervision still works without Docker.
	var engine docker.EngineService
	engineOK := false
	if client, err := docker.NewClient(); err == nil {
		engine = client
		engineOK = true
	} else if IsDebug() {
		fmt.Fprintf(os.Stderr, "docker unavailable: %v\n", err)
	}

	model := dashboard.New(cfg, engine, engineOK)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debug || os.Getenv("TENTACLE_DEBUG") == "1"
}

// NoColor returns whether color output is disabled
func NoColor() bool {
	return noColor || os.Getenv("NO_COLOR") != ""
}
