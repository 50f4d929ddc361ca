package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bsisduck/tentacle/internal/config"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"status", "logs", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestNoColor_EnvOverride(t *testing.T) {
	require.False(t, noColor)
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NoColor())
}

func TestIsDebug_EnvOverride(t *testing.T) {
	require.False(t, debug)
	t.Setenv("TENTACLE_DEBUG", "1")
	assert.True(t, IsDebug())
}

func TestVersionDefaults(t *testing.T) {
	assert.NotEmpty(t, Version)
}

func TestProjectSummary(t *testing.T) {
	got := projectSummary(&config.Config{
		WorkDir: "/srv/app",
		Profile: "staging",
		Tasks: []config.TaskSpec{
			{Name: "web", Cmd: "npm run dev"},
			{Name: "worker", Cmd: "npm run worker"},
		},
	})

	assert.Equal(t, []string{
		"Project root: /srv/app",
		"Profile: staging",
		"Tasks configured: 2",
	}, got)
}
