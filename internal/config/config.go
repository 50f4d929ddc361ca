// Package config builds the immutable runtime configuration for Tentacle.
// The Config value is constructed once at startup and passed by reference
// into every component; nothing reads ambient process state afterwards.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file omits a value.
const (
	DefaultMaxLogLines = 1200
	DefaultRefresh     = time.Second
	DefaultTailLines   = 200
	DefaultProfile     = "local"
)

// ConfigFileName is the per-project config file Tentacle looks for.
const ConfigFileName = "tentacle.yaml"

// TaskSpec describes one background shell task shown in the dashboard.
type TaskSpec struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
}

// Config is the full runtime configuration.
type Config struct {
	// WorkDir is the project root; tasks and compose run from here.
	WorkDir string

	Profile        string     `yaml:"profile"`
	ComposeProfile string     `yaml:"compose_profile"`
	AutoComposeUp  bool       `yaml:"auto_compose_up"`
	Tasks          []TaskSpec `yaml:"tasks"`

	// InfraContainers are container names whose presence means the stack
	// is already up (drives the compose popup's restart-vs-start wording).
	InfraContainers []string `yaml:"infra_containers"`

	MaxLogLines int `yaml:"max_log_lines"`
	TailLines   int `yaml:"tail_lines"`

	RefreshMs       int `yaml:"refresh_ms"`
	RefreshInterval time.Duration

	// Env is the fully expanded task environment (KEY=VALUE form),
	// assembled from the process env plus .env / .env.<profile>.
	Env []string
}

// Load builds a Config for the given project root and profile.
// Missing config file is not an error; defaults plus package.json
// scripts still produce a usable dashboard.
func Load(root, profile string) (*Config, error) {
	cfg := &Config{
		WorkDir:       root,
		Profile:       profile,
		AutoComposeUp: true,
	}

	path := filepath.Join(root, ConfigFileName)
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", ConfigFileName, err)
	}

	applyDefaults(cfg, profile)

	// package.json scripts become tasks too; YAML entries win on name clash.
	mergeTasks(cfg, loadPackageScripts(root))
	sort.Slice(cfg.Tasks, func(i, j int) bool { return cfg.Tasks[i].Name < cfg.Tasks[j].Name })

	env, err := LoadEnvFiles(root, cfg.Profile)
	if err != nil {
		return nil, err
	}
	cfg.Env = env

	return cfg, nil
}

func applyDefaults(cfg *Config, profile string) {
	if profile != "" {
		cfg.Profile = profile
	}
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}
	if cfg.ComposeProfile == "" {
		cfg.ComposeProfile = cfg.Profile
	}
	if cfg.MaxLogLines <= 0 {
		cfg.MaxLogLines = DefaultMaxLogLines
	}
	if cfg.TailLines <= 0 {
		cfg.TailLines = DefaultTailLines
	}
	if cfg.RefreshMs > 0 {
		cfg.RefreshInterval = time.Duration(cfg.RefreshMs) * time.Millisecond
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefresh
	}
}

func mergeTasks(cfg *Config, extra []TaskSpec) {
	seen := make(map[string]bool, len(cfg.Tasks))
	for _, t := range cfg.Tasks {
		seen[t.Name] = true
	}
	for _, t := range extra {
		if !seen[t.Name] {
			cfg.Tasks = append(cfg.Tasks, t)
			seen[t.Name] = true
		}
	}
}

// loadPackageScripts reads "scripts" from package.json, if present.
// Errors are swallowed: a broken package.json just contributes no tasks.
func loadPackageScripts(root string) []TaskSpec {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return nil
	}
	var pkg struct {
		Scripts map[string]string `json:"scripts"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil
	}

	tasks := make([]TaskSpec, 0, len(pkg.Scripts))
	for name, cmd := range pkg.Scripts {
		tasks = append(tasks, TaskSpec{Name: name, Cmd: cmd})
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Name < tasks[j].Name })
	return tasks
}

// FindProjectRoot walks up from startDir looking for a directory that holds
// tentacle.yaml or docker-compose.yml. A directory with only package.json is
// kept as fallback while the search continues.
func FindProjectRoot(startDir string) string {
	dir := startDir
	var fallback string

	for i := 0; i < 12; i++ {
		if exists(filepath.Join(dir, ConfigFileName)) || exists(filepath.Join(dir, "docker-compose.yml")) {
			return dir
		}
		if fallback == "" && exists(filepath.Join(dir, "package.json")) {
			fallback = dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if fallback != "" {
		return fallback
	}
	return startDir
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
