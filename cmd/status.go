package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/ui/format"
)

var statusOutput string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configured tasks and container states",
	Long: `Print a one-shot snapshot of the project: the tasks Tentacle would
supervise and the current state of every Docker container, without
launching the dashboard.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusOutput, "output", "o", "text", "Output format: text, json, or yaml")
}

// statusReport is the serializable form for json/yaml output.
type statusReport struct {
	Profile    string            `json:"profile" yaml:"profile"`
	WorkDir    string            `json:"work_dir" yaml:"work_dir"`
	Tasks      []statusTask      `json:"tasks" yaml:"tasks"`
	Containers []statusContainer `json:"containers" yaml:"containers"`
	EngineErr  string            `json:"engine_error,omitempty" yaml:"engine_error,omitempty"`
}

type statusTask struct {
	Name string `json:"name" yaml:"name"`
	Cmd  string `json:"cmd" yaml:"cmd"`
}

type statusContainer struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Image   string `json:"image" yaml:"image"`
	State   string `json:"state" yaml:"state"`
	Status  string `json:"status" yaml:"status"`
	Ports   string `json:"ports,omitempty" yaml:"ports,omitempty"`
	Created string `json:"created,omitempty" yaml:"created,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	report := statusReport{
		Profile: cfg.Profile,
		WorkDir: cfg.WorkDir,
	}
	for _, t := range cfg.Tasks {
		report.Tasks = append(report.Tasks, statusTask{Name: t.Name, Cmd: t.Cmd})
	}

	if client, err := docker.NewClient(); err != nil {
		report.EngineErr = err.Error()
	} else {
		defer client.Close()
		ctx, cancel := context.WithTimeout(context.Background(), docker.TimeoutSnapshot)
		defer cancel()
		summaries, err := client.Snapshot(ctx)
		if err != nil {
			report.EngineErr = err.Error()
		}
		for _, c := range summaries {
			report.Containers = append(report.Containers, statusContainer{
				ID:      c.ID,
				Name:    c.Name,
				Image:   c.Image,
				State:   c.State,
				Status:  c.Status,
				Ports:   docker.DisplayPorts(c.Ports),
				Created: format.Age(c.Created),
			})
		}
	}

	switch statusOutput {
	case "json":
		return format.FormatJSON(os.Stdout, report)
	case "yaml":
		return format.FormatYAML(os.Stdout, report)
	case "text":
		printStatusText(report)
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json, or yaml)", statusOutput)
	}
}

func printStatusText(r statusReport) {
	fmt.Printf("Profile: %s\nProject: %s\n\n", r.Profile, r.WorkDir)

	fmt.Println("Tasks")
	if len(r.Tasks) == 0 {
		fmt.Println("  (none configured)")
	}
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	for _, t := range r.Tasks {
		fmt.Fprintf(w, "  %s\t%s\n", t.Name, t.Cmd)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Containers")
	if r.EngineErr != "" {
		fmt.Printf("  engine unavailable: %s\n", r.EngineErr)
		return
	}
	if len(r.Containers) == 0 {
		fmt.Println("  (none)")
		return
	}
	w = tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tSTATE\tSTATUS\tCREATED\tPORTS\tIMAGE")
	for _, c := range r.Containers {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n", c.Name, c.State, c.Status, c.Created, c.Ports, c.Image)
	}
	w.Flush()
}
