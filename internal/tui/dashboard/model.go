// Package dashboard implements the live dashboard: a single Bubble Tea
// model that owns every piece of task/view state. Background producers
// (task output, log followers, snapshot fetches) only ever send messages
// or feed channels; Update is the sole writer, which makes every state
// mutation single-writer by construction.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"github.com/bsisduck/tentacle/internal/config"
	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/task"
)

// pumpInterval bounds how long drained output can sit in a channel before
// it reaches the visible buffer when no other message arrives.
const pumpInterval = 100 * time.Millisecond

// taskRuntime is the per-task state, created once at startup and kept for
// the program's lifetime. Handle and lines exist only while the task runs.
type taskRuntime struct {
	spec    task.Spec
	status  task.Status
	history *LogBuffer
	handle  *task.Handle
	lines   <-chan string
}

// follower tails one container's log stream. At most one follower is alive
// at any moment; it dies on target switch or quit.
type follower struct {
	containerID string
	lines       <-chan docker.LogLine
	cancel      docker.CancelFunc
}

// row is one display entry in the left pane.
type row struct {
	target Target
	name   string
	label  string
	state  string
	ports  []docker.PortMapping
}

// Model is the dashboard state machine.
type Model struct {
	cfg      *config.Config
	engine   docker.EngineService
	engineOK bool
	sup      *task.Supervisor

	taskOrder []string
	tasks     map[string]*taskRuntime

	snapshot []docker.ContainerSummary
	rows     []row
	selected int

	// focusList is true when keys navigate the list, false for the log pane.
	focusList bool

	target      Target
	logView     *LogBuffer
	scroll      int
	stickBottom bool

	follower *follower

	inFlight    bool
	lastRefresh time.Time
	spin        spinner.Model

	popup popup
	keys  keyMap

	width     int
	height    int
	logHeight int
}

// New builds the dashboard model. engineOK reports whether the engine was
// reachable at startup; when false the dashboard still supervises tasks.
func New(cfg *config.Config, engine docker.EngineService, engineOK bool) Model {
	tasks := make(map[string]*taskRuntime, len(cfg.Tasks))
	order := make([]string, 0, len(cfg.Tasks))
	for _, spec := range cfg.Tasks {
		order = append(order, spec.Name)
		tasks[spec.Name] = &taskRuntime{
			spec:    task.Spec{Name: spec.Name, Cmd: spec.Cmd},
			status:  task.StatusPending,
			history: NewLogBuffer(cfg.MaxLogLines),
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		cfg:      cfg,
		engine:   engine,
		engineOK: engineOK,
		sup: &task.Supervisor{
			WorkDir: cfg.WorkDir,
			Env:     cfg.Env,
		},
		taskOrder:   order,
		tasks:       tasks,
		logView:     NewLogBuffer(cfg.MaxLogLines),
		stickBottom: true,
		focusList:   true,
		// Init issues the first snapshot fetch, so the in-flight guard is
		// taken here; a refresh tick can never start a second one.
		inFlight: engineOK,
		spin:     sp,
		keys:     defaultKeyMap(),
	}

	m.logView.Append("Profile: " + cfg.Profile)
	if engineOK {
		m.logView.Append("Container engine: connected")
	} else {
		m.logView.Append("Container engine unavailable. Check that the daemon is running: docker ps")
	}
	names := "(none)"
	if len(order) > 0 {
		names = strings.Join(order, ", ")
	}
	m.logView.Append("Tasks: " + names)

	m.rebuildRows()

	if engineOK && cfg.AutoComposeUp {
		m.popup = confirmComposePopup{infraRunning: false}
	}

	return m
}

// Init starts the pump and refresh timers and the first snapshot fetch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.pumpTick(), m.refreshTick(), m.spin.Tick}
	if m.engineOK {
		cmds = append(cmds, m.fetchSnapshot())
	}
	return tea.Batch(cmds...)
}

// rebuildRows recomputes the display rows: tasks first in configured
// order, then the snapshot's containers (already sorted by name).
func (m *Model) rebuildRows() {
	taskRows := lo.Map(m.taskOrder, func(name string, _ int) row {
		rt := m.tasks[name]
		return row{
			target: Target{Kind: TargetTask, ID: name},
			name:   name,
			label: fmt.Sprintf("task: %-14s [%-4s] logs:%4d",
				name, rt.status.String(), rt.history.Len()),
			state: taskState(rt.status),
		}
	})

	containerRows := lo.Map(m.snapshot, func(c docker.ContainerSummary, _ int) row {
		status := strings.Join(strings.Fields(c.Status), " ")
		label := fmt.Sprintf("%-22s %s", c.Name, status)
		if hint := portHint(c.Ports); hint != "" {
			label += " " + hint
		}
		return row{
			target: Target{Kind: TargetContainer, ID: c.ID},
			name:   c.Name,
			label:  label,
			state:  c.State,
			ports:  c.Ports,
		}
	})

	m.rows = append(taskRows, containerRows...)
	if m.selected >= len(m.rows) {
		m.selected = max(0, len(m.rows)-1)
	}
}

// taskState maps a task status onto the container state vocabulary used
// for badge coloring.
func taskState(s task.Status) string {
	switch s {
	case task.StatusRunning:
		return "running"
	case task.StatusFailed:
		return "exited"
	default:
		return "created"
	}
}

// selectedRow returns the row under the cursor, or false when the list is
// empty.
func (m *Model) selectedRow() (row, bool) {
	if len(m.rows) == 0 || m.selected >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.selected], true
}

// infraAlreadyUp reports whether any configured infra container is present
// in the snapshot, used to word the compose popup.
func (m *Model) infraAlreadyUp() bool {
	names := lo.SliceToMap(m.snapshot, func(c docker.ContainerSummary) (string, struct{}) {
		return c.Name, struct{}{}
	})
	return lo.SomeBy(m.cfg.InfraContainers, func(n string) bool {
		_, ok := names[n]
		return ok
	})
}

// actionContext returns the context used for one-shot engine calls issued
// from commands.
func actionContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), docker.TimeoutAction)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
