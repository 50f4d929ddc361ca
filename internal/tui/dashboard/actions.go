package dashboard

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/bsisduck/tentacle/internal/clipboard"
	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/task"
)

// Task actions run synchronously in the Update loop: Spawn does not block,
// and every state change lands before the next message is processed.
// Container actions are issued as commands that perform the engine call
// and a follow-up snapshot, reporting both in one actionDoneMsg.

// runTask starts or restarts the selected task. A running instance is
// killed first; the history restarts from a marker naming the command.
func (m *Model) runTask(name string) {
	rt, ok := m.tasks[name]
	if !ok {
		return
	}
	if rt.handle != nil {
		rt.handle.Kill()
		rt.handle = nil
		rt.lines = nil
	}

	rt.history.Clear()
	prefix := "[" + name + "] "
	rt.history.Append(prefix + "==> RESTART: " + rt.spec.Cmd)

	handle, lines, err := m.sup.Spawn(rt.spec)
	if err != nil {
		rt.status = task.StatusPending
		rt.history.Append(prefix + "==> FAIL: " + err.Error())
	} else {
		rt.status = task.StatusRunning
		rt.handle = handle
		rt.lines = lines
	}

	if m.target.IsTask(name) {
		m.logView.Replace(rt.history.Lines())
		m.scroll = 0
		m.stickBottom = true
	}
	m.rebuildRows()
}

// stopTask kills the selected task's process group.
func (m *Model) stopTask(name string) {
	rt, ok := m.tasks[name]
	if !ok || rt.handle == nil {
		return
	}
	rt.handle.Kill()
	rt.handle = nil
	rt.lines = nil
	rt.status = task.StatusStopped

	prefix := "[" + name + "] "
	rt.history.Append(prefix + "==> STOPPED (user)")
	if m.target.IsTask(name) {
		m.appendVisible(prefix + "==> STOPPED (user)")
	}
	m.rebuildRows()
}

// stopAllTasks kills every running task, used on quit.
func (m *Model) stopAllTasks() {
	for _, rt := range m.tasks {
		if rt.handle != nil {
			rt.handle.Kill()
			rt.handle = nil
			rt.lines = nil
			rt.status = task.StatusStopped
		}
	}
}

// containerAction runs one lifecycle call against a container and then
// refreshes the snapshot, so the row reflects the new state as soon as
// the action lands.
func (m *Model) containerAction(verb string, id string, call func(context.Context, string) error) tea.Cmd {
	m.inFlight = true
	m.appendVisible(fmt.Sprintf("%s %s...", verb, m.containerName(id)))
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := actionContext()
		defer cancel()
		var lines []string
		if err := call(ctx, id); err != nil {
			lines = append(lines, fmt.Sprintf("ERROR: %v", err))
		}
		return actionDoneMsg{lines: lines, snap: listContainers(engine)}
	}
}

// resetContainer stops and removes a container together with its named
// volumes, then refreshes.
func (m *Model) resetContainer(id string) tea.Cmd {
	m.inFlight = true
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), docker.TimeoutReset)
		defer cancel()
		lines, err := engine.ResetContainer(ctx, id)
		if err != nil {
			lines = append(lines, fmt.Sprintf("ERROR: %v", err))
		}
		return actionDoneMsg{lines: lines, snap: listContainers(engine)}
	}
}

// composeUp brings up the infra stack via the compose CLI.
func (m *Model) composeUp() tea.Cmd {
	m.inFlight = true
	m.appendVisible("Running docker compose up -d...")
	dir, profile, engine := m.cfg.WorkDir, m.cfg.ComposeProfile, m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), docker.TimeoutCompose)
		defer cancel()
		var lines []string
		if code := docker.ComposeUp(ctx, dir, profile); code != 0 {
			lines = append(lines, fmt.Sprintf("ERROR: docker compose up exited with %d", code))
		} else {
			lines = append(lines, "Compose stack is up")
		}
		return actionDoneMsg{lines: lines, snap: listContainers(engine)}
	}
}

// composeRestart restarts the infra stack via the compose CLI.
func (m *Model) composeRestart() tea.Cmd {
	m.inFlight = true
	m.appendVisible("Running docker compose restart...")
	dir, profile, engine := m.cfg.WorkDir, m.cfg.ComposeProfile, m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), docker.TimeoutCompose)
		defer cancel()
		var lines []string
		if code := docker.ComposeRestart(ctx, dir, profile); code != 0 {
			lines = append(lines, fmt.Sprintf("ERROR: docker compose restart exited with %d", code))
		} else {
			lines = append(lines, "Compose stack restarted")
		}
		return actionDoneMsg{lines: lines, snap: listContainers(engine)}
	}
}

// inspect fetches formatted and raw inspect output for the popup.
func (m *Model) inspect(id string) tea.Cmd {
	engine := m.engine
	name := m.containerName(id)
	return func() tea.Msg {
		ctx, cancel := actionContext()
		defer cancel()
		raw, err := engine.InspectRaw(ctx, id)
		if err != nil {
			return inspectMsg{title: name, err: err}
		}
		return inspectMsg{
			title:   name,
			summary: docker.FormatContainerInfo(raw),
			raw:     raw,
		}
	}
}

// openShell suspends the TUI and attaches an interactive shell to the
// container.
func (m *Model) openShell(id string) tea.Cmd {
	shell := docker.NewContainerShell(m.engine.API(), id, "/bin/sh")
	return tea.Exec(shell, func(err error) tea.Msg {
		return shellDoneMsg{err: err}
	})
}

// openBrowser opens the container's best public port in the default
// browser.
func (m *Model) openBrowser(r row) {
	port := docker.BestPublicPort(r.ports)
	if port == 0 {
		m.appendVisible(fmt.Sprintf("%s has no published port to open", r.name))
		return
	}
	url := fmt.Sprintf("http://localhost:%d", port)
	if err := browser.OpenURL(url); err != nil {
		m.appendVisible(fmt.Sprintf("ERROR: open %s: %v", url, err))
		return
	}
	m.appendVisible("Opened " + url)
}

// yank copies the selected row's identifier to the clipboard: the full
// command for tasks, the ID for containers.
func (m *Model) yank(r row) {
	var text string
	switch r.target.Kind {
	case TargetTask:
		text = m.tasks[r.target.ID].spec.Cmd
	case TargetContainer:
		text = r.target.ID
	default:
		return
	}
	if err := clipboard.Copy(text); err != nil {
		m.appendVisible(fmt.Sprintf("ERROR: %v", err))
		return
	}
	m.appendVisible("Copied to clipboard: " + text)
}

// listContainers is the shared follow-up snapshot after any action.
func listContainers(engine docker.EngineService) snapshotMsg {
	ctx, cancel := context.WithTimeout(context.Background(), docker.TimeoutSnapshot)
	defer cancel()
	summaries, err := engine.Snapshot(ctx)
	return snapshotMsg{summaries: summaries, err: err}
}
