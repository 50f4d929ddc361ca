package dashboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logHeight = max(1, msg.Height-chromeHeight)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case pumpTickMsg:
		m.pump()
		m.rebuildRows()
		return m, m.pumpTick()

	case refreshTickMsg:
		cmd := m.maybeStartRefresh()
		return m, tea.Batch(m.refreshTick(), cmd)

	case snapshotMsg:
		m.applySnapshot(msg)
		return m, nil

	case actionDoneMsg:
		for _, line := range msg.lines {
			m.appendVisible(line)
		}
		m.applySnapshot(msg.snap)
		return m, nil

	case inspectMsg:
		if msg.err != nil {
			m.appendVisible(fmt.Sprintf("ERROR: inspect %s: %v", msg.title, msg.err))
			return m, nil
		}
		m.popup = inspectPopup{title: msg.title, summary: msg.summary, raw: msg.raw}
		return m, nil

	case shellDoneMsg:
		if msg.err != nil {
			m.appendVisible(fmt.Sprintf("ERROR: shell session: %v", msg.err))
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// applySnapshot installs a fresh container list (or reports the failure)
// and clears the in-flight flag so the next refresh can start.
func (m *Model) applySnapshot(msg snapshotMsg) {
	m.inFlight = false
	if msg.err != nil {
		m.appendVisible(fmt.Sprintf("ERROR: list containers: %v", msg.err))
		return
	}
	m.snapshot = msg.summaries
	m.rebuildRows()

	// Reword the startup compose prompt once we know what's running.
	if p, ok := m.popup.(confirmComposePopup); ok {
		p.infraRunning = m.infraAlreadyUp()
		m.popup = p
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A popup owns the keyboard while open.
	if m.popup != nil {
		var cmd tea.Cmd
		m.popup, cmd = m.popup.handleKey(&m, msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.dropFollower()
		m.stopAllTasks()
		if m.engine != nil {
			m.engine.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Tab):
		m.focusList = !m.focusList
		return m, nil
	}

	if m.focusList {
		return m.handleListKey(msg)
	}
	return m.handleLogKey(msg), nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			if r, ok := m.selectedRow(); ok {
				m.switchTarget(r.target)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.rows)-1 {
			m.selected++
			if r, ok := m.selectedRow(); ok {
				m.switchTarget(r.target)
			}
		}
		return m, nil
	}

	r, ok := m.selectedRow()
	if !ok {
		return m, nil
	}

	switch r.target.Kind {
	case TargetTask:
		switch {
		case key.Matches(msg, m.keys.Run):
			m.runTask(r.target.ID)
		case key.Matches(msg, m.keys.Stop):
			m.stopTask(r.target.ID)
		case key.Matches(msg, m.keys.Yank):
			m.yank(r)
		}
		return m, nil

	case TargetContainer:
		return m.handleContainerKey(msg, r)
	}
	return m, nil
}

func (m Model) handleContainerKey(msg tea.KeyMsg, r row) (tea.Model, tea.Cmd) {
	if !m.engineOK {
		return m, nil
	}
	id := r.target.ID

	switch {
	case key.Matches(msg, m.keys.Start):
		return m, m.containerAction("Starting", id, m.engine.StartContainer)
	case key.Matches(msg, m.keys.Stop):
		return m, m.containerAction("Stopping", id, m.engine.StopContainer)
	case key.Matches(msg, m.keys.Run):
		return m, m.containerAction("Restarting", id, m.engine.RestartContainer)
	case key.Matches(msg, m.keys.Pause):
		return m, m.containerAction("Pausing", id, m.engine.PauseContainer)
	case key.Matches(msg, m.keys.Unpause):
		return m, m.containerAction("Unpausing", id, m.engine.UnpauseContainer)
	case key.Matches(msg, m.keys.Kill):
		return m, m.containerAction("Killing", id, m.engine.KillContainer)
	case key.Matches(msg, m.keys.Delete):
		return m, m.containerAction("Removing", id, func(ctx context.Context, id string) error {
			return m.engine.RemoveContainer(ctx, id, false)
		})
	case key.Matches(msg, m.keys.Reset):
		m.popup = confirmResetPopup{id: id, name: r.name}
		return m, nil
	case key.Matches(msg, m.keys.Inspect):
		return m, m.inspect(id)
	case key.Matches(msg, m.keys.Compose):
		m.popup = confirmComposePopup{infraRunning: m.infraAlreadyUp()}
		return m, nil
	case key.Matches(msg, m.keys.Shell):
		return m, m.openShell(id)
	case key.Matches(msg, m.keys.Open):
		m.openBrowser(r)
		return m, nil
	case key.Matches(msg, m.keys.Yank):
		m.yank(r)
		return m, nil
	}
	return m, nil
}

// handleLogKey scrolls the log pane. scroll counts lines up from the
// bottom; 0 with stickBottom keeps the view pinned to new output.
func (m Model) handleLogKey(msg tea.KeyMsg) tea.Model {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(m.logHeight)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(-m.logHeight)
	case key.Matches(msg, m.keys.Top):
		m.scroll = m.maxScroll()
		m.stickBottom = false
	case key.Matches(msg, m.keys.Bottom):
		m.scroll = 0
		m.stickBottom = true
	}
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) tea.Model {
	if m.popup != nil {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(3)
	case tea.MouseButtonWheelDown:
		m.scrollBy(-3)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m
		}
		// Rows start below the pane border and title line.
		idx := msg.Y - listTopOffset
		if idx >= 0 && idx < len(m.rows) && msg.X < m.listWidth() {
			m.selected = idx
			m.focusList = true
			m.switchTarget(m.rows[idx].target)
		}
	}
	return m
}

// scrollBy moves the log view by delta lines (positive is up, into
// history) and clamps to the buffer.
func (m *Model) scrollBy(delta int) {
	m.scroll += delta
	if m.scroll <= 0 {
		m.scroll = 0
		m.stickBottom = true
		return
	}
	m.stickBottom = false
	if limit := m.maxScroll(); m.scroll > limit {
		m.scroll = limit
	}
}

func (m *Model) maxScroll() int {
	return max(0, m.logView.Len()-m.logHeight)
}
