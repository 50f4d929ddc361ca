package dashboard

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bsisduck/tentacle/internal/docker"
)

// pumpTick schedules the next drain pass.
func (m Model) pumpTick() tea.Cmd {
	return tea.Tick(pumpInterval, func(t time.Time) tea.Msg {
		return pumpTickMsg(t)
	})
}

// refreshTick schedules the next periodic snapshot attempt.
func (m Model) refreshTick() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// maybeStartRefresh starts a snapshot fetch unless one is already in
// flight, a popup is open, or the engine is unreachable. At most one
// fetch runs at a time; a slow engine stretches the effective period
// instead of stacking requests.
func (m *Model) maybeStartRefresh() tea.Cmd {
	if !m.engineOK || m.inFlight || m.popup != nil {
		return nil
	}
	m.inFlight = true
	return m.fetchSnapshot()
}

// fetchSnapshot lists containers off the Update loop and reports back as
// a single message.
func (m Model) fetchSnapshot() tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), docker.TimeoutSnapshot)
		defer cancel()
		summaries, err := engine.Snapshot(ctx)
		return snapshotMsg{summaries: summaries, err: err}
	}
}
