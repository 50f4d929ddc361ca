package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bsisduck/tentacle/internal/docker"
	"github.com/bsisduck/tentacle/internal/ui/format"
	"github.com/bsisduck/tentacle/internal/ui/styles"
)

const (
	// chromeHeight is everything around the log lines: title row, help
	// row, and the pane borders.
	chromeHeight = 5
	// listTopOffset is where list rows begin on screen (title + border).
	listTopOffset = 2
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	title := m.renderTitle()
	list := m.renderList()
	logs := m.renderLogs()
	body := lipgloss.JoinHorizontal(lipgloss.Top, list, logs)
	help := m.renderHelp()

	view := lipgloss.JoinVertical(lipgloss.Left, title, body, help)

	if m.popup != nil {
		overlay := styles.PopupBorder.
			Width(min(m.width-4, 100)).
			Render(m.popup.render(&m))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return view
}

func (m Model) renderTitle() string {
	left := styles.Title.Render("tentacle") + " " +
		styles.Subtitle.Render("profile="+m.cfg.Profile)
	right := ""
	if !m.engineOK {
		right = styles.Error.Render("engine offline")
	} else if m.inFlight {
		right = m.spin.View() + styles.Subtitle.Render("refreshing")
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// listWidth is the left pane's outer width.
func (m Model) listWidth() int {
	return m.width / 3
}

func (m Model) renderList() string {
	inner := m.listWidth() - 2
	height := max(1, m.height-chromeHeight)

	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		label := runewidth.Truncate(r.label, inner-2, "…")
		line := stateBadge(r.state) + " " + label
		if i == m.selected {
			line = styles.Selected.Render(runewidth.FillRight(line, inner))
		} else {
			line = styles.Normal.Render(line)
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, styles.Idle.Render("no tasks or containers"))
	}

	pane := styles.PaneBlurred
	if m.focusList {
		pane = styles.PaneFocused
	}
	return pane.Width(inner).Height(height).Render(strings.Join(lines, "\n"))
}

func (m Model) renderLogs() string {
	inner := m.width - m.listWidth() - 2
	height := max(1, m.logHeight)

	all := m.logView.Lines()
	end := len(all) - m.scroll
	if end > len(all) {
		end = len(all)
	}
	start := max(0, end-height)
	if end < start {
		end = start
	}

	lines := make([]string, 0, height)
	for _, raw := range all[start:end] {
		// Task and container output can carry ANSI sequences that break
		// width math; strip before truncating.
		line := runewidth.Truncate(format.StripANSI(raw), inner, "…")
		if strings.Contains(raw, "[ERR] ") {
			line = styles.StderrLine.Render(line)
		}
		lines = append(lines, line)
	}

	if m.logView.Dropped() > 0 && start == 0 {
		notice := fmt.Sprintf("... %d earlier lines dropped ...", m.logView.Dropped())
		lines = append([]string{styles.Idle.Render(notice)}, lines...)
	}

	pane := styles.PaneBlurred
	if !m.focusList {
		pane = styles.PaneFocused
	}
	return pane.Width(inner).Height(height).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	r, ok := m.selectedRow()
	var parts []string
	switch {
	case ok && r.target.Kind == TargetTask:
		parts = []string{"r run", "s stop", "y yank"}
	case ok && r.target.Kind == TargetContainer:
		parts = []string{"t start", "s stop", "r restart", "i inspect", "x reset", "e shell", "o open", "c compose"}
	}
	parts = append(parts, "tab focus", "q quit")
	return styles.Help.Render(strings.Join(parts, " • "))
}

// stateBadge is the one-character colored state indicator.
func stateBadge(state string) string {
	switch state {
	case "running":
		return styles.Running.Render("●")
	case "paused":
		return styles.Paused.Render("●")
	case "exited", "dead":
		return styles.Stopped.Render("●")
	case "restarting", "removing":
		return styles.Warning.Render("●")
	default:
		return styles.Idle.Render("○")
	}
}

// portHint summarizes a container's best public port for the list label.
func portHint(ports []docker.PortMapping) string {
	if port := docker.BestPublicPort(ports); port != 0 {
		return fmt.Sprintf(":%d", port)
	}
	return ""
}
