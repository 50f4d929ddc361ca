package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bsisduck/tentacle/internal/ui/format"
	"github.com/bsisduck/tentacle/internal/ui/styles"
)

// popup is the modal overlay. While one is open it owns the keyboard and
// periodic refreshes are paused; nil means no popup.
type popup interface {
	// handleKey processes one key press. It returns the replacement popup
	// (nil closes it) and an optional command to run on close.
	handleKey(m *Model, msg tea.KeyMsg) (popup, tea.Cmd)
	render(m *Model) string
}

// inspectPopup shows formatted container details, with a toggle to the
// raw inspect JSON.
type inspectPopup struct {
	title   string
	summary string
	raw     []byte
	showRaw bool
	scroll  int
}

func (p inspectPopup) handleKey(m *Model, msg tea.KeyMsg) (popup, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "i", "enter":
		return nil, nil
	case "r":
		p.showRaw = !p.showRaw
		p.scroll = 0
		return p, nil
	case "up", "k":
		p.scroll = max(0, p.scroll-1)
		return p, nil
	case "down", "j":
		p.scroll++
		return p, nil
	case "pgup":
		p.scroll = max(0, p.scroll-10)
		return p, nil
	case "pgdown":
		p.scroll += 10
		return p, nil
	}
	return p, nil
}

func (p inspectPopup) render(m *Model) string {
	body := p.summary
	hint := "r: raw json • esc: close"
	if p.showRaw {
		body = format.Highlight(format.IndentJSON(p.raw), "json")
		hint = "r: summary • esc: close"
	}

	lines := strings.Split(body, "\n")
	visible := max(4, m.height-10)
	top := p.scroll
	if top > max(0, len(lines)-visible) {
		top = max(0, len(lines)-visible)
	}
	end := min(len(lines), top+visible)

	var b strings.Builder
	b.WriteString(styles.PopupTitle.Render("Inspect: "+p.title) + "\n\n")
	b.WriteString(strings.Join(lines[top:end], "\n"))
	b.WriteString("\n\n" + styles.Help.Render(hint))
	return b.String()
}

// confirmResetPopup asks before destroying a container and its volumes.
type confirmResetPopup struct {
	id   string
	name string
}

func (p confirmResetPopup) handleKey(m *Model, msg tea.KeyMsg) (popup, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return nil, m.resetContainer(p.id)
	case "n", "esc", "q":
		return nil, nil
	}
	return p, nil
}

func (p confirmResetPopup) render(m *Model) string {
	var b strings.Builder
	b.WriteString(styles.PopupTitle.Render("Reset container") + "\n\n")
	b.WriteString(fmt.Sprintf("Stop and remove %s and delete its volumes?\n", p.name))
	b.WriteString(styles.DeleteConfirm.Render("All data in the container's volumes will be lost.") + "\n\n")
	b.WriteString(styles.Help.Render("y: reset • n: cancel"))
	return b.String()
}

// confirmComposePopup is shown at startup when auto compose-up is
// configured. Wording depends on whether infra is already running.
type confirmComposePopup struct {
	infraRunning bool
}

func (p confirmComposePopup) handleKey(m *Model, msg tea.KeyMsg) (popup, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		if p.infraRunning {
			return nil, m.composeRestart()
		}
		return nil, m.composeUp()
	case "k", "n", "esc", "q":
		return nil, nil
	}
	return p, nil
}

func (p confirmComposePopup) render(m *Model) string {
	var b strings.Builder
	b.WriteString(styles.PopupTitle.Render("Compose stack") + "\n\n")
	if p.infraRunning {
		b.WriteString("Infra containers are already running.\n")
		b.WriteString("Restart the compose stack, or keep it as is?\n\n")
		b.WriteString(styles.Help.Render("r: restart • k: keep • esc: dismiss"))
	} else {
		b.WriteString("Infra containers are not running.\n")
		b.WriteString("Bring up the compose stack now?\n\n")
		b.WriteString(styles.Help.Render("r: compose up • esc: dismiss"))
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
