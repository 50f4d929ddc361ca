package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette -- single source of truth
var (
	ColorPrimary     = lipgloss.Color("69")
	ColorSuccess     = lipgloss.Color("42")
	ColorWarning     = lipgloss.Color("214")
	ColorError       = lipgloss.Color("196")
	ColorMuted       = lipgloss.Color("241")
	ColorText        = lipgloss.Color("255")
	ColorHighlight   = lipgloss.Color("62")
	ColorHighlightBg = lipgloss.Color("237")
	ColorNormal      = lipgloss.Color("252")
)

// Title styles
var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	Logo = lipgloss.NewStyle().Foreground(ColorPrimary)

	Tagline = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)
)

// Status and state styles
var (
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)

	Running = lipgloss.NewStyle().Foreground(ColorSuccess)

	Paused = lipgloss.NewStyle().Foreground(ColorWarning)

	Warning = lipgloss.NewStyle().Foreground(ColorWarning)

	Error = lipgloss.NewStyle().Foreground(ColorError)

	Stopped = lipgloss.NewStyle().Foreground(ColorError)

	Idle = lipgloss.NewStyle().Foreground(ColorMuted)

	Info = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Dashboard pane styles
var (
	PaneFocused = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess)

	PaneBlurred = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted)

	Selected = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorHighlight).
		Bold(true)

	Normal = lipgloss.NewStyle().Foreground(ColorNormal)

	StderrLine = lipgloss.NewStyle().Foreground(ColorWarning)
)

// Popup styles
var (
	PopupBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	PopupTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	DeleteConfirm = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
)

// Help and instructional styles
var (
	Help = lipgloss.NewStyle().Foreground(ColorMuted)

	Subtitle = lipgloss.NewStyle().Foreground(ColorMuted)

	Label = lipgloss.NewStyle().Foreground(ColorMuted)

	Value = lipgloss.NewStyle().Foreground(ColorText)
)

// DisableColors forces all Lipgloss rendering to produce plain text.
// Call once at startup from cmd/root.go based on --no-color flag.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
