package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	Run      key.Binding
	Stop     key.Binding
	Start    key.Binding
	Pause    key.Binding
	Unpause  key.Binding
	Kill     key.Binding
	Delete   key.Binding
	Reset    key.Binding
	Inspect  key.Binding
	Compose  key.Binding
	Shell    key.Binding
	Open     key.Binding
	Yank     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Run:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run/restart")),
		Stop:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Start:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "start")),
		Pause:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Unpause:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unpause")),
		Kill:     key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "kill")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		Inspect:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
		Compose:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compose")),
		Shell:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "shell")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
