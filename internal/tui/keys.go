package tui

import "github.com/charmbracelet/bubbles/key"

// brewKeyMap is the brew screen key bindings; it implements help.KeyMap.
type brewKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Stop   key.Binding
	Submit key.Binding
	Reset  key.Binding
	Logout key.Binding
	Quit   key.Binding
}

func newBrewKeyMap() brewKeyMap {
	return brewKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "less"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "more"),
		),
		Start: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "start timer"),
		),
		Stop: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "stop timer"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save brew"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset form"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "log out"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k brewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Start, k.Stop, k.Submit, k.Reset, k.Logout, k.Quit}
}

func (k brewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Left, k.Right},
		{k.Start, k.Stop},
		{k.Submit, k.Reset, k.Logout, k.Quit},
	}
}
