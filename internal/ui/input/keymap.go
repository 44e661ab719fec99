package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit     key.Binding
	Help     key.Binding
	Settings key.Binding
	Signs    key.Binding
	Home     key.Binding
	Accept   key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	NextCard key.Binding
	PrevCard key.Binding
}

// TODO make configurable.
var Default = Map{
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "Settings"),
	),
	Signs: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Signs"),
	),
	Home: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "Home"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Right"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "Page Up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", " ", "f"),
		key.WithHelp("pgdn", "Page Down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "Top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "Bottom"),
	),
	NextCard: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Sign"),
	),
	PrevCard: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev Sign"),
	),
}
