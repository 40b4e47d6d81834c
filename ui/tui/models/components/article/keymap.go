package article

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	ReadMore key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.ReadMore, km.Up, km.Down}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.ReadMore}, {km.Up, km.Down, km.PageUp, km.PageDown}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	ReadMore: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "read more"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("pgdown", "page down"),
	),
}
