package browse

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/toeirei/tuikit/internal/i18n"
)

type KeyMap struct {
	Switch key.Binding
	Info   key.Binding
	Copy   key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Switch, km.Info, km.Copy}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}

// DefaultKeyMap builds the bindings with help texts in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("browse.help.switch")),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", i18n.T("browse.help.info")),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", i18n.T("browse.help.copy")),
		),
	}
}
