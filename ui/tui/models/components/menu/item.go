package menu

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Item struct {
	ID    string
	Label string
	// Children are shown when the item is opened.
	Children []Item
	// Load fills Children on first open. Items with Load are always
	// treated as branches.
	Load func() ([]Item, error)
	// Cmd runs instead of emitting ItemSelected when a leaf is selected.
	Cmd tea.Cmd

	loaded bool
}

func WithItem(id string, label string, children ...Item) Item {
	return Item{
		ID:       id,
		Label:    label,
		Children: children,
	}
}

// IsBranch reports whether the item can be opened.
func (i Item) IsBranch() bool {
	return len(i.Children) > 0 || (i.Load != nil && !i.loaded)
}

// ItemSelected is emitted when a leaf is selected.
type ItemSelected struct {
	Item Item
}

// Moved is emitted whenever the active path changes. Path runs from the top
// level item to the active one.
type Moved struct {
	Path []Item
}

// LoadFailed is emitted when opening an item could not load its children.
type LoadFailed struct {
	Item Item
	Err  error
}
