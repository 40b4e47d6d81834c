package breadcrumbs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tuikit/ui/tui/content"
)

type Item struct {
	ID     string
	Label  content.Content
	Href   string
	Icon   content.Content
	Active bool
	// OnSelect runs when the item is activated. Without it the trail emits
	// an ItemSelected message.
	OnSelect func(Item) tea.Cmd
}

// WithItem builds a plain text item.
func WithItem(id string, label string) Item {
	return Item{
		ID:    id,
		Label: content.Text(label),
	}
}

// IsLink reports whether the item renders as a link. The active item never
// does, even when it has a target.
func (i Item) IsLink() bool {
	return i.Href != "" && !i.Active
}

type ItemSelected struct {
	Item Item
}

// Expanded is emitted once, when the collapse placeholder is activated.
type Expanded struct{}
