package timeline

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/content"
)

type Item struct {
	ID      string
	Content content.Content
	// Title is an optional date or label shown above the content.
	Title content.Content
	// Dot replaces the default dot glyph.
	Dot content.Content
	// Opposite is shown across the line in alternate alignment.
	Opposite content.Content
	// Color overrides the timeline color for this item's dot and connector.
	Color  lipgloss.TerminalColor
	Active bool
	// DisableConnector hides the line leading away from this item.
	DisableConnector bool
	// DotVariant overrides the timeline default when set.
	DotVariant DotVariant
}

func WithItem(id, title, body string) Item {
	return Item{
		ID:      id,
		Title:   content.Of(title),
		Content: content.Text(body),
	}
}
