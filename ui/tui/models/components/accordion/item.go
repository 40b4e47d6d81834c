// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package accordion

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tuikit/ui/tui/content"
)

// Item is one collapsible panel.
type Item struct {
	Title string
	Body  content.Content
	// Open is the current state; set it before handing the item to New to
	// start the panel open.
	Open bool
	// OnToggle receives the new state after every toggle.
	OnToggle func(open bool) tea.Cmd
}

func WithItem(title string, body string) Item {
	return Item{
		Title: title,
		Body:  content.Text(body),
	}
}

var whitespace = regexp.MustCompile(`\s+`)

// AnchorID is a stable identifier for the panel body derived from its title.
func (i Item) AnchorID() string {
	return "accordion-content-" + strings.ToLower(whitespace.ReplaceAllString(i.Title, "-"))
}

// Toggled is emitted after a panel changed state.
type Toggled struct {
	Index int
	Open  bool
}
