// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu is a keyboard driven tree. Opening an item shows its children
// indented below it; children can be loaded lazily.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type Styles struct {
	Item     lipgloss.Style
	Branch   lipgloss.Style
	OnPath   lipgloss.Style
	Cursor   lipgloss.Style
	Children lipgloss.Style
}

func DefaultStyles(t theme.Theme) Styles {
	return Styles{
		Item:   lipgloss.NewStyle().Foreground(t.Text),
		Branch: lipgloss.NewStyle().Foreground(t.Text).Italic(true).Underline(true),
		OnPath: lipgloss.NewStyle().Foreground(t.Accent),
		Cursor: lipgloss.NewStyle().
			Foreground(t.OnAccent).
			Background(t.Accent),
		Children: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(t.Border).
			PaddingLeft(1),
	}
}

type Model struct {
	Items []Item
	// Active holds one index per open level. The last entry is the cursor.
	Active []int
	Styles Styles

	size    util.Size
	focused bool
}

func New(items ...Item) *Model {
	return &Model{
		Items:  items,
		Active: []int{0},
		Styles: DefaultStyles(theme.Default),
	}
}

func (m *Model) SetTheme(t theme.Theme) {
	m.Styles = DefaultStyles(t)
}

// SetItems replaces the tree and resets the cursor to the first item.
func (m *Model) SetItems(items []Item) {
	m.Items = items
	m.Active = []int{0}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) || !m.focused || len(m.Items) == 0 {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			return m.up()
		case key.Matches(msg, DefaultKeyMap.Down):
			return m.down()
		case key.Matches(msg, DefaultKeyMap.Left):
			return m.left()
		case key.Matches(msg, DefaultKeyMap.Right):
			return m.right()
		}
	}
	return nil
}

func (m Model) renderItems(items []Item, active []int) []string {
	cursor := -1
	if len(active) > 0 {
		cursor, active = active[0], active[1:]
	}

	var lines []string
	for i, item := range items {
		style := m.Styles.Item
		if item.IsBranch() {
			style = m.Styles.Branch
		}
		open := i == cursor && len(active) > 0
		switch {
		case open:
			style = style.Foreground(m.Styles.OnPath.GetForeground())
		case i == cursor:
			style = m.Styles.Cursor
		}
		lines = append(lines, style.Render(item.Label))
		if open {
			nested := strings.Join(m.renderItems(item.Children, active), "\n")
			lines = append(lines, strings.Split(m.Styles.Children.Render(nested), "\n")...)
		}
	}
	return lines
}

// cursorLine returns the line the cursor is rendered on.
func (m Model) cursorLine() int {
	line := 0
	items := m.Items
	for depth, idx := range m.Active {
		line += idx
		if depth < len(m.Active)-1 {
			line++ // the open item itself
			items = items[idx].Children
		}
	}
	return line
}

func (m Model) view() string {
	lines := m.renderItems(m.Items, m.Active)
	if m.size.Height > 0 && len(lines) > m.size.Height {
		// keep the cursor in the middle of the window where possible
		top := util.Clamp(0, m.cursorLine()-m.size.Height/2, len(lines)-m.size.Height)
		lines = lines[top : top+m.size.Height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) View() string {
	style := lipgloss.NewStyle().Margin(0, 1)
	if m.size.Width > 0 {
		style = style.MaxWidth(m.size.Width)
	}
	return style.Render(m.view())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
