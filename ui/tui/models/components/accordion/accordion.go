// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package accordion

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

const (
	chevronClosed = "▸"
	chevronOpen   = "▾"
)

type Styles struct {
	Panel        lipgloss.Style
	Header       lipgloss.Style
	HeaderOpen   lipgloss.Style
	HeaderCursor lipgloss.Style
	Body         lipgloss.Style
}

func DefaultStyles(t theme.Theme) Styles {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Header:     header,
		HeaderOpen: header.Background(t.SurfaceDark),
		HeaderCursor: header.
			Foreground(t.OnAccent).
			Background(t.Accent),
		Body: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(t.Border),
	}
}

// Model is a list of independent collapsible panels. With Exclusive set,
// opening a panel closes every other one.
type Model struct {
	Items     []Item
	Exclusive bool
	Styles    Styles

	cursor  int
	focused bool
	size    util.Size
}

func New(items ...Item) *Model {
	return &Model{
		Items:  items,
		Styles: DefaultStyles(theme.Default),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Toggle flips panel i and reports the new state to its OnToggle callback.
func (m *Model) Toggle(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	var cmds []tea.Cmd

	item := &m.Items[i]
	item.Open = !item.Open
	if item.OnToggle != nil {
		cmds = append(cmds, item.OnToggle(item.Open))
	}
	open := item.Open
	cmds = append(cmds, func() tea.Msg { return Toggled{Index: i, Open: open} })

	if m.Exclusive && open {
		for j := range m.Items {
			if j != i && m.Items[j].Open {
				cmds = append(cmds, m.Toggle(j))
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if !m.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Up):
			m.cursor = util.Clamp(0, m.cursor-1, max(len(m.Items)-1, 0))
		case key.Matches(msg, DefaultKeyMap.Down):
			m.cursor = util.Clamp(0, m.cursor+1, max(len(m.Items)-1, 0))
		case key.Matches(msg, DefaultKeyMap.Toggle):
			return m.Toggle(m.cursor)
		}
	}
	return nil
}

func (m Model) renderItem(i int, item Item) string {
	// panel border takes one cell on each side
	inner := 0
	if m.size.Width > 0 {
		inner = max(m.size.Width-m.Styles.Panel.GetHorizontalFrameSize(), 0)
	}

	headerStyle := m.Styles.Header
	chevron := chevronClosed
	if item.Open {
		headerStyle = m.Styles.HeaderOpen
		chevron = chevronOpen
	}
	if m.focused && i == m.cursor {
		headerStyle = m.Styles.HeaderCursor
	}

	header := item.Title + " " + chevron
	if inner > 0 {
		headerStyle = headerStyle.Width(inner)
		fill := inner - headerStyle.GetHorizontalPadding() - ansi.StringWidth(item.Title) - ansi.StringWidth(chevron)
		header = item.Title + strings.Repeat(" ", max(fill, 1)) + chevron
	}
	parts := []string{headerStyle.Render(header)}

	if item.Open {
		bodyStyle := m.Styles.Body
		if inner > 0 {
			bodyStyle = bodyStyle.Width(inner)
		}
		parts = append(parts, bodyStyle.Render(content.Render(item.Body, lipgloss.NewStyle())))
	}

	return m.Styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) View() string {
	panels := make([]string, len(m.Items))
	for i, item := range m.Items {
		panels[i] = m.renderItem(i, item)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
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
