// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/models/components/keyhelp"
	"github.com/toeirei/tuikit/ui/tui/models/components/stack"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

// Model is the bottom bar: key help for the focused model plus the base
// bindings, and an optional status message on the right.
type Model struct {
	Status string
	Border lipgloss.Style
	Faint  lipgloss.Style

	help *keyhelp.Model
	size util.Size
}

func New(base help.KeyMap) *Model {
	m := &Model{help: keyhelp.New(base)}
	m.SetTheme(theme.Default)
	return m
}

func (m *Model) SetTheme(t theme.Theme) {
	m.help.SetTheme(t)
	m.Border = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(t.Border)
	m.Faint = lipgloss.NewStyle().Foreground(t.Faint)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return m.help.Update(tea.WindowSizeMsg{Width: m.size.Width, Height: max(m.size.Height-1, 0)})
	}
	return m.help.Update(msg)
}

func (m Model) View() string {
	pos := lipgloss.Left
	if m.help.Expanded {
		pos = lipgloss.Center
	}
	view := m.help.View()
	if m.Status != "" && !m.help.Expanded {
		status := m.Faint.Render(m.Status)
		if gap := m.size.Width - lipgloss.Width(view) - lipgloss.Width(status); gap > 0 {
			view += lipgloss.NewStyle().Width(gap).Render("") + status
		}
	}
	return m.Border.Render(lipgloss.PlaceHorizontal(m.size.Width, pos, view))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// SizeConfig gives the footer the lines its help needs plus the border.
var SizeConfig = stack.FitSize(func(model util.Model, _ int) int {
	if f, ok := model.(*Model); ok {
		return f.help.Height() + 1
	}
	return 2
})
