// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header renders the title bar of a full screen program.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/models/components/stack"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type Styles struct {
	Bar      lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

func DefaultStyles(t theme.Theme) Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false).
			BorderBottom(true).
			BorderForeground(t.Border),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Subtitle: lipgloss.NewStyle().Foreground(t.Faint),
	}
}

// Model shows a centered title and an optional subtitle, for example the
// version, on the right.
type Model struct {
	Title    string
	Subtitle string
	Styles   Styles

	size util.Size
}

func New(title string) *Model {
	return &Model{
		Title:  title,
		Styles: DefaultStyles(theme.Default),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	width := m.size.Width
	title := m.Styles.Title.Render(m.Title)
	line := lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
	if m.Subtitle != "" {
		sub := m.Styles.Subtitle.Render(m.Subtitle)
		free := width - lipgloss.Width(sub) - 1
		if free > lipgloss.Width(title) {
			line = lipgloss.PlaceHorizontal(free, lipgloss.Center, title) + " " + sub
		}
	}
	return m.Styles.Bar.Render(ansi.Truncate(line, max(width, 0), "…"))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// SizeConfig reserves the title line plus its border, or nothing on very
// small terminals.
var SizeConfig = stack.FitSize(func(_ util.Model, total int) int {
	if total < minTerminalHeight {
		return 0
	}
	return 2
})

const minTerminalHeight = 8
