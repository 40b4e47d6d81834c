// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp shows the key bindings announced by the focused model.
package keyhelp

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

// Model keeps the last announced key map. Base bindings are always appended,
// so global keys such as quit stay visible.
type Model struct {
	KeyMap   help.KeyMap
	Base     help.KeyMap
	Expanded bool

	help help.Model
	size util.Size
}

func New(base help.KeyMap) *Model {
	return &Model{
		Base: base,
		help: newHelp(theme.Default),
	}
}

func newHelp(t theme.Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(t.Text)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(t.Faint)
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(t.Border)
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	h.Styles.Ellipsis = h.Styles.ShortSeparator
	return h
}

func (m *Model) SetTheme(t theme.Theme) {
	m.help = newHelp(t)
	m.help.Width = m.size.Width
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) keyMap() help.KeyMap {
	return util.MergeKeyMaps(m.KeyMap, m.Base)
}

func (m Model) View() string {
	if m.Expanded {
		return FullHelpView(m.help, m.keyMap().FullHelp())
	}
	return ShortHelpView(m.help, m.keyMap().ShortHelp())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

// Height is the number of lines View needs.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// ShortHelpView renders enabled bindings on one line. Entries that do not
// fit are replaced by an ellipsis.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	sep := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	var entries []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		entry := m.Styles.ShortKey.Inline(true).Render(b.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(b.Help().Desc)
		if len(entries) > 0 {
			entry = sep + entry
		}
		entries = append(entries, entry)
	}
	return strings.Join(fit(m, entries), "")
}

// FullHelpView renders one column per binding group. Groups without enabled
// bindings are skipped.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	sep := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	var columns []string
	for _, group := range groups {
		enabled := slices.Filter(group, func(b key.Binding) bool { return b.Enabled() })
		if len(enabled) == 0 {
			continue
		}
		keys := slices.Map(enabled, func(b key.Binding) string { return b.Help().Key })
		descs := slices.Map(enabled, func(b key.Binding) string { return b.Help().Desc })
		var prefix string
		if len(columns) > 0 {
			prefix = sep
		}
		columns = append(columns, lipgloss.JoinHorizontal(lipgloss.Top,
			prefix,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descs...)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, columns)...)
}

// fit keeps as many leading parts as fit into m.Width and ends with an
// ellipsis when something had to be dropped. A width of zero means
// unlimited.
func fit(m help.Model, parts []string) []string {
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailWidth := lipgloss.Width(tail)

	var out []string
	used := 0
	for i, part := range parts {
		w := lipgloss.Width(part)
		reserve := tailWidth
		if i == len(parts)-1 {
			reserve = 0
		}
		if m.Width > 0 && used+w+reserve > m.Width {
			if used+tailWidth <= m.Width {
				out = append(out, tail)
			}
			break
		}
		used += w
		out = append(out, part)
	}
	return out
}
