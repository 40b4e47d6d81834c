// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package article

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

const (
	DefaultPreviewBlocks = 3
	DefaultMaxWidth      = 80
	DefaultReadMoreLabel = "Read More"
)

// Expanded is emitted once when the reader asks for the full article.
type Expanded struct{}

type Styles struct {
	Container     lipgloss.Style
	Title         lipgloss.Style
	Icon          lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
}

func DefaultStyles(t theme.Theme) Styles {
	button := lipgloss.NewStyle().
		Foreground(t.OnAccent).
		Background(t.Highlight).
		Padding(0, 3)
	return Styles{
		Container: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Faint).
			MarginBottom(1),
		Icon:          lipgloss.NewStyle().PaddingRight(2),
		Button:        button,
		ButtonFocused: button.Bold(true).Underline(true),
	}
}

// Model shows a markdown article. Only the first PreviewBlocks blocks are
// visible until ReadMore is triggered; after that the whole text scrolls.
type Model struct {
	Title         string
	Icon          content.Content
	Body          string
	PreviewBlocks int
	MaxWidth      int
	ReadMoreLabel string
	Theme         theme.Theme
	Styles        Styles

	expanded bool
	focused  bool
	blocks   []string
	viewport viewport.Model
	size     util.Size
}

type NewOpt = func(m *Model)

func New(title, body string, opts ...NewOpt) *Model {
	m := Model{
		Title:         title,
		Body:          body,
		PreviewBlocks: DefaultPreviewBlocks,
		MaxWidth:      DefaultMaxWidth,
		ReadMoreLabel: DefaultReadMoreLabel,
		Theme:         theme.Default,
		Styles:        DefaultStyles(theme.Default),
		viewport:      viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.layout()
	return &m
}

func WithIcon(icon content.Content) NewOpt {
	return func(m *Model) { m.Icon = icon }
}

func WithPreviewBlocks(n int) NewOpt {
	return func(m *Model) { m.PreviewBlocks = n }
}

func WithMaxWidth(w int) NewOpt {
	return func(m *Model) { m.MaxWidth = w }
}

func WithReadMoreLabel(label string) NewOpt {
	return func(m *Model) { m.ReadMoreLabel = label }
}

func WithTheme(t theme.Theme) NewOpt {
	return func(m *Model) {
		m.Theme = t
		m.Styles = DefaultStyles(t)
	}
}

// WithExpanded starts with the full article visible.
func WithExpanded() NewOpt {
	return func(m *Model) { m.expanded = true }
}

// SetBody replaces the markdown source. The expansion state is kept.
func (m *Model) SetBody(body string) {
	m.Body = body
	m.layout()
}

// ReadMore reveals the hidden blocks. It cannot be undone.
func (m *Model) ReadMore() {
	if m.expanded {
		return
	}
	m.expanded = true
	m.layout()
}

func (m Model) Expanded() bool {
	return m.expanded
}

// HasMore reports whether blocks are hidden behind the read more button.
func (m Model) HasMore() bool {
	return !m.expanded && len(m.blocks) > max(m.PreviewBlocks, 0)
}

// Blocks returns the rendered top-level blocks.
func (m Model) Blocks() []string {
	return m.blocks
}

func (m Model) width() int {
	w := m.MaxWidth
	if m.size.Width > 0 {
		available := m.size.Width - m.Styles.Container.GetHorizontalFrameSize()
		if w <= 0 {
			w = available
		} else {
			w = min(w, available)
		}
	}
	return max(w, 0)
}

func (m *Model) layout() {
	width := m.width()
	m.blocks = RenderBlocks(m.Body, m.Theme, width)

	m.viewport.Width = width
	m.viewport.SetContent(strings.Join(m.blocks, "\n\n"))
	if m.size.Height > 0 {
		chrome := lipgloss.Height(m.header()) + m.Styles.Title.GetVerticalMargins() + m.Styles.Container.GetVerticalFrameSize()
		m.viewport.Height = max(m.size.Height-chrome, 1)
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.layout()
		return nil
	}
	if !m.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		if !m.expanded {
			if key.Matches(msg, DefaultKeyMap.ReadMore) && m.HasMore() {
				m.ReadMore()
				return func() tea.Msg { return Expanded{} }
			}
			return nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m Model) header() string {
	title := m.Styles.Title.UnsetMarginBottom().Render(strings.ToUpper(m.Title))
	if content.IsEmpty(m.Icon) {
		return title
	}
	icon := content.Render(m.Icon, m.Styles.Icon)
	return lipgloss.JoinHorizontal(lipgloss.Center, icon, title)
}

func (m Model) button() string {
	style := m.Styles.Button
	if m.focused {
		style = m.Styles.ButtonFocused
	}
	label := style.Render(m.ReadMoreLabel)
	return lipgloss.PlaceHorizontal(max(m.width(), lipgloss.Width(label)), lipgloss.Center, label)
}

func (m Model) body() string {
	if m.expanded {
		if m.size.Height > 0 {
			return m.viewport.View()
		}
		return strings.Join(m.blocks, "\n\n")
	}
	n := min(max(m.PreviewBlocks, 0), len(m.blocks))
	preview := strings.Join(m.blocks[:n], "\n\n")
	if !m.HasMore() {
		return preview
	}
	if preview == "" {
		return m.button()
	}
	return preview + "\n\n" + m.button()
}

func (m Model) View() string {
	var parts []string
	if m.Title != "" || !content.IsEmpty(m.Icon) {
		margin := lipgloss.NewStyle().MarginBottom(m.Styles.Title.GetMarginBottom())
		parts = append(parts, margin.Render(m.header()))
	}
	parts = append(parts, m.body())
	return m.Styles.Container.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
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
