// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package breadcrumbs

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

// Model renders a navigation trail and owns its expansion state. Once the
// collapse placeholder has been activated the trail stays expanded for the
// lifetime of the model.
type Model struct {
	Items        []Item
	Config       Config
	Separator    string
	CollapseText content.Content
	Size         Size
	Background   Background
	// Underline underlines link items.
	Underline bool
	// Wrap breaks the trail over several lines instead of truncating it.
	Wrap bool
	// Hyperlinks emits OSC 8 sequences for link items.
	Hyperlinks bool
	Styles     Styles

	expanded bool
	focused  bool
	cursor   int
	size     util.Size
}

type NewOpt = func(m *Model)

func New(items []Item, opts ...NewOpt) *Model {
	m := Model{
		Items:        items,
		Config:       DefaultConfig(),
		Separator:    SeparatorSlash,
		CollapseText: content.Text(DefaultCollapseText),
		Underline:    true,
		Styles:       DefaultStyles(theme.Default),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.cursor = max(len(m.interactive())-1, 0)
	return &m
}

func WithConfig(cfg Config) NewOpt {
	return func(m *Model) { m.Config = cfg }
}

func WithMaxItems(n int) NewOpt {
	return func(m *Model) { m.Config.MaxItems = n }
}

func WithItemsBeforeCollapse(n int) NewOpt {
	return func(m *Model) { m.Config.ItemsBeforeCollapse = n }
}

func WithItemsAfterCollapse(n int) NewOpt {
	return func(m *Model) { m.Config.ItemsAfterCollapse = n }
}

func WithSeparator(sep string) NewOpt {
	return func(m *Model) { m.Separator = sep }
}

func WithCollapseText(c content.Content) NewOpt {
	return func(m *Model) { m.CollapseText = c }
}

func WithSize(s Size) NewOpt {
	return func(m *Model) { m.Size = s }
}

func WithBackground(b Background) NewOpt {
	return func(m *Model) { m.Background = b }
}

func WithUnderline(underline bool) NewOpt {
	return func(m *Model) { m.Underline = underline }
}

func WithWrap(wrap bool) NewOpt {
	return func(m *Model) { m.Wrap = wrap }
}

func WithHyperlinks(enabled bool) NewOpt {
	return func(m *Model) { m.Hyperlinks = enabled }
}

func WithTheme(t theme.Theme) NewOpt {
	return func(m *Model) { m.Styles = DefaultStyles(t) }
}

// Expand shows the full trail from now on. Calling it again is a no-op.
func (m *Model) Expand() {
	if m.expanded {
		return
	}
	collapsed := m.Collapsed()
	m.expanded = true
	if collapsed {
		// keep the cursor on the first item that was hidden
		m.cursor = util.Clamp(0, m.Config.ItemsBeforeCollapse, max(len(m.Items)-1, 0))
	}
}

func (m Model) Expanded() bool {
	return m.expanded
}

// Collapsed reports whether the current layout hides items.
func (m Model) Collapsed() bool {
	return m.Config.NeedsCollapse(len(m.Items), m.expanded)
}

// SetItems replaces the trail. The expansion state is kept.
func (m *Model) SetItems(items []Item) {
	m.Items = items
	m.cursor = max(len(m.interactive())-1, 0)
}

// Nodes returns the current layout.
func (m Model) Nodes() []Node {
	return Nodes(m.Items, m.Config, m.expanded)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(tea.MouseMsg); ok {
		return m.click(msg)
	}

	if !m.focused {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Prev):
			m.move(-1)
		case key.Matches(msg, DefaultKeyMap.Next):
			m.move(1)
		case key.Matches(msg, DefaultKeyMap.Select):
			return m.activate()
		case key.Matches(msg, DefaultKeyMap.Expand):
			if m.Collapsed() {
				return m.expandCmd()
			}
		}
	}
	return nil
}

// interactive returns the indexes of nodes the cursor can rest on.
func (m Model) interactive() []int {
	var idx []int
	for i, node := range m.Nodes() {
		if node.Kind != NodeSeparator {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m *Model) move(delta int) {
	n := len(m.interactive())
	m.cursor = util.Clamp(0, m.cursor+delta, max(n-1, 0))
}

func (m *Model) activate() tea.Cmd {
	idx := m.interactive()
	if len(idx) == 0 {
		return nil
	}
	node := m.Nodes()[idx[util.Clamp(0, m.cursor, len(idx)-1)]]
	switch node.Kind {
	case NodeCollapse:
		return m.expandCmd()
	case NodeItem:
		if node.Item.OnSelect != nil {
			return node.Item.OnSelect(node.Item)
		}
		item := node.Item
		return func() tea.Msg { return ItemSelected{Item: item} }
	}
	return nil
}

// click activates the node under a left click. Coordinates are relative to
// the trail's top-left corner, which stack.Model guarantees when routing.
func (m *Model) click(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	node := m.nodeAt(msg.X, msg.Y)
	for i, idx := range m.interactive() {
		if idx == node {
			m.cursor = i
			return m.activate()
		}
	}
	return nil
}

// nodeAt returns the index of the node drawn at x, y or -1.
func (m Model) nodeAt(x, y int) int {
	container := m.container()
	x -= container.GetMarginLeft() + container.GetBorderLeftSize() + container.GetPaddingLeft()
	y -= container.GetMarginTop() + container.GetBorderTopSize() + container.GetPaddingTop()
	width := m.size.Width - container.GetHorizontalFrameSize()

	line, col := 0, 0
	for i, seg := range m.segments() {
		w := ansi.StringWidth(seg)
		if m.Wrap && m.size.Width > 0 && col > 0 && col+w > width {
			line++
			col = 0
		}
		if line == y && x >= col && x < col+w {
			return i
		}
		col += w
	}
	return -1
}

func (m *Model) expandCmd() tea.Cmd {
	m.Expand()
	return func() tea.Msg { return Expanded{} }
}

func (m Model) renderNode(node Node, focused bool) string {
	gap := m.Size.gap()
	var s string
	switch node.Kind {
	case NodeSeparator:
		sep := m.Separator
		if sep == "" {
			sep = SeparatorSlash
		}
		return m.Styles.Separator.Padding(0, gap).Render(sep)
	case NodeCollapse:
		collapse := m.CollapseText
		if content.IsEmpty(collapse) {
			collapse = content.Text(DefaultCollapseText)
		}
		s = content.Render(collapse, m.Styles.Collapse)
		if focused {
			s = m.Styles.Cursor.Render(ansi.Strip(s))
		}
		return s + strings.Repeat(" ", gap)
	}

	item := node.Item
	style := m.Styles.Item
	switch {
	case item.Active:
		style = m.Styles.Active
	case item.IsLink():
		style = m.Styles.Link.Underline(m.Underline)
	}
	if focused {
		style = style.Inherit(m.Styles.Cursor)
	}

	if !content.IsEmpty(item.Icon) {
		s = content.Render(item.Icon, m.Styles.Icon)
	}
	s += content.Render(item.Label, style)
	if m.Hyperlinks && item.IsLink() {
		s = ansi.SetHyperlink(item.Href) + s + ansi.ResetHyperlink()
	}
	return s
}

func (m Model) segments() []string {
	nodes := m.Nodes()
	cursorNode := -1
	if m.focused {
		if idx := m.interactive(); len(idx) > 0 {
			cursorNode = idx[util.Clamp(0, m.cursor, len(idx)-1)]
		}
	}

	segments := make([]string, len(nodes))
	for i, node := range nodes {
		segments[i] = m.renderNode(node, i == cursorNode)
	}
	return segments
}

func (m Model) container() lipgloss.Style {
	switch m.Background {
	case BackgroundLight:
		return m.Styles.ContainerLight
	case BackgroundDark:
		return m.Styles.ContainerDark
	}
	return lipgloss.NewStyle()
}

func (m Model) View() string {
	container := m.container()
	width := m.size.Width - container.GetHorizontalFrameSize()

	segments := m.segments()
	var view string
	switch {
	case m.Wrap && m.size.Width > 0:
		view = wrapSegments(segments, width)
	case m.size.Width > 0:
		view = ansi.Truncate(strings.Join(segments, ""), max(width, 0), "…")
	default:
		view = strings.Join(segments, "")
	}
	return container.Render(view)
}

// wrapSegments packs segments greedily into lines of at most width cells.
// A segment wider than a line gets a line of its own.
func wrapSegments(segments []string, width int) string {
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, seg := range segments {
		w := ansi.StringWidth(seg)
		if lineWidth > 0 && lineWidth+w > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		line.WriteString(seg)
		lineWidth += w
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
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
