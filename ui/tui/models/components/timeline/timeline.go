// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package timeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown timeline orientation %q", s)
}

type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignAlternate
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignAlternate:
		return "alternate"
	}
	return "left"
}

func (a Align) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	case "alternate":
		return AlignAlternate, nil
	}
	return AlignLeft, fmt.Errorf("unknown timeline alignment %q", s)
}

type DotVariant int

const (
	// DotInherit uses the timeline's variant.
	DotInherit DotVariant = iota
	DotFilled
	DotOutlined
)

func (v DotVariant) String() string {
	switch v {
	case DotFilled:
		return "filled"
	case DotOutlined:
		return "outlined"
	}
	return ""
}

func (v DotVariant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func ParseDotVariant(s string) (DotVariant, error) {
	switch strings.ToLower(s) {
	case "":
		return DotInherit, nil
	case "filled":
		return DotFilled, nil
	case "outlined":
		return DotOutlined, nil
	}
	return DotInherit, fmt.Errorf("unknown dot variant %q", s)
}

const (
	dotFilled        = "●"
	dotOutlined      = "○"
	dotFilledLarge   = "⬤"
	dotOutlinedLarge = "◯"

	lineVertical   = "│"
	lineHorizontal = "─"

	// columns in horizontal mode are at least this wide
	minColumnWidth = 16
	columnGap      = 2
)

type Styles struct {
	Title         lipgloss.Style
	TitleActive   lipgloss.Style
	Content       lipgloss.Style
	ContentActive lipgloss.Style
	Opposite      lipgloss.Style
}

func DefaultStyles(t theme.Theme) Styles {
	body := lipgloss.NewStyle().
		Padding(0, 1).
		Background(t.SurfaceDark)
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(t.Text),
		TitleActive: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Content:     body,
		ContentActive: body.
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(t.Accent),
		Opposite: lipgloss.NewStyle().Foreground(t.Faint),
	}
}

// Model lays out a sequence of events along a line.
type Model struct {
	Items       []Item
	Orientation Orientation
	Align       Align
	Color       lipgloss.TerminalColor
	Reverse     bool
	DotVariant  DotVariant
	// Animate enlarges the dot of active items.
	Animate bool
	Styles  Styles

	size util.Size
}

type NewOpt = func(m *Model)

func New(items []Item, opts ...NewOpt) *Model {
	m := Model{
		Items:      items,
		Color:      theme.Default.Accent,
		DotVariant: DotFilled,
		Animate:    true,
		Styles:     DefaultStyles(theme.Default),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return &m
}

func WithOrientation(o Orientation) NewOpt {
	return func(m *Model) { m.Orientation = o }
}

func WithAlign(a Align) NewOpt {
	return func(m *Model) { m.Align = a }
}

func WithColor(c lipgloss.TerminalColor) NewOpt {
	return func(m *Model) { m.Color = c }
}

func WithReverse(reverse bool) NewOpt {
	return func(m *Model) { m.Reverse = reverse }
}

func WithDotVariant(v DotVariant) NewOpt {
	return func(m *Model) { m.DotVariant = v }
}

func WithAnimate(animate bool) NewOpt {
	return func(m *Model) { m.Animate = animate }
}

func WithTheme(t theme.Theme) NewOpt {
	return func(m *Model) {
		m.Styles = DefaultStyles(t)
		m.Color = t.Accent
	}
}

// EffectiveAlign is the alignment actually used. Horizontal timelines only
// support left alignment.
func (m Model) EffectiveAlign() Align {
	if m.Orientation == Horizontal {
		return AlignLeft
	}
	return m.Align
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

type placed struct {
	Item
	// index in Items, used for alternation
	index int
	last  bool
}

// visual returns the items in display order.
func (m Model) visual() []placed {
	out := make([]placed, len(m.Items))
	for i, item := range m.Items {
		out[i] = placed{Item: item, index: i}
	}
	if m.Reverse {
		slices.Reverse(out)
	}
	if len(out) > 0 {
		out[len(out)-1].last = true
	}
	return out
}

func (m Model) color(item Item) lipgloss.TerminalColor {
	if item.Color != nil {
		return item.Color
	}
	if m.Color != nil {
		return m.Color
	}
	return theme.Default.Accent
}

func (m Model) dot(item Item) string {
	if !content.IsEmpty(item.Dot) {
		return content.Render(item.Dot, lipgloss.NewStyle())
	}
	variant := item.DotVariant
	if variant == DotInherit {
		variant = m.DotVariant
	}
	large := m.Animate && item.Active

	glyph := dotFilled
	switch {
	case variant == DotOutlined && large:
		glyph = dotOutlinedLarge
	case variant == DotOutlined:
		glyph = dotOutlined
	case large:
		glyph = dotFilledLarge
	}
	return lipgloss.NewStyle().Foreground(m.color(item)).Render(glyph)
}

// line renders n connector cells. Connectors of inactive items are faint.
func (m Model) line(item Item, glyph string, n int) string {
	style := lipgloss.NewStyle().
		Foreground(m.color(item)).
		Faint(!item.Active)
	return style.Render(strings.Repeat(glyph, max(n, 0)))
}

func (m Model) body(item Item, width int, align lipgloss.Position) string {
	var parts []string
	if !content.IsEmpty(item.Title) {
		style := m.Styles.Title
		if item.Active {
			style = m.Styles.TitleActive
		}
		parts = append(parts, content.Render(item.Title, style))
	}
	style := m.Styles.Content
	if item.Active {
		style = m.Styles.ContentActive
	}
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	parts = append(parts, style.Render(content.Render(item.Content, lipgloss.NewStyle())))
	return lipgloss.JoinVertical(align, parts...)
}

func (m Model) opposite(item Item, width int, align lipgloss.Position) string {
	if content.IsEmpty(item.Opposite) {
		return ""
	}
	style := m.Styles.Opposite.Align(align)
	if width > 0 {
		style = style.Width(width)
	}
	return content.Render(item.Opposite, style)
}

// mirrored reports whether the item's content sits left of the line.
func (m Model) mirrored(p placed) bool {
	switch m.EffectiveAlign() {
	case AlignRight:
		return true
	case AlignAlternate:
		return (p.index+1)%2 == 0
	}
	return false
}

func (m Model) viewVertical() string {
	items := m.visual()
	align := m.EffectiveAlign()

	dotWidth := 1
	for _, p := range items {
		dotWidth = max(dotWidth, ansi.StringWidth(m.dot(p.Item)))
	}

	// width available to the blocks on either side of the line
	sideWidth := 0
	if m.size.Width > 0 {
		switch align {
		case AlignAlternate:
			sideWidth = max((m.size.Width-dotWidth-2)/2, 1)
		default:
			sideWidth = max(m.size.Width-dotWidth-1, 1)
		}
	}

	lefts := make([]string, len(items))
	rights := make([]string, len(items))
	for i, p := range items {
		if m.mirrored(p) {
			lefts[i] = m.body(p.Item, sideWidth, lipgloss.Right)
			if align == AlignAlternate {
				rights[i] = m.opposite(p.Item, sideWidth, lipgloss.Left)
			}
		} else {
			rights[i] = m.body(p.Item, sideWidth, lipgloss.Left)
			if align == AlignAlternate {
				lefts[i] = m.opposite(p.Item, sideWidth, lipgloss.Right)
			}
		}
	}

	// the left column is padded to a common width so the dots line up
	leftWidth := 0
	for i := range items {
		if lefts[i] != "" {
			leftWidth = max(leftWidth, sideWidth, lipgloss.Width(lefts[i]))
		}
	}

	rows := make([]string, len(items))
	for i, p := range items {
		height := max(lipgloss.Height(lefts[i]), lipgloss.Height(rights[i]))

		column := []string{m.dot(p.Item)}
		extra := height - 1
		if !p.last {
			// one blank row separates consecutive items
			extra++
		}
		for range extra {
			if p.last || p.DisableConnector {
				column = append(column, "")
			} else {
				column = append(column, m.line(p.Item, lineVertical, 1))
			}
		}
		dotColumn := lipgloss.NewStyle().
			Width(dotWidth).
			Align(lipgloss.Center).
			Render(strings.Join(column, "\n"))

		var parts []string
		if leftWidth > 0 {
			parts = append(parts, lipgloss.NewStyle().
				Width(leftWidth).
				Align(lipgloss.Right).
				MarginRight(1).
				Render(lefts[i]))
		}
		parts = append(parts, dotColumn)
		if rights[i] != "" {
			parts = append(parts, lipgloss.NewStyle().
				MarginLeft(1).
				Render(rights[i]))
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewHorizontal() string {
	items := m.visual()
	columns := make([]string, len(items))
	for i, p := range items {
		body := m.body(p.Item, 0, lipgloss.Left)
		width := max(minColumnWidth, lipgloss.Width(body))
		if !p.last {
			width += columnGap
		}

		dot := m.dot(p.Item)
		rest := width - ansi.StringWidth(dot)
		top := dot
		if !p.last && !p.DisableConnector {
			top += m.line(p.Item, lineHorizontal, rest)
		}
		columns[i] = lipgloss.NewStyle().
			Width(width).
			Render(lipgloss.JoinVertical(lipgloss.Left, top, body))
	}
	view := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if m.size.Width > 0 {
		lines := strings.Split(view, "\n")
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, m.size.Width, "")
		}
		view = strings.Join(lines, "\n")
	}
	return view
}

func (m Model) View() string {
	if len(m.Items) == 0 {
		return ""
	}
	if m.Orientation == Horizontal {
		return m.viewHorizontal()
	}
	return m.viewVertical()
}

// Focus is a no-op, timelines have no key bindings.
func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
