// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package dialog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
	SizeFullscreen
)

// width returns the outer dialog width for the given space. Zero available
// space means unknown and yields the nominal width.
func (s Size) width(available int) int {
	var w int
	switch s {
	case SizeSmall:
		w = 40
	case SizeLarge:
		w = 80
	case SizeFullscreen:
		if available > 0 {
			return available
		}
		w = 80
	default:
		w = 60
	}
	if available > 0 {
		return min(w, available)
	}
	return w
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	case SizeFullscreen:
		return "fullscreen"
	default:
		return "medium"
	}
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func ParseSize(s string) (Size, error) {
	switch strings.ToLower(s) {
	case "", "medium":
		return SizeMedium, nil
	case "small":
		return SizeSmall, nil
	case "large":
		return SizeLarge, nil
	case "fullscreen":
		return SizeFullscreen, nil
	}
	return SizeMedium, fmt.Errorf("unknown dialog size %q", s)
}

type Action struct {
	ID    string
	Label string
}

// Result is emitted when the dialog closes. ActionID is empty when the
// dialog was dismissed without choosing an action.
type Result struct {
	ActionID string
}

func (r Result) Dismissed() bool {
	return r.ActionID == ""
}

type Styles struct {
	Box          lipgloss.Style
	Header       lipgloss.Style
	Body         lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
	Buttons      lipgloss.Style
}

func DefaultStyles(t theme.Theme) Styles {
	button := lipgloss.NewStyle().
		Foreground(t.OnAccent).
		Background(t.Button).
		Padding(0, 3)
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		Header: lipgloss.NewStyle().
			Foreground(t.OnAccent).
			Background(t.Accent).
			Bold(true).
			Padding(0, 1),
		Body:         lipgloss.NewStyle().Padding(1, 2, 0, 2),
		Button:       button,
		ButtonActive: button.Background(t.Accent).Underline(true),
		Buttons:      lipgloss.NewStyle().Padding(1, 2),
	}
}

// Model is a modal dialog with a title bar, a scrollable body and a row of
// actions.
type Model struct {
	Title           string
	Body            content.Content
	Actions         []Action
	Size            Size
	ShowCloseButton bool
	Styles          Styles

	open     bool
	focused  bool
	action   int
	viewport viewport.Model
	size     util.Size
}

type NewOpt = func(m *Model)

func New(title string, body content.Content, opts ...NewOpt) *Model {
	m := Model{
		Title:           title,
		Body:            body,
		ShowCloseButton: true,
		Styles:          DefaultStyles(theme.Default),
		open:            true,
		viewport:        viewport.New(0, 0),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.layout()
	return &m
}

func WithActions(actions ...Action) NewOpt {
	return func(m *Model) { m.Actions = append(m.Actions, actions...) }
}

func WithSize(s Size) NewOpt {
	return func(m *Model) { m.Size = s }
}

func WithCloseButton(show bool) NewOpt {
	return func(m *Model) { m.ShowCloseButton = show }
}

// WithFocusedAction preselects an action by index.
func WithFocusedAction(i int) NewOpt {
	return func(m *Model) { m.action = i }
}

func WithTheme(t theme.Theme) NewOpt {
	return func(m *Model) { m.Styles = DefaultStyles(t) }
}

func (m Model) IsOpen() bool {
	return m.open
}

// Reopen makes a closed dialog visible again.
func (m *Model) Reopen() {
	m.open = true
}

func (m Model) FocusedAction() int {
	return m.action
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.layout()
		return nil
	}
	if !m.open || !m.focused {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DefaultKeyMap.Prev):
			m.action = util.Wrap(m.action, -1, len(m.Actions))
		case key.Matches(msg, DefaultKeyMap.Next):
			m.action = util.Wrap(m.action, 1, len(m.Actions))
		case key.Matches(msg, DefaultKeyMap.Select):
			if len(m.Actions) == 0 {
				return m.close(Result{})
			}
			return m.close(Result{ActionID: m.Actions[util.Clamp(0, m.action, len(m.Actions)-1)].ID})
		case msg.String() == "x" && !m.ShowCloseButton:
			// without a close button x is not a close key
		case key.Matches(msg, DefaultKeyMap.Close):
			return m.close(Result{})
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return cmd
		}
	}
	return nil
}

func (m *Model) close(result Result) tea.Cmd {
	m.open = false
	return func() tea.Msg { return result }
}

// outerWidth is the width of the whole dialog box including its border.
func (m Model) outerWidth() int {
	return m.Size.width(m.size.Width)
}

func (m Model) innerWidth() int {
	return max(m.outerWidth()-m.Styles.Box.GetHorizontalFrameSize(), 1)
}

// layout sizes the body viewport. The body grows with its content until the
// dialog would exceed the available height, then scrolls.
func (m *Model) layout() {
	width := m.innerWidth()
	bodyStyle := m.Styles.Body.Width(width)
	body := bodyStyle.Render(content.Render(m.Body, lipgloss.NewStyle()))

	height := lipgloss.Height(body)
	if m.size.Height > 0 {
		chrome := lipgloss.Height(m.header()) + lipgloss.Height(m.buttons()) + m.Styles.Box.GetVerticalFrameSize()
		available := max(m.size.Height-chrome, 1)
		if m.Size == SizeFullscreen {
			height = available
		} else {
			height = min(height, available)
		}
	}

	m.viewport.Width = width
	m.viewport.Height = height
	m.viewport.SetContent(body)
}

func (m Model) header() string {
	width := m.innerWidth()
	title := m.Title
	if m.ShowCloseButton {
		closeButton := "✕"
		fill := width - m.Styles.Header.GetHorizontalPadding() - ansi.StringWidth(title) - ansi.StringWidth(closeButton)
		title += strings.Repeat(" ", max(fill, 1)) + closeButton
	}
	return m.Styles.Header.Width(width).Render(title)
}

func (m Model) buttons() string {
	if len(m.Actions) == 0 {
		return ""
	}
	buttons := make([]string, 0, 2*len(m.Actions))
	for i, action := range m.Actions {
		if i > 0 {
			buttons = append(buttons, "  ")
		}
		style := m.Styles.Button
		if i == m.action {
			style = m.Styles.ButtonActive
		}
		buttons = append(buttons, style.Render(action.Label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
	return m.Styles.Buttons.Width(m.innerWidth()).Align(lipgloss.Right).Render(row)
}

func (m Model) View() string {
	if !m.open {
		return ""
	}
	parts := []string{m.header(), m.viewport.View()}
	if buttons := m.buttons(); buttons != "" {
		parts = append(parts, buttons)
	}
	return m.Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
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
