// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root frames a body model for full screen programs: a header with
// the title, the body with dialog support and a key help footer.
package root

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tuikit/ui/tui/models/components/dialog"
	"github.com/toeirei/tuikit/ui/tui/models/components/header"
	"github.com/toeirei/tuikit/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/tuikit/ui/tui/models/helpers/title"
	"github.com/toeirei/tuikit/ui/tui/models/views/footer"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

// StatusMsg replaces the footer status text.
type StatusMsg string

func SetStatus(s string) tea.Cmd {
	return func() tea.Msg { return StatusMsg(s) }
}

type Model struct {
	stack        *stack.Model
	header       *header.Model
	footer       *footer.Model
	host         *dialog.Host
	titleHandler *windowtitle.Handler
}

type NewOpt = func(m *Model)

// WithSubtitle shows s on the right of the header, typically a version.
func WithSubtitle(s string) NewOpt {
	return func(m *Model) { m.header.Subtitle = s }
}

func WithTheme(t theme.Theme) NewOpt {
	return func(m *Model) {
		m.header.Styles = header.DefaultStyles(t)
		m.footer.SetTheme(t)
		m.host.Theme = t
	}
}

func New(title string, body util.Model, opts ...NewOpt) *Model {
	m := Model{
		header:       header.New(title),
		footer:       footer.New(BaseKeyMap),
		host:         dialog.NewHost(&body),
		titleHandler: windowtitle.NewHandler(title, " | "),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.stack = stack.New(
		stack.WithOrientation(stack.Vertical),
		stack.WithItem(util.ModelPointer(m.header), header.SizeConfig),
		stack.WithItem(util.ModelPointer(m.host), stack.VariableSize(1)),
		stack.WithItem(util.ModelPointer(m.footer), footer.SizeConfig),
		stack.WithFocus(stack.FocusIndex(1)),
	)
	return &m
}

func (m Model) Init() tea.Cmd {
	focusCmd, keyMap := m.stack.Focus()
	return tea.Sequence(
		m.titleHandler.Init(),
		m.stack.Init(),
		focusCmd,
		util.AnnounceKeyMapCmd(keyMap),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, BaseKeyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, BaseKeyMap.Quit) && m.host.Open() == 0:
			return m, tea.Quit
		case key.Matches(msg, BaseKeyMap.Help):
			m.footer.ToggleExpanded()
			return m, m.stack.Relayout()
		}
	case StatusMsg:
		m.footer.Status = string(msg)
		return m, nil
	}
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// Dialogs reports how many dialogs are open over the body.
func (m Model) Dialogs() int {
	return m.host.Open()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
