// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package dialog

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tuikit/ui/tui/theme"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type entry struct {
	dialog  *Model
	onClose func(Result) tea.Cmd
}

type showMsg struct {
	Dialog  *Model
	OnClose func(Result) tea.Cmd
}

type dismissMsg struct{}

// Show asks the nearest Host to open d on top of its content. onClose may be
// nil.
func Show(d *Model, onClose func(Result) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return showMsg{Dialog: d, OnClose: onClose} }
}

// Dismiss closes the topmost dialog as if the user had pressed esc.
func Dismiss() tea.Cmd {
	return func() tea.Msg { return dismissMsg{} }
}

// Host draws a stack of dialogs over a child model. Keys go to the topmost
// dialog while one is open, everything else reaches the child as well.
type Host struct {
	Dimmed bool
	Theme  theme.Theme

	child   *util.Model
	dialogs []entry
	size    util.Size
}

func NewHost(child *util.Model) *Host {
	return &Host{
		Dimmed: true,
		Theme:  theme.Default,
		child:  child,
	}
}

// Open reports how many dialogs are stacked.
func (m Host) Open() int {
	return len(m.dialogs)
}

func (m Host) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Host) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		cmds := []tea.Cmd{(*m.child).Update(msg)}
		for _, e := range m.dialogs {
			cmds = append(cmds, e.dialog.Update(msg))
		}
		return tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case showMsg:
		return m.push(entry{dialog: msg.Dialog, onClose: msg.OnClose})
	case dismissMsg:
		if top := m.top(); top != nil {
			return top.close(Result{})
		}
		return nil
	case Result:
		return m.pop(msg)
	case tea.KeyMsg:
		if top := m.top(); top != nil {
			return top.Update(msg)
		}
		return (*m.child).Update(msg)
	case tea.MouseMsg:
		// dialogs are modal and keyboard driven
		if m.top() != nil {
			return nil
		}
		return (*m.child).Update(msg)
	}

	cmds := []tea.Cmd{(*m.child).Update(msg)}
	if top := m.top(); top != nil {
		cmds = append(cmds, top.Update(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Host) top() *Model {
	if len(m.dialogs) == 0 {
		return nil
	}
	return m.dialogs[len(m.dialogs)-1].dialog
}

func (m *Host) push(e entry) tea.Cmd {
	m.Blur()
	e.dialog.Reopen()
	m.dialogs = append(m.dialogs, e)
	return tea.Batch(
		e.dialog.Init(),
		e.dialog.Update(m.size.ToMsg()),
		m.focusActive(),
	)
}

// pop removes the dialog that produced result. A Result arriving with no
// dialog open belongs to the child.
func (m *Host) pop(result Result) tea.Cmd {
	if len(m.dialogs) == 0 {
		return (*m.child).Update(result)
	}
	m.Blur()
	e := m.dialogs[len(m.dialogs)-1]
	m.dialogs = m.dialogs[:len(m.dialogs)-1]

	var onClose tea.Cmd
	if e.onClose != nil {
		onClose = e.onClose(result)
	}
	return tea.Batch(m.focusActive(), onClose)
}

func (m *Host) focusActive() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (m Host) View() string {
	view := (*m.child).View()
	for _, e := range m.dialogs {
		if m.Dimmed {
			view = Dim(view, m.Theme.Dimmed)
		}
		view = Overlay(view, e.dialog.View())
	}
	return view
}

func (m *Host) Focus() (tea.Cmd, help.KeyMap) {
	if top := m.top(); top != nil {
		return top.Focus()
	}
	return (*m.child).Focus()
}

func (m *Host) Blur() {
	if top := m.top(); top != nil {
		top.Blur()
		return
	}
	(*m.child).Blur()
}

// *Host implements util.Model
var _ util.Model = (*Host)(nil)
