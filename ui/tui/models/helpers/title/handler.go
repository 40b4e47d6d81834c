// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal window title in sync with the
// program state. Models request a new suffix with Set; the top level model
// feeds every message to a Handler.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set asks the handler to show title after the base title. An empty title
// shows the base title alone.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}

type Handler struct {
	Base      string
	Delimiter string
	current   string
}

func NewHandler(base string, delimiter string) *Handler {
	return &Handler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// Title is the full title currently shown.
func (h Handler) Title() string {
	if h.current == "" {
		return h.Base
	}
	return h.Base + h.Delimiter + h.current
}

func (h Handler) Init() tea.Cmd {
	return tea.SetWindowTitle(h.Title())
}

// Handle reports whether msg was a title request. The command is nil when
// the title did not change.
func (h *Handler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	title, ok := msg.(titleMsg)
	if !ok {
		return nil, false
	}
	if h.current == string(title) {
		return nil, true
	}
	h.current = string(title)
	return tea.SetWindowTitle(h.Title()), true
}
