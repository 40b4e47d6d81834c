// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package dialog

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/util"
)

type recorder struct {
	keys    []string
	focused bool
}

func (r *recorder) Init() tea.Cmd { return nil }

func (r *recorder) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok {
		r.keys = append(r.keys, msg.String())
	}
	return nil
}

func (r *recorder) View() string {
	return strings.TrimSuffix(strings.Repeat(strings.Repeat("#", 60)+"\n", 20), "\n")
}

func (r *recorder) Focus() (tea.Cmd, help.KeyMap) {
	r.focused = true
	return nil, nil
}

func (r *recorder) Blur() { r.focused = false }

// run feeds the messages produced by cmd back into host until it settles.
func run(host *Host, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case util.AnnounceKeyMapMsg:
		default:
			queue = append(queue, host.Update(msg))
		}
	}
}

func TestHost_RoutesKeysToTopDialog(t *testing.T) {
	child := &recorder{}
	host := NewHost(util.ModelPointer(child))
	host.Focus()

	var got *Result
	d := New("Confirm", content.Text("sure?"), WithActions(Action{ID: "yes", Label: "Yes"}))
	run(host, Show(d, func(r Result) tea.Cmd {
		got = &r
		return nil
	}))
	if host.Open() != 1 || child.focused {
		t.Fatalf("dialog should be open and focused")
	}

	run(host, host.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	if len(child.keys) != 0 {
		t.Fatalf("child received keys while dialog was open: %v", child.keys)
	}
	if got == nil || got.ActionID != "yes" {
		t.Fatalf("unexpected result %#v", got)
	}
	if host.Open() != 0 || !child.focused {
		t.Fatalf("child should regain focus after the dialog closes")
	}

	host.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if len(child.keys) != 1 || child.keys[0] != "q" {
		t.Fatalf("expected key to reach child, got %v", child.keys)
	}
}

func TestHost_DismissClosesTopmost(t *testing.T) {
	host := NewHost(util.ModelPointer(&recorder{}))
	host.Focus()

	var results []Result
	onClose := func(r Result) tea.Cmd {
		results = append(results, r)
		return nil
	}
	run(host, Show(New("first", nil), onClose))
	run(host, Show(New("second", nil), onClose))
	if host.Open() != 2 {
		t.Fatalf("expected two dialogs, got %d", host.Open())
	}

	run(host, Dismiss())
	if host.Open() != 1 || len(results) != 1 || !results[0].Dismissed() {
		t.Fatalf("expected one dismissed dialog, got %d open, %v", host.Open(), results)
	}
}

func TestHost_ViewOverlaysDialog(t *testing.T) {
	host := NewHost(util.ModelPointer(&recorder{}))
	host.Focus()
	run(host, host.Update(tea.WindowSizeMsg{Width: 60, Height: 20}))
	run(host, Show(New("Notice", content.Text("hello"), WithSize(SizeSmall)), nil))

	view := ansi.Strip(host.View())
	if !strings.Contains(view, "Notice") || !strings.Contains(view, "hello") {
		t.Fatalf("dialog missing from view:\n%s", view)
	}
	lines := strings.Split(view, "\n")
	if len(lines) != 20 || !strings.HasPrefix(lines[0], "####") {
		t.Fatalf("background should stay visible around the dialog:\n%s", view)
	}
}
