// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package browse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/models/components/breadcrumbs"
	"github.com/toeirei/tuikit/ui/tui/models/components/menu"
	"github.com/toeirei/tuikit/ui/tui/models/views/root"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// pump runs cmd and feeds every resulting message back through update until
// nothing is left.
func pump(update func(tea.Msg) tea.Cmd, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0 && i < 200; i++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case nil:
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			seen = append(seen, msg)
			queue = append(queue, update(msg))
		}
	}
	return seen
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	must := func(err error) {
		if err != nil {
			t.Fatalf("fixture: %v", err)
		}
	}
	must(os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	must(os.WriteFile(filepath.Join(dir, "sub", "inner.txt"), []byte("x"), 0o644))
	must(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	must(os.WriteFile(filepath.Join(dir, ".secret"), nil, 0o644))
	return dir
}

func TestBrowse_ListsDirectoriesFirst(t *testing.T) {
	dir := fixture(t)
	m := New(dir)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})

	if m.Active() != filepath.Join(dir, "sub") {
		t.Fatalf("expected the directory first, got %q", m.Active())
	}
	view := ansi.Strip(m.View())
	if strings.Contains(view, ".secret") {
		t.Fatalf("hidden entries should be skipped:\n%s", view)
	}
	if strings.Index(view, "sub/") > strings.Index(view, "a.txt") {
		t.Fatalf("directories should come before files:\n%s", view)
	}

	hidden := New(dir, WithHidden(true))
	hidden.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	if !strings.Contains(ansi.Strip(hidden.View()), ".secret") {
		t.Fatalf("hidden entries should be listed on request")
	}
}

func TestBrowse_MovingUpdatesTrail(t *testing.T) {
	dir := fixture(t)
	m := New(dir)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 10})
	m.Focus()

	pump(m.Update, m.Update(tea.KeyMsg{Type: tea.KeyRight}))
	if m.Active() != filepath.Join(dir, "sub", "inner.txt") {
		t.Fatalf("expected to enter sub, got %q", m.Active())
	}
	if !strings.Contains(ansi.Strip(m.View()), "inner.txt") {
		t.Fatalf("trail should end with the active entry:\n%s", ansi.Strip(m.View()))
	}

	pump(m.Update, m.Update(tea.KeyMsg{Type: tea.KeyLeft}))
	pump(m.Update, m.Update(tea.KeyMsg{Type: tea.KeyDown}))
	if m.Active() != filepath.Join(dir, "a.txt") {
		t.Fatalf("unexpected active entry %q", m.Active())
	}
}

func TestBrowse_TrailJumpsToDirectory(t *testing.T) {
	dir := fixture(t)
	m := New(dir)
	m.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusCrumbs {
		t.Fatalf("expected the trail to be focused")
	}

	sub := filepath.Join(dir, "sub")
	pump(m.Update, m.Update(breadcrumbs.ItemSelected{Item: breadcrumbs.Item{ID: sub}}))
	if m.Dir != sub || m.Active() != filepath.Join(sub, "inner.txt") {
		t.Fatalf("expected the tree rooted at sub, got %q / %q", m.Dir, m.Active())
	}
	if m.focus != focusTree {
		t.Fatalf("focus should return to the tree after a jump")
	}

	pump(m.Update, m.Update(breadcrumbs.ItemSelected{Item: breadcrumbs.Item{ID: filepath.Join(dir, "a.txt")}}))
	if m.Dir != dir {
		t.Fatalf("selecting a file should root the tree at its directory, got %q", m.Dir)
	}
}

func TestBrowse_CopyAndInfoDialog(t *testing.T) {
	dir := fixture(t)
	var copied []string
	b := New(dir, WithClipboard(func(s string) error {
		copied = append(copied, s)
		return nil
	}))
	rt := root.New("Files", b)
	update := func(msg tea.Msg) tea.Cmd {
		_, cmd := rt.Update(msg)
		return cmd
	}
	update(tea.WindowSizeMsg{Width: 80, Height: 20})
	b.Focus()

	msgs := pump(update, update(runeKey("c")))
	if len(copied) != 1 || copied[0] != filepath.Join(dir, "sub") {
		t.Fatalf("unexpected clipboard writes %v", copied)
	}
	var status root.StatusMsg
	for _, msg := range msgs {
		if s, ok := msg.(root.StatusMsg); ok {
			status = s
		}
	}
	if !strings.Contains(string(status), "sub") {
		t.Fatalf("expected a status naming the copied path, got %q", status)
	}

	pump(update, update(runeKey("i")))
	if rt.Dialogs() != 1 {
		t.Fatalf("expected the info dialog")
	}
	if !strings.Contains(ansi.Strip(rt.View()), "drwx") {
		t.Fatalf("info dialog should show the mode:\n%s", ansi.Strip(rt.View()))
	}

	pump(update, update(tea.KeyMsg{Type: tea.KeyLeft}))
	pump(update, update(tea.KeyMsg{Type: tea.KeyEnter}))
	if rt.Dialogs() != 0 || len(copied) != 2 {
		t.Fatalf("copy action should close the dialog and copy, dialogs=%d copies=%v", rt.Dialogs(), copied)
	}
}

func TestBrowse_Failures(t *testing.T) {
	dir := fixture(t)
	boom := errors.New("no clipboard")
	m := New(dir, WithClipboard(func(string) error { return boom }))

	status, ok := m.Update(runeKey("c"))().(root.StatusMsg)
	if !ok || !strings.Contains(string(status), boom.Error()) {
		t.Fatalf("expected clipboard failure status, got %q", status)
	}

	denied := errors.New("permission denied")
	status, ok = m.Update(menu.LoadFailed{Item: menu.Item{ID: "/root"}, Err: denied})().(root.StatusMsg)
	if !ok || !strings.Contains(string(status), "permission denied") {
		t.Fatalf("expected load failure status, got %q", status)
	}

	before := m.Dir
	m.Update(breadcrumbs.ItemSelected{Item: breadcrumbs.Item{ID: filepath.Join(dir, "missing")}})
	if m.Dir != before {
		t.Fatalf("a missing target should keep the tree")
	}
}
