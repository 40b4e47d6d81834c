// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/content"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyX     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}
)

func newConfirm(opts ...NewOpt) *Model {
	opts = append([]NewOpt{WithActions(
		Action{ID: "cancel", Label: "Cancel"},
		Action{ID: "delete", Label: "Delete"},
	)}, opts...)
	d := New("Delete file", content.Text("Really delete notes.txt?"), opts...)
	d.Focus()
	return d
}

func result(t *testing.T, cmd tea.Cmd) Result {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	r, ok := cmd().(Result)
	if !ok {
		t.Fatalf("expected Result message")
	}
	return r
}

func TestParseSize(t *testing.T) {
	cases := map[string]Size{
		"":           SizeMedium,
		"small":      SizeSmall,
		"Medium":     SizeMedium,
		"large":      SizeLarge,
		"fullscreen": SizeFullscreen,
	}
	for in, want := range cases {
		got, err := ParseSize(in)
		if err != nil || got != want {
			t.Fatalf("ParseSize(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseSize("huge"); err == nil {
		t.Fatalf("expected error for unknown size")
	}
}

func TestEnter_ChoosesFocusedAction(t *testing.T) {
	d := newConfirm()
	if r := result(t, d.Update(keyEnter)); r.ActionID != "cancel" {
		t.Fatalf("expected cancel, got %q", r.ActionID)
	}
	if d.IsOpen() {
		t.Fatalf("dialog should be closed after choosing")
	}
	if d.View() != "" {
		t.Fatalf("closed dialog should render nothing")
	}
}

func TestArrowKeys_MoveBetweenActions(t *testing.T) {
	d := newConfirm()
	d.Update(keyRight)
	if d.FocusedAction() != 1 {
		t.Fatalf("expected second action focused, got %d", d.FocusedAction())
	}
	d.Update(keyRight)
	if d.FocusedAction() != 0 {
		t.Fatalf("expected focus to wrap to first action, got %d", d.FocusedAction())
	}
	d.Update(keyLeft)
	if r := result(t, d.Update(keyEnter)); r.ActionID != "delete" {
		t.Fatalf("expected delete, got %q", r.ActionID)
	}
}

func TestEsc_Dismisses(t *testing.T) {
	d := newConfirm()
	r := result(t, d.Update(keyEsc))
	if !r.Dismissed() {
		t.Fatalf("expected dismissal, got %q", r.ActionID)
	}
}

func TestX_ClosesOnlyWithCloseButton(t *testing.T) {
	d := newConfirm()
	if !result(t, d.Update(keyX)).Dismissed() {
		t.Fatalf("x should dismiss when the close button is shown")
	}

	d = newConfirm(WithCloseButton(false))
	if cmd := d.Update(keyX); cmd != nil {
		t.Fatalf("x should be ignored without close button")
	}
	if !d.IsOpen() {
		t.Fatalf("dialog should still be open")
	}
}

func TestUnfocused_IgnoresKeys(t *testing.T) {
	d := newConfirm()
	d.Blur()
	if cmd := d.Update(keyEnter); cmd != nil {
		t.Fatalf("blurred dialog should not react")
	}
}

func TestView_ShowsTitleBodyAndActions(t *testing.T) {
	view := ansi.Strip(newConfirm().View())
	for _, want := range []string{"Delete file", "✕", "Really delete notes.txt?", "Cancel", "Delete"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	view = ansi.Strip(newConfirm(WithCloseButton(false)).View())
	if strings.Contains(view, "✕") {
		t.Fatalf("close button should be hidden:\n%s", view)
	}
}

func TestView_WidthFollowsSize(t *testing.T) {
	cases := map[Size]int{
		SizeSmall:      40,
		SizeMedium:     60,
		SizeLarge:      80,
		SizeFullscreen: 120,
	}
	for size, want := range cases {
		d := newConfirm(WithSize(size))
		d.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
		if got := lipgloss.Width(d.View()); got != want {
			t.Fatalf("%s: expected width %d, got %d", size, want, got)
		}
	}
}

func TestView_FullscreenFillsHeight(t *testing.T) {
	d := newConfirm(WithSize(SizeFullscreen))
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if got := lipgloss.Height(d.View()); got != 30 {
		t.Fatalf("expected height 30, got %d", got)
	}
}

func TestView_LongBodyScrolls(t *testing.T) {
	body := strings.Repeat("line\n", 100)
	d := New("Log", content.Text(body), WithActions(Action{ID: "ok", Label: "OK"}))
	d.Focus()
	d.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if got := lipgloss.Height(d.View()); got > 20 {
		t.Fatalf("dialog should fit the window, got height %d", got)
	}
	before := d.View()
	d.Update(tea.KeyMsg{Type: tea.KeyDown})
	if d.View() == before {
		t.Fatalf("expected body to scroll")
	}
}

func TestOverlay_CentersForeground(t *testing.T) {
	bg := strings.Repeat("..........\n", 4) + ".........."
	got := Overlay(bg, "ab\ncd")
	want := strings.Join([]string{
		"..........",
		"....ab....",
		"....cd....",
		"..........",
		"..........",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected overlay:\n%s", got)
	}
}

func TestOverlay_PadsShortLines(t *testing.T) {
	bg := "..........\n..\n.........."
	got := strings.Split(Overlay(bg, "X"), "\n")[1]
	if got != "..  X" {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestDim_StripsStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello")
	if got := ansi.Strip(Dim(styled, lipgloss.Color("240"))); got != "hello" {
		t.Fatalf("unexpected text %q", got)
	}
}
