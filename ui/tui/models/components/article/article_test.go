// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package article

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/theme"
)

const fiveParagraphs = `First paragraph.

Second paragraph.

Third paragraph.

Fourth paragraph.

Fifth paragraph.
`

func TestRenderBlocks_OneEntryPerTopLevelBlock(t *testing.T) {
	src := "# Title\n\nSome *text*.\n\n- a\n- b\n\n```go\nfunc main() {}\n```\n"
	blocks := RenderBlocks(src, theme.Default, 0)
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d: %q", len(blocks), blocks)
	}
	if got := ansi.Strip(blocks[0]); got != "TITLE" {
		t.Fatalf("unexpected heading %q", got)
	}
	if got := ansi.Strip(blocks[1]); got != "Some text." {
		t.Fatalf("unexpected paragraph %q", got)
	}
	if got := ansi.Strip(blocks[2]); got != "• a\n• b" {
		t.Fatalf("unexpected list %q", got)
	}
	if got := ansi.Strip(blocks[3]); got != "func main() {}" {
		t.Fatalf("unexpected code %q", got)
	}
	if blocks[3] == ansi.Strip(blocks[3]) {
		t.Fatalf("expected highlighted code")
	}
}

func TestRenderBlocks_Empty(t *testing.T) {
	if blocks := RenderBlocks("  \n", theme.Default, 40); blocks != nil {
		t.Fatalf("expected no blocks, got %q", blocks)
	}
}

func TestRenderBlocks_WrapsToWidth(t *testing.T) {
	src := strings.Repeat("word ", 40)
	blocks := RenderBlocks(src, theme.Default, 20)
	for _, line := range strings.Split(ansi.Strip(blocks[0]), "\n") {
		if ansi.StringWidth(line) > 20 {
			t.Fatalf("line exceeds width: %q", line)
		}
	}
}

func TestRenderBlocks_InlineAndNestedBlocks(t *testing.T) {
	src := "> quoted `code` and [link](https://example.com)\n\n1. one\n2. two\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n---\n"
	blocks := RenderBlocks(src, theme.Default, 60)
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d: %q", len(blocks), blocks)
	}
	if got := ansi.Strip(blocks[0]); got != "│ quoted code and link (https://example.com)" {
		t.Fatalf("unexpected quote %q", got)
	}
	if got := ansi.Strip(blocks[1]); got != "1. one\n2. two" {
		t.Fatalf("unexpected ordered list %q", got)
	}
	if got := ansi.Strip(blocks[2]); got != "a │ b\n──┼──\n1 │ 2" {
		t.Fatalf("unexpected table %q", got)
	}
	if got := ansi.Strip(blocks[3]); got != strings.Repeat("─", 60) {
		t.Fatalf("unexpected rule %q", got)
	}
}

func TestPreview_HidesBlocksUntilReadMore(t *testing.T) {
	m := New("Accessibility", fiveParagraphs)
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Third paragraph.") || strings.Contains(view, "Fourth paragraph.") {
		t.Fatalf("expected three preview blocks:\n%s", view)
	}
	if !strings.Contains(view, "Read More") || !m.HasMore() {
		t.Fatalf("expected read more button:\n%s", view)
	}
	if !strings.Contains(view, "ACCESSIBILITY") {
		t.Fatalf("expected upper-case title:\n%s", view)
	}

	m.ReadMore()
	view = ansi.Strip(m.View())
	if !strings.Contains(view, "Fifth paragraph.") {
		t.Fatalf("expected full article:\n%s", view)
	}
	if strings.Contains(view, "Read More") || m.HasMore() {
		t.Fatalf("button should disappear once expanded:\n%s", view)
	}
}

func TestReadMore_KeyEmitsExpandedOnce(t *testing.T) {
	m := New("", fiveParagraphs)
	m.Focus()
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if _, ok := cmd().(Expanded); !ok {
		t.Fatalf("expected Expanded message")
	}
	if !m.Expanded() {
		t.Fatalf("article should be expanded")
	}
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		if _, ok := cmd().(Expanded); ok {
			t.Fatalf("expansion should only be reported once")
		}
	}
}

func TestReadMore_NotOfferedForShortArticles(t *testing.T) {
	m := New("", "One.\n\nTwo.", WithPreviewBlocks(3))
	if m.HasMore() || strings.Contains(ansi.Strip(m.View()), "Read More") {
		t.Fatalf("short article should not offer read more")
	}
	m.Focus()
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("enter should do nothing without hidden blocks")
	}
}

func TestExpanded_ScrollsInViewport(t *testing.T) {
	body := strings.Repeat("Paragraph.\n\n", 40)
	m := New("Long", body, WithExpanded())
	m.Focus()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	if got := strings.Count(m.View(), "\n") + 1; got > 12 {
		t.Fatalf("view should fit the window, got %d lines", got)
	}
	before := m.View()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.View() == before {
		t.Fatalf("expected view to scroll")
	}
}

func TestHeader_ShowsIcon(t *testing.T) {
	m := New("Title", "Body.", WithIcon(content.Text("★")))
	if !strings.Contains(ansi.Strip(m.View()), "★  TITLE") {
		t.Fatalf("expected icon before title:\n%s", ansi.Strip(m.View()))
	}
}
