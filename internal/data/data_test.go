// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package data

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/models/components/timeline"
)

func TestParseTimeline_BareList(t *testing.T) {
	src := `
- title: "2024"
  body: Founded
  active: true
- id: launch
  title: "2025"
  body: Launched
  color: "203"
  dot_variant: outlined
  disable_connector: true
`
	items, err := ParseTimeline([]byte(src))
	if err != nil {
		t.Fatalf("ParseTimeline: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "event-1" || !items[0].Active || items[0].Content != content.Text("Founded") {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[1].ID != "launch" || items[1].DotVariant != timeline.DotOutlined || !items[1].DisableConnector {
		t.Fatalf("unexpected second item %+v", items[1])
	}
	if items[1].Color != lipgloss.Color("203") {
		t.Fatalf("unexpected color %v", items[1].Color)
	}
	if items[0].Opposite != nil {
		t.Fatalf("missing opposite should stay empty")
	}
}

func TestParseTimeline_EventsMapping(t *testing.T) {
	items, err := ParseTimeline([]byte("events:\n  - title: a\n  - title: b\n    opposite: left\n"))
	if err != nil {
		t.Fatalf("ParseTimeline: %v", err)
	}
	if len(items) != 2 || items[1].Opposite != content.Text("left") {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestParseTimeline_Errors(t *testing.T) {
	if _, err := ParseTimeline([]byte("")); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := ParseTimeline([]byte("events: []\n")); !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("expected ErrEmptyDocument, got %v", err)
	}
	if _, err := ParseTimeline([]byte("- dot_variant: striped\n")); err == nil || !strings.Contains(err.Error(), "event 1") {
		t.Fatalf("expected an error naming the event, got %v", err)
	}
	if _, err := ParseTimeline([]byte("just text\n")); err == nil {
		t.Fatalf("expected an error for a scalar document")
	}
}

func TestParseSections(t *testing.T) {
	src := "exclusive: true\nsections:\n  - title: Usage\n    body: Run it.\n    open: true\n  - title: Notes\n"
	s, err := ParseSections([]byte(src))
	if err != nil {
		t.Fatalf("ParseSections: %v", err)
	}
	if s.Exclusive == nil || !*s.Exclusive {
		t.Fatalf("expected exclusive flag")
	}
	if len(s.Items) != 2 || !s.Items[0].Open || s.Items[1].Open {
		t.Fatalf("unexpected items %+v", s.Items)
	}
	if s.Items[1].Body != nil {
		t.Fatalf("empty body should stay empty")
	}

	s, err = ParseSections([]byte("- title: Only\n"))
	if err != nil {
		t.Fatalf("ParseSections: %v", err)
	}
	if s.Exclusive != nil || len(s.Items) != 1 {
		t.Fatalf("unexpected bare list result %+v", s)
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.yaml")
	if err := os.WriteFile(path, []byte("- title: one\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if items, err := ReadTimeline(path); err != nil || len(items) != 1 {
		t.Fatalf("ReadTimeline: %v %v", items, err)
	}

	empty := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := ReadSections(empty)
	if !errors.Is(err, ErrEmptyDocument) || !strings.Contains(err.Error(), empty) {
		t.Fatalf("expected wrapped ErrEmptyDocument, got %v", err)
	}

	if _, err := ReadTimeline(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestPathItems(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	items := PathItems("/home/user/docs/")
	var ids []string
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	if got := strings.Join(ids, ","); got != "/,/home,/home/user,/home/user/docs" {
		t.Fatalf("unexpected ids %q", got)
	}
	if items[0].Label != content.Text("/") || items[2].Label != content.Text("user") {
		t.Fatalf("unexpected labels %+v", items)
	}
	last := items[len(items)-1]
	if !last.Active || last.IsLink() {
		t.Fatalf("last item should be the active page")
	}
	if items[1].Href != "file:///home" {
		t.Fatalf("unexpected href %q", items[1].Href)
	}

	rel := PathItems("a/b")
	if len(rel) != 2 || rel[0].ID != "a" || rel[1].ID != filepath.Join("a", "b") {
		t.Fatalf("unexpected relative items %+v", rel)
	}
	if root := PathItems("/"); len(root) != 1 || !root[0].Active {
		t.Fatalf("unexpected root items %+v", root)
	}
	if PathItems("") != nil {
		t.Fatalf("empty path should produce no items")
	}
}
