// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap []key.Binding

func (k testKeyMap) ShortHelp() []key.Binding  { return k }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestClampAndWrap(t *testing.T) {
	if got := Clamp(0, 5, 3); got != 3 {
		t.Fatalf("clamp high: got %d", got)
	}
	if got := Clamp(0, -2, 3); got != 0 {
		t.Fatalf("clamp low: got %d", got)
	}
	if got := Wrap(0, -1, 3); got != 2 {
		t.Fatalf("wrap backwards: got %d", got)
	}
	if got := Wrap(2, 1, 3); got != 0 {
		t.Fatalf("wrap forwards: got %d", got)
	}
	if got := Wrap(0, 1, 0); got != 0 {
		t.Fatalf("wrap on empty: got %d", got)
	}
}

func TestMergeKeyMaps_SkipsNil(t *testing.T) {
	a := testKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := testKeyMap{key.NewBinding(key.WithKeys("b")), key.NewBinding(key.WithKeys("c"))}

	merged := MergeKeyMaps(a, nil, b)
	if got := len(merged.ShortHelp()); got != 3 {
		t.Fatalf("expected 3 short bindings, got %d", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("expected 2 help groups, got %d", got)
	}
}

func TestSizeUpdate(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("key message must not count as resize")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("expected resize to be recognised")
	}
	if s.ToMsg().Width != 80 || s.Height != 24 {
		t.Fatalf("unexpected size %+v", s)
	}
}
