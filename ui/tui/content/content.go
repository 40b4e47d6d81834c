// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package content defines the opaque payloads components accept for labels,
// icons and bodies. Components never interpret a payload; they only decide
// whether their own style applies to it.
package content

import "github.com/charmbracelet/lipgloss"

// Content is a renderable payload. The two implementations are Text, which
// the receiving component styles, and Rendered, which is passed through
// untouched.
type Content interface {
	// String returns the payload as it should appear when unstyled.
	String() string
	isContent()
}

// Text is plain text. Components apply their own style to it.
type Text string

func (t Text) String() string { return string(t) }
func (Text) isContent()       {}

// Rendered is an already composed view (for example the output of another
// component's View). It may contain ANSI sequences and is never restyled.
type Rendered string

func (r Rendered) String() string { return string(r) }
func (Rendered) isContent()       {}

// Render renders c with style if c is Text and returns it unchanged if it is
// Rendered. A nil payload renders to the empty string.
func Render(c Content, style lipgloss.Style) string {
	switch c := c.(type) {
	case nil:
		return ""
	case Text:
		return style.Render(string(c))
	default:
		return c.String()
	}
}

// IsEmpty reports whether c carries nothing to render.
func IsEmpty(c Content) bool {
	return c == nil || c.String() == ""
}

// Of is a shorthand for building plain text payloads, treating "" as absent.
func Of(s string) Content {
	if s == "" {
		return nil
	}
	return Text(s)
}
