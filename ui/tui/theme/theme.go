// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme holds the colour palette shared by all components. Colours
// are lipgloss ANSI 256 codes (or hex strings) so the palette degrades on
// limited terminals.
package theme

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	// Text colors.
	Text  lipgloss.TerminalColor
	Faint lipgloss.TerminalColor

	// Accent marks active/current elements (active breadcrumb, active
	// timeline item, focused button).
	Accent lipgloss.TerminalColor
	// OnAccent is the foreground used on top of Accent backgrounds.
	OnAccent lipgloss.TerminalColor

	// Surfaces.
	SurfaceLight lipgloss.TerminalColor
	SurfaceDark  lipgloss.TerminalColor
	Border       lipgloss.TerminalColor

	// Button is the background of unfocused buttons.
	Button lipgloss.TerminalColor
	// Highlight is used for call-to-action buttons (read more).
	Highlight lipgloss.TerminalColor
	// Dimmed replaces all colours of a view sitting behind a dialog.
	Dimmed lipgloss.TerminalColor
}

var Default = Theme{
	Text:         lipgloss.Color("252"),
	Faint:        lipgloss.Color("243"), // muted gray
	Accent:       lipgloss.Color("32"),  // blue
	OnAccent:     lipgloss.Color("231"),
	SurfaceLight: lipgloss.Color("254"),
	SurfaceDark:  lipgloss.Color("236"),
	Border:       lipgloss.Color("240"),
	Button:       lipgloss.Color("239"),
	Highlight:    lipgloss.Color("203"), // coral
	Dimmed: lipgloss.AdaptiveColor{
		Light: "#DDDADA",
		Dark:  "#3C3C3C",
	},
}

// Overrides carries optional colour strings, typically from the config
// file. Empty fields keep the base colour.
type Overrides struct {
	Text      string
	Faint     string
	Accent    string
	OnAccent  string
	Border    string
	Button    string
	Highlight string
}

// With returns a copy of t with every non-empty override applied.
func (t Theme) With(o Overrides) Theme {
	set := func(dst *lipgloss.TerminalColor, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Text, o.Text)
	set(&t.Faint, o.Faint)
	set(&t.Accent, o.Accent)
	set(&t.OnAccent, o.OnAccent)
	set(&t.Border, o.Border)
	set(&t.Button, o.Button)
	set(&t.Highlight, o.Highlight)
	return t
}
