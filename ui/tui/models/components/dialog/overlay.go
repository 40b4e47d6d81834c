// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package dialog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay centers fg on top of bg. fg is clipped to the dimensions of bg;
// escape sequences on both sides of the overlay are preserved.
func Overlay(bg, fg string) string {
	bgWidth, bgHeight := lipgloss.Size(bg)
	fg = lipgloss.NewStyle().MaxWidth(bgWidth).MaxHeight(bgHeight).Render(fg)
	fgWidth, fgHeight := lipgloss.Size(fg)

	offsetLeft := (bgWidth - fgWidth) / 2
	offsetTop := (bgHeight - fgHeight) / 2

	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")

	for i, fgLine := range fgLines {
		row := i + offsetTop
		if row < 0 || row >= len(bgLines) {
			continue
		}
		line := bgLines[row]
		left := ansi.Truncate(line, offsetLeft, "")
		// short background lines are padded so the overlay stays centered
		if w := ansi.StringWidth(left); w < offsetLeft {
			left += strings.Repeat(" ", offsetLeft-w)
		}
		right := ansi.TruncateLeft(line, offsetLeft+fgWidth, "")
		bgLines[row] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}

// Dim strips all styling from view and repaints it in a single muted colour.
func Dim(view string, color lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().Foreground(color).Render(ansi.Strip(view))
}
