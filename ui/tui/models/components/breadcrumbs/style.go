// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package breadcrumbs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/theme"
)

const (
	SeparatorSlash     = "/"
	SeparatorChevron   = ">"
	SeparatorDash      = "-"
	SeparatorBullet    = "•"
	SeparatorArrow     = "→"
	SeparatorBackslash = "\\"
)

const DefaultCollapseText = "..."

type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

// gap is the number of blank cells around separators.
func (s Size) gap() int {
	switch s {
	case SizeSmall:
		return 0
	case SizeLarge:
		return 2
	default:
		return 1
	}
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "medium"
	}
}

func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func ParseSize(s string) (Size, error) {
	switch strings.ToLower(s) {
	case "", "medium":
		return SizeMedium, nil
	case "small":
		return SizeSmall, nil
	case "large":
		return SizeLarge, nil
	}
	return SizeMedium, fmt.Errorf("unknown breadcrumb size %q", s)
}

type Background int

const (
	BackgroundNone Background = iota
	BackgroundLight
	BackgroundDark
)

func (b Background) String() string {
	switch b {
	case BackgroundLight:
		return "light"
	case BackgroundDark:
		return "dark"
	default:
		return "none"
	}
}

func (b Background) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func ParseBackground(s string) (Background, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return BackgroundNone, nil
	case "light":
		return BackgroundLight, nil
	case "dark":
		return BackgroundDark, nil
	}
	return BackgroundNone, fmt.Errorf("unknown breadcrumb background %q", s)
}

type Styles struct {
	Item      lipgloss.Style
	Active    lipgloss.Style
	Link      lipgloss.Style
	Icon      lipgloss.Style
	Separator lipgloss.Style
	Collapse  lipgloss.Style
	Cursor    lipgloss.Style

	ContainerLight lipgloss.Style
	ContainerDark  lipgloss.Style
}

func DefaultStyles(t theme.Theme) Styles {
	return Styles{
		Item:      lipgloss.NewStyle(),
		Active:    lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Link:      lipgloss.NewStyle(),
		Icon:      lipgloss.NewStyle().PaddingRight(1),
		Separator: lipgloss.NewStyle().Foreground(t.Faint),
		Collapse:  lipgloss.NewStyle().Foreground(t.Faint),
		Cursor:    lipgloss.NewStyle().Reverse(true),

		ContainerLight: lipgloss.NewStyle().
			Background(t.SurfaceLight).
			Padding(0, 1),
		ContainerDark: lipgloss.NewStyle().
			Background(t.SurfaceDark).
			Foreground(t.OnAccent).
			Padding(0, 1),
	}
}
