// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/tuikit/ui/tui/util"
)

// SizeConfig decides how much of the stack axis a child gets. Configs with a
// lower priority are served first.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remaining int, total int) int
}

type staticSize struct {
	size int
}

type variableSize struct {
	weight      int
	totalWeight int
}

// fitSize asks the child for its natural size.
type fitSize struct {
	priority int
	measure  func(model util.Model, total int) int
}

func StaticSize(size int) SizeConfig     { return &staticSize{size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{weight: weight} }

// FitSize gives the child what measure reports for the total stack size,
// before any variable sized sibling is served.
func FitSize(measure func(model util.Model, total int) int) SizeConfig {
	return &fitSize{priority: 10, measure: measure}
}

func (sc *staticSize) Priority() int   { return 0 }
func (sc *variableSize) Priority() int { return math.MaxInt }
func (sc *fitSize) Priority() int      { return sc.priority }

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.size
}

func (sc *variableSize) Calculate(_ util.Model, remaining int, _ int) int {
	if sc.totalWeight == 0 {
		return remaining
	}
	// remaining * (weight / totalWeight) without float precision loss
	return (remaining * sc.weight) / sc.totalWeight
}

func (sc *fitSize) Calculate(model util.Model, _ int, total int) int {
	return sc.measure(model, total)
}

func (s *Model) calculateItemSizes() {
	total := s.size.Width
	if s.Orientation == Vertical {
		total = s.size.Height
	}
	remaining := total - s.Gap*max(len(s.items)-1, 0)

	sorted := make([]*Item, len(s.items))
	totalWeight := 0
	for i := range s.items {
		sorted[i] = &s.items[i]
		if v, ok := s.items[i].SizeConfig.(*variableSize); ok {
			totalWeight += v.weight
		}
	}
	slices.SortStableFunc(sorted, func(a, b *Item) int {
		return a.SizeConfig.Priority() - b.SizeConfig.Priority()
	})

	for _, item := range sorted {
		v, variable := item.SizeConfig.(*variableSize)
		if variable {
			v.totalWeight = totalWeight
		}

		size := util.Clamp(0, item.SizeConfig.Calculate(*item.Model, remaining, total), max(remaining, 0))

		if variable {
			totalWeight -= v.weight
		}
		remaining -= size
		item.oldSize = item.size
		item.size = size
	}
}

func (s *Model) updateResizedItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range s.items {
		if !force && item.size == item.oldSize {
			continue
		}
		msg := tea.WindowSizeMsg{Width: item.size, Height: s.size.Height}
		if s.Orientation == Vertical {
			msg = tea.WindowSizeMsg{Width: s.size.Width, Height: item.size}
		}
		cmds = append(cmds, (*item.Model).Update(msg))
	}
	return cmds
}
