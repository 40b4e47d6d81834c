// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models in a row or a column and distributes
// the available space between them.
package stack

import (
	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/util"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

// MsgFilter may rewrite or drop (return nil) a message before it reaches a
// child.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items   []Item
	size    util.Size
	focused Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

type NewOpt = func(s *Model)

func New(opts ...NewOpt) *Model {
	s := Model{
		Orientation: Horizontal,
		Align:       lipgloss.Top,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.focused = util.Clamp(FocusAll(), s.focused, Focus(len(s.items)-1))
	return &s
}

func WithOrientation(o Orientation) NewOpt {
	return func(s *Model) { s.Orientation = o }
}

func WithAlign(align lipgloss.Position) NewOpt {
	return func(s *Model) { s.Align = align }
}

func WithGap(gap int) NewOpt {
	return func(s *Model) { s.Gap = gap }
}

func WithItem(model *util.Model, sizeConfig SizeConfig, msgFilters ...MsgFilter) NewOpt {
	return func(s *Model) {
		s.items = append(s.items, Item{
			Model:      model,
			SizeConfig: sizeConfig,
			MsgFilters: msgFilters,
		})
	}
}

func WithMsgFilter(f MsgFilter) NewOpt {
	return func(s *Model) { s.MsgFilters = append(s.MsgFilters, f) }
}

// WithFocus selects the child receiving focus. Options are applied in order,
// so it must follow the WithItem it refers to.
func WithFocus(f Focus) NewOpt {
	return func(s *Model) { s.focused = f }
}

func filter(model util.Model, msg tea.Msg, filters []MsgFilter) tea.Msg {
	for _, f := range filters {
		if msg == nil {
			return nil
		}
		msg = f(model, msg)
	}
	return msg
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slices.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	}

	var cmds []tea.Cmd
	if mouse, ok := msg.(tea.MouseMsg); ok {
		if i, local, hit := s.itemAt(mouse); hit {
			item := s.items[i]
			m := filter(*item.Model, local, item.MsgFilters)
			m = filter(*item.Model, m, s.MsgFilters)
			if m != nil {
				cmds = append(cmds, (*item.Model).Update(m))
			}
		}
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
		return tea.Batch(cmds...)
	}

	for _, item := range s.items {
		m := filter(*item.Model, msg, item.MsgFilters)
		m = filter(*item.Model, m, s.MsgFilters)
		if m == nil {
			continue
		}
		cmds = append(cmds, (*item.Model).Update(m))
	}

	// children may have changed their preferred size
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)
	return tea.Batch(cmds...)
}

// itemAt finds the child under the pointer and returns the event with its
// coordinates relative to that child. Gaps and unused space hit nothing.
func (s Model) itemAt(msg tea.MouseMsg) (int, tea.MouseMsg, bool) {
	pos := &msg.X
	if s.Orientation == Vertical {
		pos = &msg.Y
	}
	if msg.X < 0 || msg.Y < 0 || msg.X >= s.size.Width || msg.Y >= s.size.Height {
		return 0, msg, false
	}

	offset := 0
	for i, item := range s.items {
		if item.size <= 0 {
			continue
		}
		// mirrors the margins applied in View
		start := offset + s.Gap*min(i, 1)
		end := start + item.size
		if *pos >= start && *pos < end {
			*pos -= start
			return i, msg, true
		}
		offset = end
	}
	return 0, msg, false
}

// Relayout recalculates child sizes, for example after a child changed its
// preferred size outside of Update.
func (s *Model) Relayout() tea.Cmd {
	s.calculateItemSizes()
	return tea.Batch(s.updateResizedItems(false)...)
}

func (s Model) View() string {
	join := lipgloss.JoinHorizontal
	style := func(size, margin int) lipgloss.Style {
		return lipgloss.NewStyle().
			Width(size).
			Height(s.size.Height).
			MaxWidth(size + margin).
			MaxHeight(s.size.Height).
			MarginLeft(margin)
	}
	if s.Orientation == Vertical {
		join = lipgloss.JoinVertical
		style = func(size, margin int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	}

	var views []string
	for i, item := range s.items {
		if item.size <= 0 {
			continue
		}
		// no gap before the first item
		margin := s.Gap * min(i, 1)
		views = append(views, style(item.size, margin).Render((*item.Model).View()))
	}
	return join(s.Align, views...)
}

// Focus selects a single child with FocusIndex or all children with
// FocusAll.
type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if len(s.items) == 0 {
		return nil, nil
	}
	if s.focused == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))
		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}
		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focused].Model).Focus()
}

func (s *Model) Blur() {
	if len(s.items) == 0 {
		return
	}
	if s.focused == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
		return
	}
	(*s.items[s.focused].Model).Blur()
}

// SetFocus blurs the current selection and focuses f.
func (s *Model) SetFocus(f Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focused = util.Clamp(FocusAll(), f, Focus(len(s.items)-1))
	return s.Focus()
}

// Sizes returns the space assigned to every child along the stack axis.
func (s Model) Sizes() []int {
	return slices.Map(s.items, func(item Item) int { return item.size })
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
