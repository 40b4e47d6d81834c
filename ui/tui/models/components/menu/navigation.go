// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import tea "github.com/charmbracelet/bubbletea"

// siblings returns the list the cursor currently moves in.
func (m *Model) siblings() []Item {
	items := m.Items
	for _, idx := range m.Active[:len(m.Active)-1] {
		items = items[idx].Children
	}
	return items
}

// activeItem returns a pointer into the tree so lazy loads stick.
func (m *Model) activeItem() *Item {
	items := m.Items
	var item *Item
	for _, idx := range m.Active {
		item = &items[idx]
		items = item.Children
	}
	return item
}

// Path returns the items from the top level down to the cursor.
func (m Model) Path() []Item {
	var path []Item
	items := m.Items
	for _, idx := range m.Active {
		if idx >= len(items) {
			break
		}
		path = append(path, items[idx])
		items = items[idx].Children
	}
	return path
}

func (m *Model) moved() tea.Cmd {
	path := m.Path()
	return func() tea.Msg { return Moved{Path: path} }
}

func (m *Model) up() tea.Cmd {
	cursor := &m.Active[len(m.Active)-1]
	if *cursor == 0 {
		return nil
	}
	*cursor--
	return m.moved()
}

func (m *Model) down() tea.Cmd {
	cursor := &m.Active[len(m.Active)-1]
	if *cursor >= len(m.siblings())-1 {
		return nil
	}
	*cursor++
	return m.moved()
}

func (m *Model) left() tea.Cmd {
	if len(m.Active) <= 1 {
		return nil
	}
	m.Active = m.Active[:len(m.Active)-1]
	return m.moved()
}

func (m *Model) right() tea.Cmd {
	item := m.activeItem()
	if item.Load != nil && !item.loaded {
		children, err := item.Load()
		if err != nil {
			failed := *item
			return func() tea.Msg { return LoadFailed{Item: failed, Err: err} }
		}
		item.Children, item.loaded = children, true
		if len(children) == 0 {
			return nil
		}
	}
	if len(item.Children) > 0 {
		m.Active = append(m.Active, 0)
		return m.moved()
	}
	if item.loaded {
		// an opened branch without children
		return nil
	}
	if item.Cmd != nil {
		return item.Cmd
	}
	selected := *item
	return func() tea.Msg { return ItemSelected{Item: selected} }
}
