// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
package breadcrumbs

import (
	"errors"
	"fmt"
)

// Config controls when and how a trail collapses.
type Config struct {
	// MaxItems is the largest trail shown in full. Zero disables collapsing.
	MaxItems int
	// ItemsBeforeCollapse is the number of leading items kept when collapsed.
	ItemsBeforeCollapse int
	// ItemsAfterCollapse is the number of trailing items kept when collapsed.
	ItemsAfterCollapse int
}

// DefaultConfig keeps one item on each side of the placeholder and never
// collapses.
func DefaultConfig() Config {
	return Config{
		ItemsBeforeCollapse: 1,
		ItemsAfterCollapse:  1,
	}
}

// ErrNegativeCount is wrapped by Validate for counts below zero.
var ErrNegativeCount = errors.New("breadcrumbs: negative count")

// Validate rejects negative counts.
func (c Config) Validate() error {
	switch {
	case c.MaxItems < 0:
		return fmt.Errorf("%w: max items %d", ErrNegativeCount, c.MaxItems)
	case c.ItemsBeforeCollapse < 0:
		return fmt.Errorf("%w: items before collapse %d", ErrNegativeCount, c.ItemsBeforeCollapse)
	case c.ItemsAfterCollapse < 0:
		return fmt.Errorf("%w: items after collapse %d", ErrNegativeCount, c.ItemsAfterCollapse)
	}
	return nil
}

// NeedsCollapse reports whether a trail of n items is collapsed.
func (c Config) NeedsCollapse(n int, expanded bool) bool {
	return c.MaxItems > 0 && n > c.MaxItems && !expanded
}

type NodeKind int

const (
	NodeItem NodeKind = iota
	NodeSeparator
	NodeCollapse
)

func (k NodeKind) String() string {
	switch k {
	case NodeItem:
		return "item"
	case NodeSeparator:
		return "separator"
	case NodeCollapse:
		return "collapse"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is one unit of a rendered trail. Item and IsLast are only set for
// NodeItem.
type Node struct {
	Kind   NodeKind
	Item   Item
	IsLast bool
}

// Nodes lays out a trail. When collapsed it keeps the first and the last
// configured items, in that order and without removing duplicates when the
// two ranges overlap, and puts the collapse placeholder after the leading
// range. The placeholder is only emitted when both ranges are non-empty.
func Nodes(items []Item, cfg Config, expanded bool) []Node {
	collapse := cfg.NeedsCollapse(len(items), expanded)

	visible := items
	if collapse {
		before := items[:min(max(cfg.ItemsBeforeCollapse, 0), len(items))]
		after := items[len(items)-min(max(cfg.ItemsAfterCollapse, 0), len(items)):]
		visible = make([]Item, 0, len(before)+len(after))
		visible = append(visible, before...)
		visible = append(visible, after...)
	}

	nodes := make([]Node, 0, 2*len(visible)+1)
	for i, item := range visible {
		isLast := i == len(visible)-1
		showCollapse := collapse &&
			i == cfg.ItemsBeforeCollapse-1 &&
			cfg.ItemsBeforeCollapse > 0 &&
			cfg.ItemsAfterCollapse > 0

		nodes = append(nodes, Node{Kind: NodeItem, Item: item, IsLast: isLast})
		switch {
		case showCollapse:
			nodes = append(nodes, Node{Kind: NodeSeparator}, Node{Kind: NodeCollapse})
		case !isLast:
			nodes = append(nodes, Node{Kind: NodeSeparator})
		}
	}
	return nodes
}
