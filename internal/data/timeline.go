// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package data

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/models/components/timeline"
)

// Event is one timeline entry as written in a YAML document.
type Event struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	Opposite string `yaml:"opposite"`
	// Color is a lipgloss colour string.
	Color            string `yaml:"color"`
	Active           bool   `yaml:"active"`
	Dot              string `yaml:"dot"`
	DotVariant       string `yaml:"dot_variant"`
	DisableConnector bool   `yaml:"disable_connector"`
}

// Item converts e into a timeline item. i is used as ID when e has none.
func (e Event) Item(i int) (timeline.Item, error) {
	variant, err := timeline.ParseDotVariant(e.DotVariant)
	if err != nil {
		return timeline.Item{}, err
	}
	item := timeline.Item{
		ID:               e.ID,
		Title:            content.Of(e.Title),
		Content:          content.Of(e.Body),
		Opposite:         content.Of(e.Opposite),
		Dot:              content.Of(e.Dot),
		Active:           e.Active,
		DisableConnector: e.DisableConnector,
		DotVariant:       variant,
	}
	if item.ID == "" {
		item.ID = fmt.Sprintf("event-%d", i+1)
	}
	if e.Color != "" {
		item.Color = lipgloss.Color(e.Color)
	}
	return item, nil
}

// ParseTimeline decodes a list of events, either bare or under "events".
func ParseTimeline(src []byte) ([]timeline.Item, error) {
	events, err := decodeList[Event](src, "events", nil)
	if err != nil {
		return nil, err
	}
	items := make([]timeline.Item, 0, len(events))
	for i, e := range events {
		item, err := e.Item(i)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func ReadTimeline(path string) ([]timeline.Item, error) {
	var items []timeline.Item
	err := readFile(path, func(src []byte) (err error) {
		items, err = ParseTimeline(src)
		return err
	})
	return items, err
}
