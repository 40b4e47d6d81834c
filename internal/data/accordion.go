// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package data

import (
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/models/components/accordion"
)

type Section struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Open  bool   `yaml:"open"`
}

// Sections is a decoded accordion document.
type Sections struct {
	// Exclusive is nil when the document does not decide.
	Exclusive *bool `yaml:"exclusive"`
	Items     []accordion.Item
}

// ParseSections decodes a list of sections, either bare or under
// "sections" next to an optional "exclusive" flag.
func ParseSections(src []byte) (Sections, error) {
	var doc struct {
		Exclusive *bool `yaml:"exclusive"`
	}
	list, err := decodeList[Section](src, "sections", &doc)
	if err != nil {
		return Sections{}, err
	}
	out := Sections{Exclusive: doc.Exclusive}
	for _, s := range list {
		out.Items = append(out.Items, accordion.Item{
			Title: s.Title,
			Body:  content.Of(s.Body),
			Open:  s.Open,
		})
	}
	return out, nil
}

func ReadSections(path string) (Sections, error) {
	var s Sections
	err := readFile(path, func(src []byte) (err error) {
		s, err = ParseSections(src)
		return err
	})
	return s, err
}
