// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package data

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/models/components/breadcrumbs"
)

// PathItems splits path into one breadcrumb per element. Every item's ID is
// the path up to and including it; all but the last link to a file:// URL.
// Absolute paths start with the root (or volume) item.
func PathItems(path string) []breadcrumbs.Item {
	if path == "" {
		return nil
	}
	clean := filepath.Clean(path)
	volume := filepath.VolumeName(clean)
	rest := strings.TrimPrefix(clean[len(volume):], string(filepath.Separator))

	var items []breadcrumbs.Item
	current := ""
	if filepath.IsAbs(clean) {
		current = volume + string(filepath.Separator)
		label := volume
		if label == "" {
			label = string(filepath.Separator)
		}
		items = append(items, pathItem(current, label))
	} else if volume != "" {
		current = volume
		items = append(items, pathItem(current, volume))
	}

	if rest != "" && rest != "." {
		for _, part := range strings.Split(rest, string(filepath.Separator)) {
			if current == "" {
				current = part
			} else {
				current = filepath.Join(current, part)
			}
			items = append(items, pathItem(current, part))
		}
	} else if len(items) == 0 {
		items = append(items, pathItem(".", "."))
	}

	last := &items[len(items)-1]
	last.Active = true
	last.Href = ""
	return items
}

func pathItem(id, label string) breadcrumbs.Item {
	item := breadcrumbs.Item{ID: id, Label: content.Text(label)}
	if abs, err := filepath.Abs(id); err == nil {
		item.Href = (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
	}
	return item
}
