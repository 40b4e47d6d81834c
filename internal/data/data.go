// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package data turns YAML documents and filesystem paths into component
// items for the command-line front end.
package data

import (
	"errors"
	"fmt"
	"os"

	"github.com/toeirei/tuikit/internal/logging"
	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned for documents without any entries.
var ErrEmptyDocument = errors.New("document contains no entries")

// decodeList decodes either a bare YAML sequence or a mapping whose key
// field holds the sequence. The mapping form is decoded into doc as well.
func decodeList[T any](src []byte, key string, doc any) ([]T, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	node := root.Content[0]

	var list []T
	switch node.Kind {
	case yaml.SequenceNode:
		logging.Debugf("data: decoding bare %s list", key)
		if err := node.Decode(&list); err != nil {
			return nil, err
		}
	case yaml.MappingNode:
		if doc != nil {
			if err := node.Decode(doc); err != nil {
				return nil, err
			}
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == key {
				if err := node.Content[i+1].Decode(&list); err != nil {
					return nil, err
				}
			}
		}
	default:
		return nil, fmt.Errorf("expected a list or a mapping with %q, got %s", key, node.Tag)
	}
	if len(list) == 0 {
		return nil, ErrEmptyDocument
	}
	return list, nil
}

func readFile(path string, parse func([]byte) error) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	logging.Debugf("data: read %d bytes from %s", len(src), path)
	if err := parse(src); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
