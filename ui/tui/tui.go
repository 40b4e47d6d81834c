// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui holds the bubbletea components of tuikit and starts programs
// for them. Components live under models/, shared helpers under util/.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run runs m until it quits or ctx is cancelled and returns the final
// model.
func Run(ctx context.Context, m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	return tea.NewProgram(m, opts...).Run()
}
