// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the tuikit command using Cobra. Every subcommand
// shows one component: rendered once when stdout is not a terminal, as an
// interactive bubbletea program otherwise.
package cli
