// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/tui"
	"github.com/toeirei/tuikit/ui/tui/models/views/root"
	"github.com/toeirei/tuikit/ui/tui/util"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("not a terminal")

// isTerminal reports whether w is an interactive terminal. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth is the width static output is laid out for. Zero means
// unlimited.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !isTerminal(w) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// runProgram runs m until it quits. Tests replace it with a scripted
// driver.
var runProgram = func(cmd *cobra.Command, m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	opts = append([]tea.ProgramOption{
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}, opts...)
	return tui.Run(cmd.Context(), m, opts...)
}

// interactive reports whether cmd should start a program, honouring
// --static where the command has it.
func interactive(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("static"); f != nil && f.Value.String() == "true" {
		return false
	}
	return isTerminal(cmd.OutOrStdout())
}

// runFramed shows body full screen inside the root frame. Log output that
// would go to the terminal is dropped while the program runs.
func runFramed(cmd *cobra.Command, title string, body util.Model) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return fmt.Errorf("%s: %w", cmd.Name(), errNoTerminal)
	}
	if logOutput == os.Stderr {
		logging.SetOutput(io.Discard)
		defer logging.SetOutput(os.Stderr)
	}
	m := root.New(title, body,
		root.WithSubtitle(i18n.T("cli.frame.subtitle", cmd.Name())),
		root.WithTheme(appConfig.Theme.Theme()),
	)
	_, err := runProgram(cmd, m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	return err
}

// picker ends the program on the first message pick accepts.
type picker struct {
	util.Model
	pick   func(tea.Msg) (string, bool)
	picked string
}

func (p *picker) Update(msg tea.Msg) tea.Cmd {
	if s, ok := p.pick(msg); ok {
		p.picked = s
		return tea.Quit
	}
	return p.Model.Update(msg)
}

func writeView(cmd *cobra.Command, view string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), view)
	return err
}
