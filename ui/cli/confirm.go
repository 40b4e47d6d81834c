// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/models/components/dialog"
	"github.com/toeirei/tuikit/ui/tui/util"
)

// exitDismissed is the status of a confirm dialog closed without an action.
const exitDismissed = 255

// confirmModel shows a single dialog centred on screen and quits once it
// closes.
type confirmModel struct {
	dialog *dialog.Model
	size   util.Size
	result *dialog.Result
}

func (m *confirmModel) Init() tea.Cmd {
	cmd, _ := m.dialog.Focus()
	return tea.Batch(m.dialog.Init(), cmd)
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dialog.Result:
		m.result = &msg
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.result = &dialog.Result{}
			return m, tea.Quit
		}
	}
	m.size.Update(msg)
	return m, m.dialog.Update(msg)
}

func (m *confirmModel) View() string {
	if m.result != nil {
		return ""
	}
	if m.size.Width == 0 {
		return m.dialog.View()
	}
	return lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Center, lipgloss.Center, m.dialog.View())
}

func newConfirmCmd() *cobra.Command {
	var (
		title   string
		message string
		actions []string
		size    dialog.Size
	)
	cmd := &cobra.Command{
		Use:   "confirm --title T --message M [--action label]...",
		Short: "Ask a question in a modal dialog",
		Long: `Shows a dialog and prints the label of the chosen action. The exit
status is the index of the action (0 for the first) or 255 when the dialog
is dismissed. The dialog is drawn on stderr so the answer can be captured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen := cmd.ErrOrStderr()
			if !isTerminal(screen) {
				cmd.PrintErrln(fmt.Errorf("%s: %w", cmd.Name(), errNoTerminal))
				return &ExitError{Code: 1}
			}
			if len(actions) == 0 {
				actions = []string{i18n.T("dialog.ok"), i18n.T("dialog.cancel")}
			}
			list := make([]dialog.Action, len(actions))
			for i, label := range actions {
				list[i] = dialog.Action{ID: strconv.Itoa(i), Label: label}
			}

			c := appConfig.Dialog
			override(cmd.Flags(), "size", &c.Size, size)

			m := &confirmModel{dialog: dialog.New(title, content.Text(message),
				dialog.WithActions(list...),
				dialog.WithSize(c.Size),
				dialog.WithCloseButton(appConfig.Dialog.ShowCloseButton),
				dialog.WithTheme(appConfig.Theme.Theme()),
			)}
			if _, err := runProgram(cmd, m, tea.WithOutput(screen)); err != nil {
				cmd.PrintErrln(err)
				return &ExitError{Code: 1}
			}

			if m.result == nil || m.result.Dismissed() {
				logging.Debugf("confirm: dismissed")
				return &ExitError{Code: exitDismissed}
			}
			idx, _ := strconv.Atoi(m.result.ActionID)
			fmt.Fprintln(cmd.OutOrStdout(), actions[idx])
			if idx != 0 {
				return &ExitError{Code: idx}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "Dialog title")
	cmd.Flags().StringVar(&message, "message", "", "Dialog message")
	cmd.Flags().StringArrayVar(&actions, "action", nil, "Action label, repeat for more (default: OK and Cancel)")
	cmd.Flags().Var(newEnumValue(&size, dialog.SizeMedium, dialog.ParseSize), "size", "small, medium, large or fullscreen")
	return cmd
}
