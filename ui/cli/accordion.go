// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/data"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/tui/models/components/accordion"
)

func newAccordionCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "accordion -f sections.yaml",
		Short: "Show collapsible sections",
		Long: `Shows the sections of a YAML document as collapsible panels. Sections
marked open start expanded. Without a terminal the panels are printed in
their initial state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New(i18n.T("cli.missing_file"))
			}
			doc, err := data.ReadSections(file)
			if err != nil {
				return err
			}

			m := accordion.New(doc.Items...)
			m.Styles = accordion.DefaultStyles(appConfig.Theme.Theme())
			// flag, then document, then config
			m.Exclusive = appConfig.Accordion.Exclusive
			if doc.Exclusive != nil {
				m.Exclusive = *doc.Exclusive
			}
			if cmd.Flags().Changed("exclusive") {
				m.Exclusive, _ = cmd.Flags().GetBool("exclusive")
			}
			logging.Debugf("accordion: %d sections, exclusive %t", len(doc.Items), m.Exclusive)

			if !interactive(cmd) {
				return writeView(cmd, m.View())
			}
			return runFramed(cmd, filepath.Base(file), m)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML document with the sections")
	cmd.Flags().Bool("exclusive", false, "Keep at most one section open")
	cmd.Flags().Bool("static", false, "Print the sections instead of starting the interactive view")
	return cmd
}
