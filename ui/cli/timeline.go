// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/data"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/ui/tui/models/components/timeline"
)

func newTimelineCmd() *cobra.Command {
	var (
		file        string
		orientation timeline.Orientation
		align       timeline.Align
		dot         timeline.DotVariant
	)
	cmd := &cobra.Command{
		Use:   "timeline -f events.yaml",
		Short: "Render a timeline of events",
		Long: `Renders the events of a YAML document along a vertical or horizontal
line. The document is a list of events or a mapping with an "events" key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New(i18n.T("cli.missing_file"))
			}
			items, err := data.ReadTimeline(file)
			if err != nil {
				return err
			}

			c := appConfig.Timeline
			flags := cmd.Flags()
			override(flags, "orientation", &c.Orientation, orientation)
			override(flags, "align", &c.Align, align)
			override(flags, "dot-variant", &c.DotVariant, dot)
			if flags.Changed("reverse") {
				c.Reverse, _ = flags.GetBool("reverse")
			}

			m := timeline.New(items,
				timeline.WithTheme(appConfig.Theme.Theme()),
				timeline.WithOrientation(c.Orientation),
				timeline.WithAlign(c.Align),
				timeline.WithDotVariant(c.DotVariant),
				timeline.WithReverse(c.Reverse),
				timeline.WithAnimate(c.Animate),
			)
			m.Update(tea.WindowSizeMsg{Width: terminalWidth(cmd.OutOrStdout())})
			return writeView(cmd, m.View())
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML document with the events")
	cmd.Flags().Var(newEnumValue(&orientation, timeline.Vertical, timeline.ParseOrientation), "orientation", "vertical or horizontal")
	cmd.Flags().Var(newEnumValue(&align, timeline.AlignLeft, timeline.ParseAlign), "align", "left, right or alternate")
	cmd.Flags().Var(newEnumValue(&dot, timeline.DotFilled, timeline.ParseDotVariant), "dot-variant", "filled or outlined")
	cmd.Flags().Bool("reverse", false, "Show the newest event first")
	return cmd
}
