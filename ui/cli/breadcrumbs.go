// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/config"
	"github.com/toeirei/tuikit/internal/data"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/internal/logging"
	"github.com/toeirei/tuikit/ui/tui/content"
	"github.com/toeirei/tuikit/ui/tui/models/components/breadcrumbs"
	"github.com/toeirei/tuikit/ui/tui/theme"
)

// breadcrumbOptions turns the configured look into component options.
func breadcrumbOptions(c config.BreadcrumbsConfig, t theme.Theme) []breadcrumbs.NewOpt {
	opts := []breadcrumbs.NewOpt{
		breadcrumbs.WithTheme(t),
		breadcrumbs.WithConfig(c.Collapse()),
		breadcrumbs.WithSize(c.Size),
		breadcrumbs.WithBackground(c.Background),
		breadcrumbs.WithUnderline(c.Underline),
		breadcrumbs.WithWrap(c.Wrap),
		breadcrumbs.WithHyperlinks(c.Hyperlinks),
	}
	if c.Separator != "" {
		opts = append(opts, breadcrumbs.WithSeparator(c.Separator))
	}
	if c.CollapseText != "" {
		opts = append(opts, breadcrumbs.WithCollapseText(content.Text(c.CollapseText)))
	}
	return opts
}

// labelItems builds a trail from plain labels; the last one is the current
// page.
func labelItems(labels []string) []breadcrumbs.Item {
	items := make([]breadcrumbs.Item, len(labels))
	for i, label := range labels {
		items[i] = breadcrumbs.WithItem(strconv.Itoa(i+1), label)
	}
	if n := len(items); n > 0 {
		items[n-1].Active = true
	}
	return items
}

func newBreadcrumbsCmd() *cobra.Command {
	var (
		path        string
		interactive bool
		expanded    bool
		size        breadcrumbs.Size
		background  breadcrumbs.Background
	)
	cmd := &cobra.Command{
		Use:   "breadcrumbs [label...]",
		Short: "Render a breadcrumb trail",
		Long: `Renders a breadcrumb trail from labels or from a filesystem path.
Long trails collapse to the first and last items around a placeholder.
With --interactive the placeholder can be activated and selecting an item
prints its id.`,
		Example: `  tuikit breadcrumbs Home Library Data Item --max-items 3
  tuikit breadcrumbs --path "$PWD" --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := appConfig.Breadcrumbs
			flags := cmd.Flags()
			if flags.Changed("max-items") {
				c.MaxItems, _ = flags.GetInt("max-items")
			}
			if flags.Changed("before") {
				c.ItemsBeforeCollapse, _ = flags.GetInt("before")
			}
			if flags.Changed("after") {
				c.ItemsAfterCollapse, _ = flags.GetInt("after")
			}
			if flags.Changed("separator") {
				c.Separator, _ = flags.GetString("separator")
			}
			if flags.Changed("collapse-text") {
				c.CollapseText, _ = flags.GetString("collapse-text")
			}
			override(flags, "size", &c.Size, size)
			override(flags, "background", &c.Background, background)
			if err := c.Collapse().Validate(); err != nil {
				return err
			}

			var items []breadcrumbs.Item
			switch {
			case path != "" && len(args) > 0:
				return errors.New(i18n.T("cli.breadcrumbs.path_and_labels"))
			case path != "":
				items = data.PathItems(path)
			default:
				items = labelItems(args)
			}
			if len(items) == 0 {
				return errors.New(i18n.T("cli.breadcrumbs.empty"))
			}
			logging.Debugf("breadcrumbs: %d items, collapse %+v", len(items), c.Collapse())

			m := breadcrumbs.New(items, breadcrumbOptions(c, appConfig.Theme.Theme())...)
			if expanded {
				m.Expand()
			}

			if !interactive {
				m.Update(tea.WindowSizeMsg{Width: terminalWidth(cmd.OutOrStdout())})
				return writeView(cmd, m.View())
			}

			p := &picker{Model: m, pick: func(msg tea.Msg) (string, bool) {
				if sel, ok := msg.(breadcrumbs.ItemSelected); ok {
					return sel.Item.ID, true
				}
				return "", false
			}}
			if err := runFramed(cmd, i18n.T("cli.breadcrumbs.title"), p); err != nil {
				return err
			}
			if p.picked != "" {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), p.picked)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Split a filesystem path into the trail")
	cmd.Flags().Int("max-items", 0, "Collapse trails longer than this (0 never collapses)")
	cmd.Flags().Int("before", 1, "Items kept before the placeholder")
	cmd.Flags().Int("after", 1, "Items kept after the placeholder")
	cmd.Flags().String("separator", breadcrumbs.SeparatorSlash, "Separator between items")
	cmd.Flags().String("collapse-text", "", "Placeholder text for hidden items")
	cmd.Flags().Var(newEnumValue(&size, breadcrumbs.SizeMedium, breadcrumbs.ParseSize), "size", "small, medium or large spacing")
	cmd.Flags().Var(newEnumValue(&background, breadcrumbs.BackgroundNone, breadcrumbs.ParseBackground), "background", "none, light or dark")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Navigate the trail with the keyboard")
	cmd.Flags().BoolVar(&expanded, "expanded", false, "Start with the full trail")
	return cmd
}
