// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/ui/tui/models/views/browse"
)

func newBrowseCmd() *cobra.Command {
	var hidden bool
	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Browse a directory tree",
		Long: `Shows a directory as a tree with the path of the active entry as
breadcrumbs above it. tab switches between tree and trail, i shows details
and c copies the active path to the clipboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			info, err := os.Stat(dir)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s: %s", dir, i18n.T("cli.browse.not_dir"))
			}

			t := appConfig.Theme.Theme()
			m := browse.New(dir,
				browse.WithTheme(t),
				browse.WithHidden(hidden),
				browse.WithBreadcrumbs(breadcrumbOptions(appConfig.Breadcrumbs, t)...),
			)
			return runFramed(cmd, i18n.T("cli.browse.title"), m)
		},
	}
	cmd.Flags().BoolVarP(&hidden, "all", "a", false, "Show hidden entries")
	return cmd
}
