// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/ui/tui/models/components/article"
)

func readSource(cmd *cobra.Command, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return b, nil
}

func newArticleCmd() *cobra.Command {
	var (
		file  string
		title string
		full  bool
	)
	cmd := &cobra.Command{
		Use:   "article -f doc.md",
		Short: "Read a markdown article",
		Long: `Shows a markdown document. Only the first blocks are visible until
"Read More" is activated, after which the whole article scrolls. Use -f -
to read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New(i18n.T("cli.missing_file"))
			}
			body, err := readSource(cmd, file)
			if err != nil {
				return err
			}
			if title == "" && file != "-" {
				title = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			}

			c := appConfig.Article
			if cmd.Flags().Changed("preview-blocks") {
				c.PreviewBlocks, _ = cmd.Flags().GetInt("preview-blocks")
			}
			opts := []article.NewOpt{
				article.WithTheme(appConfig.Theme.Theme()),
				article.WithPreviewBlocks(c.PreviewBlocks),
				article.WithMaxWidth(c.MaxWidth),
				article.WithReadMoreLabel(i18n.T("article.read_more")),
			}
			if full {
				opts = append(opts, article.WithExpanded())
			}
			m := article.New(title, string(body), opts...)

			if !interactive(cmd) {
				m.Update(tea.WindowSizeMsg{Width: terminalWidth(cmd.OutOrStdout())})
				return writeView(cmd, m.View())
			}
			return runFramed(cmd, title, m)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Markdown file, - for stdin")
	cmd.Flags().StringVarP(&title, "title", "t", "", "Title shown above the article (default: file name)")
	cmd.Flags().Int("preview-blocks", article.DefaultPreviewBlocks, "Blocks visible before Read More")
	cmd.Flags().BoolVar(&full, "full", false, "Start with the whole article visible")
	cmd.Flags().Bool("static", false, "Print the article instead of starting the pager")
	return cmd
}
