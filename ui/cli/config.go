// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/tuikit/internal/config"
	"github.com/toeirei/tuikit/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var system, force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: `Writes the default configuration to the user config file, the system
config file with --system, or the given path. An existing file is only
replaced with --force.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.GetConfigPath(system)
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(i18n.T("cli.config.exists", path))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			defaults := config.Default()
			if err := config.WriteConfigFileTo(&defaults, path); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config.written", path))
			return err
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file")
	initCmd.Flags().BoolVar(&force, "force", false, "Replace an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := yaml.Marshal(appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
