// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command: flags shared by every subcommand,
// configuration, logging and translations.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/tuikit/buildvars"
	"github.com/toeirei/tuikit/internal/config"
	"github.com/toeirei/tuikit/internal/i18n"
	"github.com/toeirei/tuikit/internal/logging"
)

const modulePath = "github.com/toeirei/tuikit"

var version = "dev"   // fallback when buildvars.Version is not set
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var verbose bool
var logFile string
var logOutput io.Writer = os.Stderr

var appConfig = config.Default()

// ExitError carries a process exit status out of a command. Execute does
// not print it.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	// No config file is fine: `tuikit config init` writes one on request.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := setupLogging(); err != nil {
		return err
	}
	i18n.Init(appConfig.Language)
	logging.Debugf("language %s, config %+v", i18n.GetLang(), appConfig)
	return nil
}

func setupLogging() error {
	level := appConfig.Log.Level
	if verbose {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		return err
	}

	path := appConfig.Log.File
	if logFile != "" {
		path = logFile
	}
	logOutput = os.Stderr
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		logOutput = f
	}
	logging.SetOutput(logOutput)
	return nil
}

// Execute runs the CLI entrypoint. The main package calls this and turns
// the error into an exit status.
func Execute() error {
	defer func() {
		if c, ok := logOutput.(io.Closer); ok && logOutput != os.Stderr {
			_ = c.Close()
		}
	}()
	cmd := NewRootCmd()
	err := cmd.Execute()
	var exit *ExitError
	if err != nil && !errors.As(err, &exit) {
		cmd.PrintErrln("Error:", err)
	}
	return err
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		// Make sure the user-provided file exists to avoid unwanted behavior.
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. Tests build a
// fresh one per case.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tuikit",
		Short: "Terminal UI building blocks",
		Long: `tuikit renders breadcrumbs, timelines, accordions, articles and
dialogs in the terminal. Output is static when stdout is not a terminal.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Language ("en", "de")`)

	cmd.AddCommand(
		newBreadcrumbsCmd(),
		newTimelineCmd(),
		newAccordionCmd(),
		newArticleCmd(),
		newConfirmCmd(),
		newBrowseCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}

func compositeVersion(v, c, d string) string {
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
			return nil
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our version as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// Last resort: a commit passed via ldflags still helps support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
