// Copyright (c) 2026 Tuikit Team
// Tuikit - terminal UI building blocks
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for tuikit.
//
// Usage:
//
//	go run . [command] [flags]
//	./tuikit [command] [flags]
//
// See --help for the available components.
package main

import (
	"errors"
	"os"

	"github.com/toeirei/tuikit/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Execute has already reported the error
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}
		os.Exit(1)
	}
}
