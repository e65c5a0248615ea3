// Package main is the entry point for the dev-agents CLI.
package main

import (
	"os"

	"github.com/thoreinstein/devagents/cmd/dev-agents/commands"
	"github.com/thoreinstein/devagents/internal/errors"
	"github.com/thoreinstein/devagents/internal/ui"
)

func main() {
	if err := commands.Execute(); err != nil {
		var exitErr *errors.ExitError
		suggestion := ""
		if errors.As(err, &exitErr) {
			suggestion = exitErr.Suggestion
		}
		ui.New(os.Stderr).Error(err, suggestion)
		os.Exit(errors.ExitCode(err))
	}
}
