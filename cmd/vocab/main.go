package main

import (
	"errors"
	"os"
	"slices"

	"github.com/fatih/color"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/root"
)

func main() {
	cmd := root.NewCmdRoot()
	if err := cmd.Execute(); err != nil {
		var exitErr *cmdutil.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		if slices.Contains(os.Args[1:], "--no-color") {
			color.NoColor = true
		}
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
