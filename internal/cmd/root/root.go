// Package root provides the root command for the vocab CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/check"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/completion"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/display"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/highlight"
	initcmd "github.com/open-cli-collective/vocab-cli/internal/cmd/init"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/strip"
	"github.com/open-cli-collective/vocab-cli/internal/cmd/tokens"
	"github.com/open-cli-collective/vocab-cli/internal/version"
)

// NewCmdRoot creates the root command for vocab.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Highlight vocabulary words in text",
		Long: `vocab highlights vocabulary words in paragraphs of text.

Every whole-word, case-insensitive occurrence of a vocabulary word is wrapped
in ***triple asterisks***. Annotated text can be stripped back to plain text,
checked for markup, or displayed with terminal styling.

Get started by running: vocab init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Resolved(),
	}

	// Global flags
	cmdutil.AddGlobalFlags(cmd)

	// Set version template
	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(highlight.NewCmdHighlight())
	cmd.AddCommand(strip.NewCmdStrip())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(display.NewCmdDisplay())
	cmd.AddCommand(tokens.NewCmdTokens())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
