// Package strip provides the strip command.
package strip

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/input"
	"github.com/open-cli-collective/vocab-cli/internal/view"
	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

// CopyFunc writes text to the system clipboard.
type CopyFunc func(text string) error

type stripOptions struct {
	cmdutil.Globals
	input  input.Options
	copy   bool
	stdout io.Writer
	stderr io.Writer
}

// NewCmdStrip creates the strip command.
func NewCmdStrip() *cobra.Command {
	opts := &stripOptions{}
	var in cmdutil.InputFlags

	cmd := &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove emphasis markup from text",
		Long: `Remove ***emphasis*** and **emphasis** markers, keeping the words inside.

Asterisks that are not part of a complete span are left alone.`,
		Example: `  # Strip a file
  vocab strip story.txt

  # Strip and copy to the clipboard
  vocab strip --text "a ***bold*** move" --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Globals = cmdutil.GlobalsFrom(cmd)
			opts.input = in.Options(cmd, args)
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runStrip(opts, clipboard.WriteAll)
		},
	}

	in.Register(cmd)
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the stripped text to the clipboard")

	return cmd
}

func runStrip(opts *stripOptions, copyText CopyFunc) error {
	env, err := cmdutil.Setup(opts.Globals, opts.stdout, opts.stderr)
	if err != nil {
		return err
	}

	text, err := env.ReadInput(opts.input)
	if err != nil {
		return err
	}

	stripped := vocab.StripMarkup(text)

	r := env.Renderer()
	if r.Format() == view.FormatJSON {
		if err := r.RenderJSON(map[string]string{"text": stripped}); err != nil {
			return err
		}
	} else {
		r.RenderText(stripped)
	}

	if !opts.copy {
		return nil
	}
	if err := copyText(stripped); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	env.Notice().Success("Copied to clipboard")
	return nil
}
