// Package check provides the check command.
package check

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/input"
	"github.com/open-cli-collective/vocab-cli/internal/view"
	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

type checkOptions struct {
	cmdutil.Globals
	input  input.Options
	quiet  bool
	stdout io.Writer
	stderr io.Writer
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}
	var in cmdutil.InputFlags

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report whether text contains emphasis markup",
		Long: `Report whether the text contains at least one ***emphasis*** or
**emphasis** span.

With --quiet nothing is printed and the exit status is 1 when no markup is
found, which is handy in scripts.`,
		Example: `  # Print true or false
  vocab check --text "a ***word***"

  # Use in a script
  if vocab check -q story.txt; then echo "annotated"; fi`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Globals = cmdutil.GlobalsFrom(cmd)
			opts.input = in.Options(cmd, args)
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runCheck(opts)
		},
	}

	in.Register(cmd)
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Print nothing; exit 1 when no markup is found")

	return cmd
}

func runCheck(opts *checkOptions) error {
	env, err := cmdutil.Setup(opts.Globals, opts.stdout, opts.stderr)
	if err != nil {
		return err
	}

	text, err := env.ReadInput(opts.input)
	if err != nil {
		return err
	}

	found := vocab.HasMarkup(text)
	env.Logger.Debug().Bool("has_markup", found).Msg("markup checked")

	if opts.quiet {
		if !found {
			return &cmdutil.ExitError{Code: 1}
		}
		return nil
	}

	r := env.Renderer()
	if r.Format() == view.FormatJSON {
		return r.RenderJSON(map[string]bool{"has_markup": found})
	}
	r.RenderText(strconv.FormatBool(found))
	return nil
}
