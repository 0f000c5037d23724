// Package display provides the display command.
package display

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/input"
	"github.com/open-cli-collective/vocab-cli/internal/view"
	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

type displayOptions struct {
	cmdutil.Globals
	input    input.Options
	width    int
	widthSet bool
	stdout   io.Writer
	stderr   io.Writer
}

// NewCmdDisplay creates the display command.
func NewCmdDisplay() *cobra.Command {
	opts := &displayOptions{}
	var in cmdutil.InputFlags

	cmd := &cobra.Command{
		Use:   "display [file]",
		Short: "Show annotated text with emphasis styling",
		Long: `Render annotated text for the terminal. Emphasized spans are shown in
bold with the configured emphasis color and the markers are removed.

When output is not a terminal, or with --no-color, emphasized spans keep
***markers*** so nothing is lost.`,
		Example: `  # Show a file
  vocab display story.txt

  # Pipe from highlight and wrap at 60 columns
  vocab highlight story.txt | vocab display --width 60

  # Segments as JSON
  vocab display --text "a ***word***" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Globals = cmdutil.GlobalsFrom(cmd)
			opts.input = in.Options(cmd, args)
			opts.widthSet = cmd.Flags().Changed("width")
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runDisplay(opts)
		},
	}

	in.Register(cmd)
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Wrap width; 0 uses the terminal width, negative disables wrapping")

	return cmd
}

func runDisplay(opts *displayOptions) error {
	env, err := cmdutil.Setup(opts.Globals, opts.stdout, opts.stderr)
	if err != nil {
		return err
	}

	text, err := env.ReadInput(opts.input)
	if err != nil {
		return err
	}

	r := env.Renderer()
	if r.Format() == view.FormatJSON {
		segments := vocab.Segments(text)
		if segments == nil {
			segments = []vocab.DisplaySegment{}
		}
		return r.RenderJSON(segments)
	}

	width := env.Config.Width
	if opts.widthSet {
		width = opts.width
	}
	width = view.ResolveWidth(width)
	plain := env.NoColor || !view.IsTerminal(env.Stdout)
	env.Logger.Debug().Int("width", width).Bool("plain", plain).Msg("painting segments")

	painter := view.NewPainter(env.Config.EmphasisColor, width, plain)
	r.RenderText(painter.Paint(vocab.RenderForDisplay(text)))
	return nil
}
