// Package highlight provides the highlight command.
package highlight

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/input"
	"github.com/open-cli-collective/vocab-cli/internal/logging"
	"github.com/open-cli-collective/vocab-cli/internal/view"
	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

type highlightOptions struct {
	cmdutil.Globals
	input    input.Options
	vocab    []string
	vocabSet bool
	display  bool
	stdout   io.Writer
	stderr   io.Writer
}

// Result is the JSON form of a highlight run.
type Result struct {
	Text       string   `json:"text"`
	Annotated  string   `json:"annotated"`
	Vocabulary []string `json:"vocabulary"`
	Matches    int      `json:"matches"`
	HasMarkup  bool     `json:"has_markup"`
}

// NewCmdHighlight creates the highlight command.
func NewCmdHighlight() *cobra.Command {
	opts := &highlightOptions{}
	var in cmdutil.InputFlags

	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Emphasize vocabulary words in text",
		Long: `Wrap every whole-word, case-insensitive occurrence of the vocabulary in
***triple asterisks***.

Existing emphasis markup is removed first, so running highlight on its own
output gives the same result. Text is read from --text, a file argument, or
stdin. Vocabulary comes from --vocab or the configured list.`,
		Example: `  # Highlight two words
  vocab highlight --text "The river bank was steep." -v river,bank

  # Highlight a file with the configured vocabulary
  vocab highlight story.txt

  # Pipe text and show emphasis in the terminal
  echo "An adventure begins." | vocab highlight -v adventure --display`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Globals = cmdutil.GlobalsFrom(cmd)
			opts.input = in.Options(cmd, args)
			opts.vocabSet = cmd.Flags().Changed("vocab")
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runHighlight(opts)
		},
	}

	in.Register(cmd)
	cmd.Flags().StringSliceVarP(&opts.vocab, "vocab", "v", nil, "Vocabulary words (repeatable or comma separated); replaces the configured list")
	cmd.Flags().BoolVar(&opts.display, "display", false, "Show emphasis as terminal styling instead of markup")

	return cmd
}

func runHighlight(opts *highlightOptions) error {
	env, err := cmdutil.Setup(opts.Globals, opts.stdout, opts.stderr)
	if err != nil {
		return err
	}

	text, err := env.ReadInput(opts.input)
	if err != nil {
		return err
	}

	raw := env.Config.Vocabulary
	if opts.vocabSet {
		raw = opts.vocab
	}
	set := vocab.NormalizeVocabularies(raw)
	if set.Len() == 0 {
		env.Logger.Warn().Msg("vocabulary is empty, nothing will be highlighted")
	}
	if phrases := set.Phrases(); len(phrases) > 0 {
		env.Logger.Warn().Strs("entries", phrases).Msg("vocabulary entries with spaces or punctuation never match a single word")
	}

	h := vocab.New(vocab.WithObserver(logging.Observer(env.Logger)))
	annotated, matches := h.HighlightSet(text, set)

	r := env.Renderer()
	if r.Format() == view.FormatJSON {
		vocabulary := set.Sorted()
		if vocabulary == nil {
			vocabulary = []string{}
		}
		return r.RenderJSON(Result{
			Text:       text,
			Annotated:  annotated,
			Vocabulary: vocabulary,
			Matches:    matches,
			HasMarkup:  vocab.HasMarkup(annotated),
		})
	}

	if opts.display {
		plain := env.NoColor || !view.IsTerminal(env.Stdout)
		painter := view.NewPainter(env.Config.EmphasisColor, view.ResolveWidth(env.Config.Width), plain)
		r.RenderText(painter.Paint(vocab.RenderForDisplay(annotated)))
		return nil
	}

	r.RenderText(annotated)
	return nil
}
