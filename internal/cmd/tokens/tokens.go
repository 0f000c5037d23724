// Package tokens provides the tokens command.
package tokens

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/input"
	"github.com/open-cli-collective/vocab-cli/internal/logging"
	"github.com/open-cli-collective/vocab-cli/internal/view"
	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

// maxTextWidth caps the TEXT column of the table view.
const maxTextWidth = 32

type tokensOptions struct {
	cmdutil.Globals
	input    input.Options
	vocab    []string
	vocabSet bool
	stdout   io.Writer
	stderr   io.Writer
}

// NewCmdTokens creates the tokens command.
func NewCmdTokens() *cobra.Command {
	opts := &tokensOptions{}
	var in cmdutil.InputFlags

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "List the word, space and punctuation runs of text",
		Long: `Split text into word, whitespace and punctuation tokens after removing
emphasis markers, and show which tokens match the vocabulary.`,
		Example: `  # Inspect tokenization
  vocab tokens --text "Don't stop!" -v stop

  # As JSON
  vocab tokens story.txt -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Globals = cmdutil.GlobalsFrom(cmd)
			opts.input = in.Options(cmd, args)
			opts.vocabSet = cmd.Flags().Changed("vocab")
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runTokens(opts)
		},
	}

	in.Register(cmd)
	cmd.Flags().StringSliceVarP(&opts.vocab, "vocab", "v", nil, "Vocabulary words to mark; replaces the configured list")

	return cmd
}

func runTokens(opts *tokensOptions) error {
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

	h := vocab.New(vocab.WithObserver(logging.Observer(env.Logger)))
	toks := h.Mark(text, vocab.NormalizeVocabularies(raw))

	r := env.Renderer()
	quote := r.Format() == view.FormatTable

	headers := []string{"INDEX", "KIND", "TEXT", "VOCABULARY", "MATCH"}
	rows := make([][]string, 0, len(toks))
	for i, tok := range toks {
		text := tok.Text
		if quote {
			text = view.Truncate(strconv.Quote(text), maxTextWidth)
		}
		match := tok.MatchedVocabulary
		if match == "" && quote {
			match = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			tok.Kind.String(),
			text,
			strconv.FormatBool(tok.IsVocabulary),
			match,
		})
	}

	r.RenderTable(headers, rows)
	return nil
}
