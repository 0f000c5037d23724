// Package init provides the init command for vocab.
package init

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/config"
	"github.com/open-cli-collective/vocab-cli/internal/view"
	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

// answers holds the raw form values before they become a Config.
type answers struct {
	overwrite  bool
	vocabulary string
	color      string
	output     string
	width      string
}

// prompter asks the user for answers. exists reports whether a config file is
// already present and needs an overwrite confirmation.
type prompter func(a *answers, path string, exists bool) error

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var vocabulary []string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize vocab configuration",
		Long: `Initialize vocab with a default vocabulary and display preferences.

This command will guide you through choosing the words to highlight, the
emphasis color, the output format and the wrap width. The configuration will
be saved to ~/.config/vocab/config.yml.`,
		Example: `  # Interactive setup
  vocab init

  # Pre-populate the vocabulary
  vocab init --vocab river,bank,current`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			return runInit(config.ResolvePath(g.ConfigPath), vocabulary, cmd.OutOrStdout(), runForm)
		},
	}

	cmd.Flags().StringSliceVarP(&vocabulary, "vocab", "v", nil, "Initial vocabulary words (comma separated)")

	return cmd
}

func runForm(a *answers, path string, exists bool) error {
	if exists {
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", path)).
			Value(&a.overwrite).
			Run()
		if err != nil {
			return err
		}
		if !a.overwrite {
			return nil
		}
	}

	colors := make([]huh.Option[string], 0, len(view.ColorNames()))
	for _, name := range view.ColorNames() {
		colors = append(colors, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Vocabulary").
				Description("Words to highlight, separated by commas or new lines").
				Placeholder("river, bank, current").
				Value(&a.vocabulary),

			huh.NewSelect[string]().
				Title("Emphasis color").
				Description("Color used for highlighted words in the terminal").
				Options(colors...).
				Value(&a.color),

			huh.NewSelect[string]().
				Title("Output format").
				Options(huh.NewOptions(view.ValidFormats()...)...).
				Value(&a.output),

			huh.NewInput().
				Title("Wrap width").
				Description("Columns for display output; 0 uses the terminal width").
				Value(&a.width).
				Validate(func(s string) error {
					_, err := parseWidth(s)
					return err
				}),
		),
	)

	return form.Run()
}

func runInit(configPath string, prefill []string, w io.Writer, prompt prompter) error {
	_, statErr := os.Stat(configPath)
	exists := statErr == nil

	a := &answers{
		overwrite:  !exists,
		vocabulary: strings.Join(prefill, ", "),
		color:      view.DefaultEmphasisColor,
		output:     string(view.FormatTable),
		width:      "0",
	}
	if exists {
		if cfg, err := config.Load(configPath); err == nil {
			a.fill(cfg, len(prefill) == 0)
		}
	}

	if err := prompt(a, configPath, exists); err != nil {
		return err
	}
	if !a.overwrite {
		_, _ = fmt.Fprintln(w, "Initialization cancelled.")
		return nil
	}

	cfg, err := a.config()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Save configuration
	if err := cfg.Save(configPath); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	_, _ = fmt.Fprintf(w, "%d vocabulary words stored.\n", vocab.NormalizeVocabularies(cfg.Vocabulary).Len())
	_, _ = fmt.Fprintln(w, "\nYou're all set! Try running:")
	_, _ = fmt.Fprintln(w, `  vocab highlight --text "Your paragraph here"`)
	_, _ = fmt.Fprintln(w, "  vocab config show")

	return nil
}

// fill seeds the answers from an existing config.
func (a *answers) fill(cfg *config.Config, withVocabulary bool) {
	if withVocabulary && len(cfg.Vocabulary) > 0 {
		a.vocabulary = strings.Join(cfg.Vocabulary, ", ")
	}
	if cfg.EmphasisColor != "" {
		a.color = cfg.EmphasisColor
	}
	if cfg.OutputFormat != "" {
		a.output = cfg.OutputFormat
	}
	if cfg.Width != 0 {
		a.width = strconv.Itoa(cfg.Width)
	}
}

// config converts the answers. Vocabulary keeps the user's spelling; matching
// normalizes it later.
func (a *answers) config() (*config.Config, error) {
	width, err := parseWidth(a.width)
	if err != nil {
		return nil, err
	}

	var words []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(a.vocabulary, "\n") {
		for _, word := range config.SplitList(line) {
			key := vocab.NormalizeVocabulary(word)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			words = append(words, word)
		}
	}

	cfg := &config.Config{
		Vocabulary:    words,
		EmphasisColor: a.color,
		Width:         width,
	}
	if a.output != string(view.FormatTable) {
		cfg.OutputFormat = a.output
	}
	if cfg.EmphasisColor == view.DefaultEmphasisColor {
		cfg.EmphasisColor = ""
	}
	return cfg, nil
}

func parseWidth(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	width, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("width must be a whole number")
	}
	if width < 0 {
		return 0, errors.New("width must not be negative")
	}
	return width, nil
}
