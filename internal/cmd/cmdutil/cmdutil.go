// Package cmdutil holds the plumbing shared by vocab subcommands: global
// flags, config loading, logging and input selection.
package cmdutil

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/config"
	"github.com/open-cli-collective/vocab-cli/internal/input"
	"github.com/open-cli-collective/vocab-cli/internal/logging"
	"github.com/open-cli-collective/vocab-cli/internal/view"
)

// Globals mirrors the persistent flags registered on the root command.
type Globals struct {
	ConfigPath string
	Output     string
	OutputSet  bool // --output was given explicitly
	NoColor    bool
	Debug      bool
}

// AddGlobalFlags registers the persistent flags on the root command.
func AddGlobalFlags(cmd *cobra.Command) {
	output := view.FormatTable
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/vocab/config.yml)")
	cmd.PersistentFlags().VarP(&output, "output", "o", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("debug", false, "log pipeline details to stderr")
}

// GlobalsFrom reads the persistent flags of cmd.
func GlobalsFrom(cmd *cobra.Command) Globals {
	var g Globals
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	if f := cmd.Flags().Lookup("output"); f != nil {
		g.Output = f.Value.String()
		g.OutputSet = f.Changed
	}
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Debug, _ = cmd.Flags().GetBool("debug")
	return g
}

// Env is the resolved runtime environment of a command.
type Env struct {
	Config     *config.Config
	ConfigPath string
	Format     view.Format
	NoColor    bool
	Logger     zerolog.Logger
	Stdout     io.Writer
	Stderr     io.Writer
}

// Setup loads the config and builds the logger. An explicit --output beats
// the configured format, and --debug beats the configured log level.
func Setup(g Globals, stdout, stderr io.Writer) (*Env, error) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	path := config.ResolvePath(g.ConfigPath)
	cfg, err := config.LoadWithEnv(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'vocab init' to configure)", err)
	}

	format := view.Format(cfg.OutputFormat)
	if g.OutputSet || format == "" {
		format = view.Format(g.Output)
	}
	if err := view.ValidateFormat(string(format)); err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if g.Debug && level != zerolog.TraceLevel.String() {
		level = zerolog.DebugLevel.String()
	}

	logger := logging.New(logging.Config{
		Level:   level,
		Output:  stderr,
		Console: view.IsTerminal(stderr),
		NoColor: g.NoColor,
	})

	return &Env{
		Config:     cfg,
		ConfigPath: path,
		Format:     format,
		NoColor:    g.NoColor,
		Logger:     logger,
		Stdout:     stdout,
		Stderr:     stderr,
	}, nil
}

// Renderer returns a view.Renderer writing to the command's stdout.
func (e *Env) Renderer() *view.Renderer {
	r := view.NewRenderer(e.Format, e.NoColor)
	r.SetWriter(e.Stdout)
	return r
}

// Notice returns a renderer for status lines, which go to stderr so that
// stdout stays pipeable.
func (e *Env) Notice() *view.Renderer {
	r := view.NewRenderer(e.Format, e.NoColor)
	r.SetWriter(e.Stderr)
	return r
}

// InputFlags are the flags every text-reading command accepts.
type InputFlags struct {
	Text     string
	FromHTML bool
}

// Register adds the input flags to cmd.
func (f *InputFlags) Register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Text, "text", "t", "", "Text to process instead of a file or stdin")
	cmd.Flags().BoolVar(&f.FromHTML, "from-html", false, "Treat the input as HTML and convert it to markdown first")
}

// Options turns the flags and positional args into input options.
func (f *InputFlags) Options(cmd *cobra.Command, args []string) input.Options {
	opts := input.Options{
		Text:     f.Text,
		HasText:  cmd.Flags().Changed("text"),
		FromHTML: f.FromHTML,
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}
	return opts
}

// ReadInput reads the command input and logs where it came from.
func (e *Env) ReadInput(opts input.Options) (string, error) {
	text, err := input.Read(opts)
	if err != nil {
		return "", err
	}
	e.Logger.Debug().
		Str("source", Source(opts)).
		Int("bytes", len(text)).
		Bool("from_html", opts.FromHTML).
		Msg("input read")
	return text, nil
}

// Source describes which input source opts selects.
func Source(opts input.Options) string {
	switch {
	case opts.HasText || opts.Text != "":
		return "flag"
	case opts.Path != "" && opts.Path != "-":
		return opts.Path
	default:
		return "stdin"
	}
}

// ExitError asks main to exit with Code without printing anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
