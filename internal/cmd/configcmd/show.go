package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/config"
	"github.com/open-cli-collective/vocab-cli/internal/view"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current vocab configuration and where each value comes from.`,
		Example: `  # Show current config
  vocab config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmdutil.GlobalsFrom(cmd), cmd.OutOrStdout())
		},
	}

	return cmd
}

// field is one row of config show output.
type field struct {
	label     string
	value     string
	fileValue string
	envVar    string
}

func runShow(g cmdutil.Globals, w io.Writer) error {
	if g.NoColor {
		color.NoColor = true
	}

	configPath := config.ResolvePath(g.ConfigPath)

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	if view.Format(g.Output) == view.FormatJSON {
		r := view.NewRenderer(view.FormatJSON, g.NoColor)
		r.SetWriter(w)
		return r.RenderJSON(cfg)
	}

	fields := []field{
		{"Vocabulary", strings.Join(cfg.Vocabulary, ", "), strings.Join(fileCfg.Vocabulary, ", "), config.EnvVocabulary},
		{"Output", cfg.OutputFormat, fileCfg.OutputFormat, config.EnvOutputFormat},
		{"Color", cfg.EmphasisColor, fileCfg.EmphasisColor, config.EnvEmphasisColor},
		{"Width", formatWidth(cfg.Width), formatWidth(fileCfg.Width), config.EnvWidth},
		{"Log level", cfg.LogLevel, fileCfg.LogLevel, config.EnvLogLevel},
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	for _, f := range fields {
		_, _ = bold.Fprintf(w, "%-12s", f.label+":")
		if f.value == "" {
			_, _ = dim.Fprintln(w, "-")
			continue
		}

		_, _ = fmt.Fprint(w, f.value)
		_, _ = dim.Fprintf(w, "  (source: %s)\n", source(f, fileErr == nil))
	}

	_, _ = fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}

func source(f field, haveFile bool) string {
	if os.Getenv(f.envVar) != "" {
		return f.envVar
	}
	if haveFile && f.fileValue == f.value {
		return "config"
	}
	return "-"
}

func formatWidth(width int) string {
	if width == 0 {
		return ""
	}
	return strconv.Itoa(width)
}
