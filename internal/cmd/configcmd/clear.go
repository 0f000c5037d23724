package configcmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/config"
)

// ConfirmFunc asks the user whether to remove the file at path.
type ConfirmFunc func(path string) (bool, error)

type clearOptions struct {
	cmdutil.Globals
	force bool
}

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	opts := &clearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove stored configuration",
		Long:  `Delete the vocab configuration file. Environment variables will still be used if set.`,
		Example: `  # Clear config
  vocab config clear

  # Clear without confirmation
  vocab config clear --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Globals = cmdutil.GlobalsFrom(cmd)
			return runClear(opts, cmd.OutOrStdout(), confirmClear)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func confirmClear(path string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %s?", path)).
				Affirmative("Remove").
				Negative("Cancel").
				Value(&confirmed),
		),
	).Run()
	return confirmed, err
}

func runClear(opts *clearOptions, w io.Writer, confirm ConfirmFunc) error {
	if opts.NoColor {
		color.NoColor = true
	}

	configPath := config.ResolvePath(opts.ConfigPath)

	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		_, _ = green.Fprintf(w, "✓ No config file to remove\n")
		return noteEnv(w, dim)
	}

	if !opts.force {
		ok, err := confirm(configPath)
		if err != nil {
			return fmt.Errorf("confirmation cancelled: %w", err)
		}
		if !ok {
			_, _ = dim.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := os.Remove(configPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove config file: %w", err)
	}
	_, _ = green.Fprintf(w, "✓ Configuration cleared from %s\n", configPath)

	return noteEnv(w, dim)
}

func noteEnv(w io.Writer, dim *color.Color) error {
	envVars := []string{config.EnvVocabulary, config.EnvOutputFormat, config.EnvEmphasisColor,
		config.EnvWidth, config.EnvLogLevel}
	var activeVars []string
	for _, v := range envVars {
		if os.Getenv(v) != "" {
			activeVars = append(activeVars, v)
		}
	}

	if len(activeVars) > 0 {
		_, _ = dim.Fprintf(w, "\nNote: Environment variables will still be used: %v\n", activeVars)
	}
	return nil
}
