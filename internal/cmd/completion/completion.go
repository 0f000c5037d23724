// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// generators maps a shell name to the cobra generator for it.
var generators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// Shells returns the supported shell names.
func Shells() []string {
	shells := make([]string, 0, len(generators))
	for name := range generators {
		shells = append(shells, name)
	}
	sort.Strings(shells)
	return shells
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for vocab.

These scripts enable tab-completion for commands and flags.

To load completions in your current shell session:

  source <(vocab completion bash)      # bash
  source <(vocab completion zsh)       # zsh
  vocab completion fish | source       # fish

To load completions for every new session, write the script to your
shell's completion directory, for example:

  vocab completion bash > /etc/bash_completion.d/vocab
  vocab completion zsh > "${fpath[1]}/_vocab"
  vocab completion fish > ~/.config/fish/completions/vocab.fish`,
		Example: `  # Load in current session
  source <(vocab completion bash)

  # PowerShell
  vocab completion powershell | Out-String | Invoke-Expression`,
		Args:                  cobra.ExactArgs(1),
		ValidArgs:             Shells(),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}

	return cmd
}

func runCompletion(root *cobra.Command, shell string, w io.Writer) error {
	gen, ok := generators[strings.ToLower(shell)]
	if !ok {
		return fmt.Errorf("unsupported shell %q (valid: %s)", shell, strings.Join(Shells(), ", "))
	}
	return gen(root, w)
}
