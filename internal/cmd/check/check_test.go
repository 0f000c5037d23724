package check

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/vocab-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/vocab-cli/internal/config"
	"github.com/open-cli-collective/vocab-cli/internal/input"
)

func newTestOptions(t *testing.T, text string) (*checkOptions, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvLogLevel, "")

	stdout := &bytes.Buffer{}
	return &checkOptions{
		Globals: cmdutil.Globals{ConfigPath: filepath.Join(t.TempDir(), "config.yml"), NoColor: true},
		input:   input.Options{Text: text, HasText: true},
		stdout:  stdout,
		stderr:  &bytes.Buffer{},
	}, stdout
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"canonical", "Hello ***world***!", "true"},
		{"legacy", "a **bold** move", "true"},
		{"none", "plain text", "false"},
		{"lone asterisks", "a * b ** c", "false"},
		{"empty span", "******", "true"},
		{"empty", "", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, stdout := newTestOptions(t, tt.in)
			require.NoError(t, runCheck(opts))
			assert.Equal(t, tt.want+"\n", stdout.String())
		})
	}
}

func TestRunCheck_JSON(t *testing.T) {
	opts, stdout := newTestOptions(t, "***x***")
	opts.Output = "json"

	require.NoError(t, runCheck(opts))
	assert.JSONEq(t, `{"has_markup": true}`, stdout.String())
}

func TestRunCheck_Quiet(t *testing.T) {
	opts, stdout := newTestOptions(t, "***x***")
	opts.quiet = true
	require.NoError(t, runCheck(opts))
	assert.Empty(t, stdout.String())

	opts, stdout = newTestOptions(t, "plain")
	opts.quiet = true
	err := runCheck(opts)

	var exitErr *cmdutil.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Empty(t, stdout.String())
}
