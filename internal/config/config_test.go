package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		errMsg  string
	}{
		{
			name:   "empty config",
			config: Config{},
		},
		{
			name: "valid config",
			config: Config{
				Vocabulary:    []string{"adventure"},
				OutputFormat:  "json",
				EmphasisColor: "magenta",
				Width:         100,
				LogLevel:      "debug",
			},
		},
		{
			name:    "invalid output format",
			config:  Config{OutputFormat: "xml"},
			wantErr: true,
			errMsg:  "invalid output format",
		},
		{
			name:    "unknown color",
			config:  Config{EmphasisColor: "chartreuse"},
			wantErr: true,
			errMsg:  "unknown emphasis_color",
		},
		{
			name:    "negative width",
			config:  Config{Width: -1},
			wantErr: true,
			errMsg:  "width must not be negative",
		},
		{
			name:    "bad log level",
			config:  Config{LogLevel: "loud"},
			wantErr: true,
			errMsg:  "invalid log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Run("loads all env vars", func(t *testing.T) {
		t.Setenv(EnvVocabulary, "journey, adventure,,")
		t.Setenv(EnvOutputFormat, "plain")
		t.Setenv(EnvEmphasisColor, "yellow")
		t.Setenv(EnvWidth, "72")
		t.Setenv(EnvLogLevel, "info")

		cfg := &Config{}
		require.NoError(t, cfg.LoadFromEnv())

		assert.Equal(t, []string{"journey", "adventure"}, cfg.Vocabulary)
		assert.Equal(t, "plain", cfg.OutputFormat)
		assert.Equal(t, "yellow", cfg.EmphasisColor)
		assert.Equal(t, 72, cfg.Width)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("empty env vars keep existing values", func(t *testing.T) {
		t.Setenv(EnvVocabulary, "")
		t.Setenv(EnvOutputFormat, "json")
		t.Setenv(EnvEmphasisColor, "")
		t.Setenv(EnvWidth, "")
		t.Setenv(EnvLogLevel, "")

		cfg := &Config{Vocabulary: []string{"cat"}, OutputFormat: "table"}
		require.NoError(t, cfg.LoadFromEnv())

		assert.Equal(t, []string{"cat"}, cfg.Vocabulary)
		assert.Equal(t, "json", cfg.OutputFormat)
	})

	t.Run("invalid width", func(t *testing.T) {
		t.Setenv(EnvWidth, "wide")
		cfg := &Config{}
		err := cfg.LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvWidth)
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, SplitList(" a , b c ,"))
	assert.Nil(t, SplitList(" , "))
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("xdg", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		assert.Equal(t, filepath.Join("/tmp/xdg", "vocab", "config.yml"), DefaultConfigPath())
	})

	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		path := DefaultConfigPath()
		assert.True(t, strings.HasPrefix(path, home))
		assert.Contains(t, path, "vocab")
		assert.Equal(t, ".yml", filepath.Ext(path))
	})
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "/etc/vocab.yml", ResolvePath("/etc/vocab.yml"))
	assert.Equal(t, DefaultConfigPath(), ResolvePath("  "))
}

func TestConfig_Save_and_Load(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yml")

	original := Config{
		Vocabulary:    []string{"journey", "adventure"},
		OutputFormat:  "json",
		EmphasisColor: "green",
		Width:         90,
		LogLevel:      "warn",
	}

	require.NoError(t, original.Save(configPath))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yml")
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("vocabulary: [unclosed"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadWithEnv(t *testing.T) {
	t.Run("missing file uses env", func(t *testing.T) {
		t.Setenv(EnvVocabulary, "cat")
		cfg, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
		require.NoError(t, err)
		assert.Equal(t, []string{"cat"}, cfg.Vocabulary)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, (&Config{Vocabulary: []string{"file"}, Width: 40}).Save(path))
		t.Setenv(EnvVocabulary, "env")
		t.Setenv(EnvWidth, "")

		cfg, err := LoadWithEnv(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"env"}, cfg.Vocabulary)
		assert.Equal(t, 40, cfg.Width)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		t.Setenv(EnvVocabulary, "")
		t.Setenv(EnvOutputFormat, "yaml")
		_, err := LoadWithEnv(filepath.Join(t.TempDir(), "missing.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}
