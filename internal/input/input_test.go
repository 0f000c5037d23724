package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_Sources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paragraph.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file\n"), 0600))

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"text wins", Options{Text: "inline", Path: path, Stdin: strings.NewReader("stdin")}, "inline"},
		{"explicit empty text", Options{HasText: true, Path: path}, ""},
		{"file", Options{Path: path, Stdin: strings.NewReader("stdin")}, "from file"},
		{"dash means stdin", Options{Path: "-", Stdin: strings.NewReader("from stdin\n")}, "from stdin"},
		{"stdin", Options{Stdin: strings.NewReader("crlf\r\n")}, "crlf"},
		{"only one newline trimmed", Options{Stdin: strings.NewReader("two\n\n")}, "two\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(Options{Path: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead_RejectsBinary(t *testing.T) {
	_, err := Read(Options{Stdin: strings.NewReader("hello\x00")})
	assert.ErrorIs(t, err, ErrBinaryInput)

	_, err = Read(Options{Text: "\xff\xfe"})
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestRead_FromHTML(t *testing.T) {
	got, err := Read(Options{
		Text:     "<p>An <strong>adventure</strong> begins.</p>",
		FromHTML: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "An **adventure** begins.", got)
}

func TestFromHTML_Blank(t *testing.T) {
	got, err := FromHTML("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]byte("plain text\twith tabs\r\n")))
	assert.NoError(t, Validate(nil))
	assert.ErrorIs(t, Validate([]byte{0xff}), ErrInvalidUTF8)

	dense := []byte(strings.Repeat("a", 60) + "\x01\x02\x03\x04")
	assert.ErrorIs(t, Validate(dense), ErrBinaryInput)
}

func TestNormalizePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "notes.txt"), NormalizePath("~/notes.txt"))
	assert.Equal(t, home, NormalizePath("~"))
	assert.True(t, filepath.IsAbs(NormalizePath("relative.txt")))
}
