// Package input reads the paragraph text that vocab commands operate on.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
	// ErrNoInput reports that no source was given and stdin is a terminal.
	ErrNoInput = errors.New("no input: pass a file, --text, or pipe text on stdin")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// Options selects where text comes from. Text wins over Path, Path over Stdin.
type Options struct {
	Text     string
	HasText  bool      // Text was given explicitly, even if empty
	Path     string    // "-" means Stdin
	Stdin    io.Reader // defaults to os.Stdin
	FromHTML bool      // convert HTML to markdown before returning
}

// Read returns the selected text. Content read from a file or stdin loses one
// trailing newline.
func Read(opts Options) (string, error) {
	text, err := read(opts)
	if err != nil {
		return "", err
	}
	if err := Validate([]byte(text)); err != nil {
		return "", err
	}
	if opts.FromHTML {
		return FromHTML(text)
	}
	return text, nil
}

func read(opts Options) (string, error) {
	if opts.HasText || opts.Text != "" {
		return opts.Text, nil
	}

	var r io.Reader
	switch {
	case opts.Path != "" && opts.Path != "-":
		f, err := os.Open(NormalizePath(opts.Path))
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	case opts.Stdin != nil:
		r = opts.Stdin
	default:
		if isTerminal(os.Stdin) {
			return "", ErrNoInput
		}
		r = os.Stdin
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return trimTrailingNewline(string(data)), nil
}

func trimTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}

// FromHTML converts HTML to markdown, so <strong>word</strong> arrives as
// **word** and is picked up as legacy emphasis.
func FromHTML(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// Validate returns an error if the input is not valid UTF-8 or appears binary.
func Validate(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	if b < 0x09 {
		return true
	}
	if b > 0x0D && b < 0x20 {
		return true
	}
	return b == 0x7F
}

// NormalizePath expands a leading ~ and makes the path absolute.
func NormalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
