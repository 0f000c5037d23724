// tokenizer.go splits text into word, whitespace and punctuation runs.
package vocab

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delimiter is the emphasis marker character.
const Delimiter = '*'

// Tokenize removes every run of delimiter characters from text and splits the
// remainder into maximal word, whitespace and punctuation runs.
//
// Joining the returned tokens yields exactly the delimiter-free input. Empty
// input, or input made only of delimiters, yields no tokens.
func Tokenize(text string) []Token {
	input := stripDelimiters(text)
	if input == "" {
		return nil
	}

	var tokens []Token
	pos := 0
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		kind := classify(r, size)
		start := pos
		pos += size

		// Extend the run while the class stays the same
		for pos < len(input) {
			next, nsize := utf8.DecodeRuneInString(input[pos:])
			if classify(next, nsize) != kind {
				break
			}
			pos += nsize
		}

		tokens = append(tokens, Token{
			Text: input[start:pos],
			Kind: kind,
		})
	}

	return tokens
}

// stripDelimiters drops every delimiter character. Both ***x*** and **x**
// markup disappear, and so do stray or unbalanced runs. The delimiter is ASCII
// so it is removed bytewise, which leaves invalid UTF-8 untouched.
func stripDelimiters(text string) string {
	if strings.IndexByte(text, Delimiter) < 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != Delimiter {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// classify assigns a rune to a run class. Invalid UTF-8 bytes are punctuation
// so that they are carried through unchanged.
func classify(r rune, size int) TokenKind {
	if r == utf8.RuneError && size <= 1 {
		return TokenPunct
	}
	switch {
	case isWordRune(r):
		return TokenWord
	case unicode.IsSpace(r):
		return TokenWhitespace
	default:
		return TokenPunct
	}
}

// isWordRune returns true for letters, combining marks, decimal digits and
// underscore in any script.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r)
}
