// vocabulary.go normalizes user-entered vocabulary lists.
package vocab

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// VocabularySet holds normalized vocabulary entries.
type VocabularySet map[string]struct{}

// NormalizeVocabularies trims, lowercases and deduplicates raw entries.
// Blank entries are discarded.
func NormalizeVocabularies(raw []string) VocabularySet {
	set := make(VocabularySet, len(raw))
	lower := newFolder()
	for _, entry := range raw {
		key := lower.key(trimEdges(entry))
		if key == "" {
			continue
		}
		set[key] = struct{}{}
	}
	return set
}

// NormalizeVocabulary returns the canonical form of a single entry, or "" for
// a blank one.
func NormalizeVocabulary(s string) string {
	return newFolder().key(trimEdges(s))
}

// Contains reports whether the normalized entry is in the set.
func (s VocabularySet) Contains(normalized string) bool {
	_, ok := s[normalized]
	return ok
}

// Len returns the number of distinct entries.
func (s VocabularySet) Len() int {
	return len(s)
}

// Sorted returns the entries in lexical order.
func (s VocabularySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Phrases returns entries that contain something other than word characters.
// A single word token can never equal them.
func (s VocabularySet) Phrases() []string {
	var out []string
	for _, v := range s.Sorted() {
		if strings.IndexFunc(v, func(r rune) bool { return !isWordRune(r) }) >= 0 {
			out = append(out, v)
		}
	}
	return out
}

// folder lowercases and composes text into a comparison key. A cases.Caser
// keeps state, so each call site gets its own.
type folder struct {
	caser cases.Caser
}

func newFolder() *folder {
	return &folder{caser: cases.Lower(language.Und)}
}

func (f *folder) key(s string) string {
	if s == "" {
		return ""
	}
	return norm.NFC.String(f.caser.String(s))
}

// trimEdges removes whitespace and zero-width characters around an entry.
func trimEdges(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) ||
			r == '\u200B' || // zero width space
			r == '\u200C' || // zero width non-joiner
			r == '\u200D' || // zero width joiner
			r == '\uFEFF' // byte order mark
	})
}
