// highlight.go renders marked tokens and composes the full pipeline.
package vocab

import "strings"

// CanonicalMarker wraps emphasized spans in rendered output.
const CanonicalMarker = "***"

// LegacyMarker is the older emphasis form, accepted on input only.
const LegacyMarker = "**"

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithObserver reports pipeline events to o.
func WithObserver(o Observer) Option {
	return func(h *Highlighter) {
		h.observer = o
	}
}

// Highlighter runs the tokenize, match and render pipeline. The zero value is
// ready to use and reports nothing.
type Highlighter struct {
	observer Observer
}

// New creates a Highlighter with the given options.
func New(opts ...Option) *Highlighter {
	h := &Highlighter{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Highlight wraps every occurrence of the vocabularies in text with the
// canonical marker. Existing markup is stripped first, so highlighting
// annotated text again gives the same result.
func (h *Highlighter) Highlight(text string, vocabularies []string) string {
	out, _ := h.HighlightSet(text, NormalizeVocabularies(vocabularies))
	return out
}

// HighlightSet is Highlight for an already normalized set. It also returns the
// number of tokens that were marked.
func (h *Highlighter) HighlightSet(text string, vocabs VocabularySet) (string, int) {
	marked := h.Mark(text, vocabs)
	matches := CountMatches(marked)
	out := Render(marked)
	h.emit(Event{Stage: StageRender, Tokens: len(marked), Matches: matches})
	return out, matches
}

// Mark tokenizes text and marks tokens found in vocabs.
func (h *Highlighter) Mark(text string, vocabs VocabularySet) []Token {
	tokens := Tokenize(text)
	h.emit(Event{Stage: StageTokenize, Tokens: len(tokens)})

	marked := MarkVocabularyTokens(tokens, vocabs)
	matches := 0
	for i := range marked {
		if !marked[i].IsVocabulary {
			continue
		}
		matches++
		tok := marked[i]
		h.emit(Event{Stage: StageMatch, Token: &tok})
	}
	h.emit(Event{Stage: StageMatch, Tokens: len(marked), Matches: matches, Vocabularies: vocabs.Len()})
	return marked
}

func (h *Highlighter) emit(e Event) {
	if h == nil || h.observer == nil {
		return
	}
	h.observer.Observe(e)
}

// Render concatenates token texts, wrapping vocabulary tokens in the canonical
// marker.
func Render(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if tok.IsVocabulary {
			sb.WriteString(CanonicalMarker)
			sb.WriteString(tok.Text)
			sb.WriteString(CanonicalMarker)
			continue
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// CountMatches returns the number of vocabulary tokens.
func CountMatches(tokens []Token) int {
	n := 0
	for _, tok := range tokens {
		if tok.IsVocabulary {
			n++
		}
	}
	return n
}

// HighlightVocabularies is Tokenize, MarkVocabularyTokens and Render composed.
func HighlightVocabularies(text string, vocabularies []string) string {
	var h Highlighter
	return h.Highlight(text, vocabularies)
}
