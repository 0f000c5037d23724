// token.go defines the token type shared by every pipeline stage.
package vocab

// TokenKind classifies a token by the characters it is made of.
type TokenKind uint8

const (
	TokenWord       TokenKind = iota // letters, marks, digits, underscore
	TokenWhitespace                  // spaces, tabs, newlines
	TokenPunct                       // anything else
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenWhitespace:
		return "space"
	case TokenPunct:
		return "punct"
	default:
		return "unknown"
	}
}

// Token is one run of the markup-free input text.
type Token struct {
	Text              string    // exact source substring, original casing
	Kind              TokenKind // run class
	IsVocabulary      bool      // set only on word tokens that matched
	MatchedVocabulary string    // normalized vocabulary, set iff IsVocabulary
}

// IsWord reports whether the token is a word run.
func (t Token) IsWord() bool {
	return t.Kind == TokenWord
}

// Join concatenates token texts in order. For tokens produced by Tokenize this
// is the input with all emphasis markup removed.
func Join(tokens []Token) string {
	n := 0
	for _, tok := range tokens {
		n += len(tok.Text)
	}
	buf := make([]byte, 0, n)
	for _, tok := range tokens {
		buf = append(buf, tok.Text...)
	}
	return string(buf)
}
