// matcher.go flags word tokens that equal a target vocabulary.
package vocab

// MarkVocabularyTokens returns a copy of tokens in which every word token whose
// case-folded text is in vocabs is marked. Matching is whole-token equality:
// no substrings, no stemming. Every occurrence is marked. The input slice is
// not modified.
func MarkVocabularyTokens(tokens []Token, vocabs VocabularySet) []Token {
	if tokens == nil {
		return nil
	}
	marked := make([]Token, len(tokens))
	copy(marked, tokens)
	if len(vocabs) == 0 {
		return marked
	}

	lower := newFolder()
	for i, tok := range marked {
		if !tok.IsWord() {
			continue
		}
		key := lower.key(tok.Text)
		if !vocabs.Contains(key) {
			continue
		}
		tok.IsVocabulary = true
		tok.MatchedVocabulary = key
		marked[i] = tok
	}
	return marked
}
