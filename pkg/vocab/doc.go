// Package vocab highlights target vocabulary inside generated paragraphs.
//
// The pipeline is Tokenize -> MarkVocabularyTokens -> Render, composed by
// HighlightVocabularies. Emphasis is written as ***word***; the older **word**
// form is still accepted on input. StripMarkup, HasMarkup and RenderForDisplay
// work directly on annotated strings so that text coming back from storage can
// be copied, re-highlighted or painted without re-tokenizing it.
//
//	out := vocab.HighlightVocabularies(
//		"The cat began an amazing adventure near the Journey river.",
//		[]string{"adventure", "journey"},
//	)
//	// The cat began an amazing ***adventure*** near the ***Journey*** river.
//
// All functions are pure and safe for concurrent use.
package vocab
