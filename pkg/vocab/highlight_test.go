package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corpus is shared by the property tests below.
var corpus = []struct {
	text  string
	vocab []string
}{
	{"The cat began an amazing adventure near the Journey river.", []string{"adventure", "journey"}},
	{"", nil},
	{"hello world", nil},
	{"Cat, cat; CAT! category scatter", []string{"cat"}},
	{"I love ***adventure*** stories", []string{"stories"}},
	{"a **bold** word and ***another***", []string{"word", "bold"}},
	{"unbalanced ***markup** here *", []string{"markup"}},
	{"line one\nline two\n\ttabbed", []string{"line", "TABBED"}},
	{"путешествие и приключение", []string{"Путешествие"}},
	{"snake_case and snake", []string{"snake"}},
	{"  ", []string{"  "}},
}

func TestHighlightVocabularies_Scenario(t *testing.T) {
	got := HighlightVocabularies(
		"The cat began an amazing adventure near the Journey river.",
		[]string{"adventure", "journey"},
	)
	assert.Equal(t, "The cat began an amazing ***adventure*** near the ***Journey*** river.", got)
}

func TestHighlightVocabularies_EmptyInputs(t *testing.T) {
	assert.Equal(t, "", HighlightVocabularies("", nil))
	assert.Equal(t, "", HighlightVocabularies("", []string{}))
	assert.Equal(t, "hello world", HighlightVocabularies("hello world", []string{}))
	assert.Equal(t, "hello world", HighlightVocabularies("hello world", []string{" ", ""}))
}

func TestHighlightVocabularies_Cases(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		vocab []string
		want  string
	}{
		{
			name:  "case insensitive keeps original casing",
			text:  "journey JOURNEY Journey",
			vocab: []string{"Journey"},
			want:  "***journey*** ***JOURNEY*** ***Journey***",
		},
		{
			name:  "whole word only",
			text:  "cat category scatter",
			vocab: []string{"cat"},
			want:  "***cat*** category scatter",
		},
		{
			name:  "every occurrence",
			text:  "go, go, go!",
			vocab: []string{"go"},
			want:  "***go***, ***go***, ***go***!",
		},
		{
			name:  "legacy markup replaced by canonical",
			text:  "a **bold** word",
			vocab: []string{"bold"},
			want:  "a ***bold*** word",
		},
		{
			name:  "stale markup removed",
			text:  "an ***old*** highlight",
			vocab: []string{"highlight"},
			want:  "an old ***highlight***",
		},
		{
			name:  "adjacent punctuation",
			text:  "(cat),cat.",
			vocab: []string{"cat"},
			want:  "(***cat***),***cat***.",
		},
		{
			name:  "multi-word entry does not match",
			text:  "ice cream",
			vocab: []string{"ice cream"},
			want:  "ice cream",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightVocabularies(tt.text, tt.vocab))
		})
	}
}

func TestHighlightVocabularies_Idempotent(t *testing.T) {
	for _, c := range corpus {
		once := HighlightVocabularies(c.text, c.vocab)
		twice := HighlightVocabularies(once, c.vocab)
		assert.Equal(t, once, twice, "text %q", c.text)
	}
}

func TestHighlightVocabularies_RoundTrip(t *testing.T) {
	for _, c := range corpus {
		annotated := HighlightVocabularies(c.text, c.vocab)
		assert.Equal(t, Join(Tokenize(c.text)), StripMarkup(annotated), "text %q", c.text)
	}
}

func TestHighlightVocabularies_MarkupPresence(t *testing.T) {
	for _, c := range corpus {
		marked := MarkVocabularyTokens(Tokenize(c.text), NormalizeVocabularies(c.vocab))
		annotated := Render(marked)
		assert.Equal(t, CountMatches(marked) > 0, HasMarkup(annotated), "text %q", c.text)
	}
}

func TestRender(t *testing.T) {
	tokens := []Token{
		{Text: "a", Kind: TokenWord},
		{Text: " ", Kind: TokenWhitespace},
		{Text: "Word", Kind: TokenWord, IsVocabulary: true, MatchedVocabulary: "word"},
		{Text: ".", Kind: TokenPunct},
	}
	assert.Equal(t, "a ***Word***.", Render(tokens))
	assert.Equal(t, "", Render(nil))
}

func TestHighlighter_Observer(t *testing.T) {
	var events []Event
	h := New(WithObserver(ObserverFunc(func(e Event) {
		events = append(events, e)
	})))

	out := h.Highlight("the Cat and the cat", []string{"cat", "CAT", "dog"})
	assert.Equal(t, "the ***Cat*** and the ***cat***", out)

	require.Len(t, events, 5)
	assert.Equal(t, StageTokenize, events[0].Stage)
	assert.Equal(t, 9, events[0].Tokens)

	require.NotNil(t, events[1].Token)
	assert.Equal(t, "Cat", events[1].Token.Text)
	require.NotNil(t, events[2].Token)
	assert.Equal(t, "cat", events[2].Token.Text)

	assert.Equal(t, StageMatch, events[3].Stage)
	assert.Nil(t, events[3].Token)
	assert.Equal(t, 2, events[3].Matches)
	assert.Equal(t, 2, events[3].Vocabularies)

	assert.Equal(t, StageRender, events[4].Stage)
	assert.Equal(t, 2, events[4].Matches)
}

func TestHighlighter_ZeroValue(t *testing.T) {
	var h Highlighter
	assert.Equal(t, "***x***", h.Highlight("x", []string{"x"}))

	var nilH *Highlighter
	assert.Equal(t, "***x***", nilH.Highlight("x", []string{"x"}))
}

func TestHighlighter_HighlightSet(t *testing.T) {
	set := NormalizeVocabularies([]string{"river", "bank"})

	out, matches := New().HighlightSet("The river bank, the River.", set)
	assert.Equal(t, "The ***river*** ***bank***, the ***River***.", out)
	assert.Equal(t, 3, matches)

	out, matches = New().HighlightSet("nothing here", set)
	assert.Equal(t, "nothing here", out)
	assert.Zero(t, matches)
}
