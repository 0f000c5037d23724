// display.go splits annotated text into plain and emphasized segments.
package vocab

import (
	"iter"
	"strings"
)

// DisplaySegment is a run of text to paint either plainly or emphasized.
type DisplaySegment struct {
	Text       string `json:"text"`
	Emphasized bool   `json:"emphasized"`
}

// RenderForDisplay yields the segments of text in order. Markers are removed;
// every other character is preserved. Empty segments are skipped and plain
// text on both sides of an empty span comes out as one segment, so plain and
// emphasized segments alternate. The sequence is computed lazily and can be
// ranged over more than once.
func RenderForDisplay(text string) iter.Seq[DisplaySegment] {
	return func(yield func(DisplaySegment) bool) {
		var pending strings.Builder
		flush := func() bool {
			if pending.Len() == 0 {
				return true
			}
			seg := DisplaySegment{Text: pending.String()}
			pending.Reset()
			return yield(seg)
		}

		rest := text
		for rest != "" {
			span, ok := nextSpan(rest)
			if !ok {
				pending.WriteString(rest)
				break
			}
			pending.WriteString(rest[:span.start])
			if span.content != "" {
				if !flush() {
					return
				}
				if !yield(DisplaySegment{Text: span.content, Emphasized: true}) {
					return
				}
			}
			rest = rest[span.end:]
		}
		flush()
	}
}

// Segments collects RenderForDisplay into a slice.
func Segments(text string) []DisplaySegment {
	var out []DisplaySegment
	for seg := range RenderForDisplay(text) {
		out = append(out, seg)
	}
	return out
}
