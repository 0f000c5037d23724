// markup.go scans annotated text for emphasis spans.
package vocab

import "strings"

// emphasisSpan is one parsed span; width records which marker wrapped it.
type emphasisSpan struct {
	start, end int // byte range of the whole span including markers
	content    string
	width      int
}

// nextSpan finds the first span in text. Delimiter runs are taken whole: a run
// of 2 or 3 opens a span that closes at the next run of the same length on
// the same line. A lone run of 4 or 6 is an empty span of width 2 or 3. Any
// other run is literal text.
func nextSpan(text string) (emphasisSpan, bool) {
	for i := 0; i < len(text); {
		start, end, ok := nextRun(text, i)
		if !ok {
			break
		}
		switch width := end - start; width {
		case len(LegacyMarker), len(CanonicalMarker):
			if closeAt, found := findCloser(text, end, width); found {
				return emphasisSpan{
					start:   start,
					end:     closeAt + width,
					content: text[end:closeAt],
					width:   width,
				}, true
			}
		case 2 * len(LegacyMarker), 2 * len(CanonicalMarker):
			return emphasisSpan{start: start, end: end, width: width / 2}, true
		}
		i = end
	}
	return emphasisSpan{}, false
}

// nextRun returns the byte range of the first delimiter run at or after i.
func nextRun(text string, i int) (start, end int, ok bool) {
	j := strings.IndexByte(text[i:], Delimiter)
	if j < 0 {
		return 0, 0, false
	}
	start = i + j
	end = start
	for end < len(text) && text[end] == Delimiter {
		end++
	}
	return start, end, true
}

// findCloser returns the offset of the first run of exactly width delimiters
// after from and before the next line break.
func findCloser(text string, from, width int) (int, bool) {
	line := text[from:]
	if nl := strings.IndexByte(line, '\n'); nl >= 0 {
		line = line[:nl]
	}
	for i := 0; i < len(line); {
		start, end, ok := nextRun(line, i)
		if !ok {
			break
		}
		if end-start == width {
			return from + start, true
		}
		i = end
	}
	return 0, false
}

// HasMarkup reports whether text contains at least one well-formed emphasis
// span in either marker form.
func HasMarkup(text string) bool {
	_, ok := nextSpan(text)
	return ok
}

// StripMarkup removes the markers around every emphasis span and keeps the
// content. Unmatched delimiters are left as they are.
func StripMarkup(text string) string {
	span, ok := nextSpan(text)
	if !ok {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	rest := text
	for ok {
		sb.WriteString(rest[:span.start])
		sb.WriteString(span.content)
		rest = rest[span.end:]
		span, ok = nextSpan(rest)
	}
	sb.WriteString(rest)
	return sb.String()
}
