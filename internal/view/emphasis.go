package view

import (
	"iter"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

// DefaultEmphasisColor is used when no color is configured.
const DefaultEmphasisColor = "cyan"

var emphasisColors = map[string]color.Attribute{
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// ColorByName returns the foreground attribute for a color name.
func ColorByName(name string) (color.Attribute, bool) {
	attr, ok := emphasisColors[strings.ToLower(strings.TrimSpace(name))]
	return attr, ok
}

// ColorNames returns the accepted color names.
func ColorNames() []string {
	names := make([]string, 0, len(emphasisColors))
	for name := range emphasisColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Painter turns display segments into terminal text.
type Painter struct {
	emphasis *color.Color
	plain    bool
	width    int
}

// NewPainter creates a Painter. With plain set, emphasized segments keep the
// canonical marker instead of ANSI styling. A width of zero or less disables
// wrapping.
func NewPainter(colorName string, width int, plain bool) *Painter {
	attr, ok := ColorByName(colorName)
	if !ok {
		attr, _ = ColorByName(DefaultEmphasisColor)
	}
	c := color.New(color.Bold, attr)
	if !plain {
		c.EnableColor()
	}
	return &Painter{emphasis: c, plain: plain, width: width}
}

// glue swaps the break opportunities inside a plain-mode span for private-use
// runes so the wrapper never splits a span across lines; unglue restores them.
var (
	glue      = strings.NewReplacer(" ", "\uE000", "\t", "\uE001", "-", "\uE002", "\u00A0", "\uE003")
	unglue    = strings.NewReplacer("\uE000", " ", "\uE001", "\t", "\uE002", "-", "\uE003", "\u00A0")
	glueRunes = "\uE000\uE001\uE002\uE003"
)

// Paint renders segments and wraps the result at the painter width. In plain
// mode an emphasized span is kept on one line so the output still parses as
// markup.
func (p *Painter) Paint(segments iter.Seq[vocab.DisplaySegment]) string {
	var segs []vocab.DisplaySegment
	for seg := range segments {
		segs = append(segs, seg)
	}

	// Text that already carries the glue runes cannot be restored safely.
	useGlue := p.plain && p.width > 0
	for _, seg := range segs {
		if strings.ContainsAny(seg.Text, glueRunes) {
			useGlue = false
		}
	}

	var sb strings.Builder
	for _, seg := range segs {
		if !seg.Emphasized {
			sb.WriteString(seg.Text)
			continue
		}
		if p.plain {
			text := seg.Text
			if useGlue {
				text = glue.Replace(text)
			}
			sb.WriteString(vocab.CanonicalMarker)
			sb.WriteString(text)
			sb.WriteString(vocab.CanonicalMarker)
			continue
		}
		sb.WriteString(p.emphasis.Sprint(seg.Text))
	}
	out := sb.String()
	if p.width <= 0 || (p.plain && !useGlue) {
		return out
	}
	out = wordwrap.String(out, p.width)
	if useGlue {
		out = unglue.Replace(out)
	}
	return out
}
