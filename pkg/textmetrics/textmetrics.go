// Package textmetrics measures text for the layout engine.
//
// The engine never shapes or draws text itself; it asks a Measurer for the
// occupied box and treats the result as an ordinary sized leaf. The shipped
// Basic measurer uses a fixed per-character advance table, which keeps
// measurement deterministic and dependency-free. Callers with real font
// access plug in their own Measurer.
package textmetrics

import (
	"strings"

	"github.com/grzegorzj/easel/pkg/geom"
)

// Options control a measurement.
type Options struct {
	// FontSize in layout units. Zero means DefaultFontSize.
	FontSize float64
	// LineHeight as a multiple of the font size. Zero means
	// DefaultLineHeight.
	LineHeight float64
	// MaxWidth wraps text at word boundaries when positive. Zero disables
	// wrapping; lines break only at newlines.
	MaxWidth float64
}

// Defaults applied when an Options field is zero.
const (
	DefaultFontSize   = 16.0
	DefaultLineHeight = 1.25
)

func (o Options) fontSize() float64 {
	if o.FontSize <= 0 {
		return DefaultFontSize
	}
	return o.FontSize
}

func (o Options) lineHeight() float64 {
	if o.LineHeight <= 0 {
		return DefaultLineHeight
	}
	return o.LineHeight
}

// Measurer computes the box a piece of text occupies.
type Measurer interface {
	Measure(s string, opts Options) geom.Size
}

// Basic is a deterministic table-driven Measurer. Advances are fractions of
// the font size approximating a common sans-serif; the point is stable
// layout, not typographic precision.
type Basic struct{}

// advance returns a rune's width as a fraction of the font size.
func advance(r rune) float64 {
	switch {
	case r == ' ':
		return 0.28
	case r == '\t':
		return 1.12
	case strings.ContainsRune("iljI.,:;!|'", r):
		return 0.26
	case strings.ContainsRune("ftr()[]{}\"", r):
		return 0.36
	case strings.ContainsRune("mwMW@", r):
		return 0.88
	case r >= 'A' && r <= 'Z':
		return 0.68
	case r >= '0' && r <= '9':
		return 0.56
	default:
		return 0.52
	}
}

// Measure returns the bounding box of s under opts. Multi-line input
// measures as the widest line by the line count; with MaxWidth set, lines
// wrap greedily at spaces first.
func (Basic) Measure(s string, opts Options) geom.Size {
	if s == "" {
		return geom.Size{}
	}
	size := opts.fontSize()
	lineH := size * opts.lineHeight()

	var lines []float64
	for _, line := range strings.Split(s, "\n") {
		if opts.MaxWidth > 0 {
			lines = append(lines, wrap(line, size, opts.MaxWidth)...)
		} else {
			lines = append(lines, lineWidth(line, size))
		}
	}

	var widest float64
	for _, w := range lines {
		if w > widest {
			widest = w
		}
	}
	return geom.Size{Width: widest, Height: float64(len(lines)) * lineH}
}

func lineWidth(line string, size float64) float64 {
	var w float64
	for _, r := range line {
		w += advance(r) * size
	}
	return w
}

// wrap splits a line greedily at word boundaries so no fragment exceeds
// maxWidth, except single words that are wider than the limit, which stay
// whole.
func wrap(line string, size, maxWidth float64) []float64 {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []float64{0}
	}
	space := advance(' ') * size

	var widths []float64
	current := 0.0
	for _, word := range words {
		w := lineWidth(word, size)
		switch {
		case current == 0:
			current = w
		case current+space+w <= maxWidth:
			current += space + w
		default:
			widths = append(widths, current)
			current = w
		}
	}
	return append(widths, current)
}

// =============================================================================
// Text leaf content
// =============================================================================

// Text is leaf content measured by a Measurer. It implements layout.Sizer.
type Text struct {
	Content  string
	Options  Options
	Measurer Measurer

	// Fill is the paint color a renderer applies, empty for its default.
	Fill string
}

// IntrinsicSize measures the text, with Basic as the fallback measurer.
func (t Text) IntrinsicSize() geom.Size {
	m := t.Measurer
	if m == nil {
		m = Basic{}
	}
	return m.Measure(t.Content, t.Options)
}
