package text

import "github.com/gogpu/maplabel/geom"

// FontParser is an interface for font parsing backends.
//
// The default implementation uses golang.org/x/image/font/opentype.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont represents a parsed font file.
type ParsedFont interface {
	// Name returns the font family name, or "".
	Name() string

	// FullName returns the full font name, or "".
	FullName() string

	// Style returns the subfamily name ("Regular", "Bold Italic"), or "".
	Style() string

	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int

	// GlyphIndex returns the glyph index for a rune, or 0 if the font
	// has no glyph for it.
	GlyphIndex(r rune) uint16

	// GlyphAdvance returns the advance width of a glyph at ppem pixels per em.
	GlyphAdvance(glyphIndex uint16, ppem float64, h Hinting) float64

	// GlyphBounds returns the ink box of a glyph relative to its origin
	// on the baseline, with Y growing downwards.
	GlyphBounds(glyphIndex uint16, ppem float64, h Hinting) geom.Box

	// Metrics returns the font metrics at ppem pixels per em.
	Metrics(ppem float64, h Hinting) FontMetrics
}

// FontMetrics holds font-level metrics at a specific size.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (negative).
	Descent float64

	// LineGap is the recommended line gap between lines.
	LineGap float64
}

// Height returns the total line height (ascent - descent + line gap).
func (m FontMetrics) Height() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// defaultParser is used when no parser option is given.
var defaultParser FontParser = &ximageParser{}
