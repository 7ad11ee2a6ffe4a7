package text

// Line is one line of a text block.
type Line struct {
	glyphs []GlyphInfo

	charSpacing float64
	lineSpacing float64

	width         float64
	glyphsWidth   float64
	lineHeight    float64
	maxCharHeight float64
	spaceCount    int
}

// NewLine creates an empty line. charSpacing is added between clusters and
// lineSpacing to the line height; both are in pixels.
func NewLine(charSpacing, lineSpacing float64) *Line {
	return &Line{charSpacing: charSpacing, lineSpacing: lineSpacing}
}

// AddGlyph appends g to the line and updates the line metrics.
// Zero-advance glyphs belong to the preceding cluster and add no spacing.
func (l *Line) AddGlyph(g GlyphInfo) {
	l.lineHeight = max(l.lineHeight, g.LineHeight+l.lineSpacing)
	switch {
	case len(l.glyphs) == 0:
		l.width = g.Advance
		l.glyphsWidth = g.Advance
		l.spaceCount = 0
	case g.Advance > 0:
		l.width += g.Advance + l.charSpacing
		l.glyphsWidth += g.Advance
		l.spaceCount++
	}
	l.maxCharHeight = max(l.maxCharHeight, g.Height())
	l.glyphs = append(l.glyphs, g)
}

// Glyphs returns the glyphs of the line in visual order.
func (l *Line) Glyphs() []GlyphInfo { return l.glyphs }

// Len returns the number of glyphs.
func (l *Line) Len() int { return len(l.glyphs) }

// Height returns the line height including line spacing.
func (l *Line) Height() float64 { return l.lineHeight }

// Width returns the advance width including character spacing.
func (l *Line) Width() float64 { return l.width }

// GlyphsWidth returns the advance width without character spacing.
func (l *Line) GlyphsWidth() float64 { return l.glyphsWidth }

// SpaceCount returns the number of gaps between clusters.
func (l *Line) SpaceCount() int { return l.spaceCount }

// MaxCharHeight returns the tallest ink height on the line.
func (l *Line) MaxCharHeight() float64 { return l.maxCharHeight }

// CharSpacing returns the spacing added between clusters.
func (l *Line) CharSpacing() float64 { return l.charSpacing }
