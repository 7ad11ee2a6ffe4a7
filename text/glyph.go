package text

import "github.com/gogpu/maplabel/geom"

// GlyphID is a glyph index in a font.
type GlyphID uint16

// GlyphInfo is one shaped glyph.
//
// Several glyphs may share a CharIndex when the shaper combines characters
// (ligatures, combining marks). Only the first glyph of such a cluster
// carries a non-zero Advance in most fonts; the cluster width is the sum of
// the advances of all its glyphs.
type GlyphInfo struct {
	// CharIndex is the rune index of the cluster in the label text.
	CharIndex int

	// GlyphID is the glyph in Face. Zero for FixedShaper glyphs.
	GlyphID GlyphID

	// Advance is the horizontal advance in pixels.
	Advance float64

	// YMin and YMax are the ink extents relative to the baseline, with
	// positive values above it.
	YMin, YMax float64

	// Offset is the shaper's positioning adjustment (Y down).
	Offset geom.Point

	// LineHeight is the recommended baseline distance of the face.
	LineHeight float64

	// IsSpace marks whitespace clusters; lines break there.
	IsSpace bool

	// Face is the face the glyph was shaped with; nil for FixedShaper.
	Face Face
}

// Height returns the ink height of the glyph.
func (g GlyphInfo) Height() float64 {
	return g.YMax - g.YMin
}
