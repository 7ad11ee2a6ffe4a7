package text

import "unicode"

// Shaper converts text into glyphs.
//
// Shape returns one GlyphInfo per glyph in visual order. CharIndex is the
// rune index in text of the cluster the glyph belongs to. The result must
// not be modified by callers; shapers may return cached slices.
type Shaper interface {
	Shape(text string, f Format) ([]GlyphInfo, error)
}

// FixedShaper gives every rune the same box. Zero fields are derived from
// the format size: advance 0.6em, ascent 0.8em, descent 0.2em and line
// height 1.2em.
//
// FixedShaper needs no fonts and is useful for tests and previews.
type FixedShaper struct {
	Advance    float64
	YMax       float64
	YMin       float64
	LineHeight float64
}

// Shape implements Shaper.
func (s FixedShaper) Shape(text string, f Format) ([]GlyphInfo, error) {
	adv, ymax, ymin, lh := s.Advance, s.YMax, s.YMin, s.LineHeight
	if adv == 0 {
		adv = 0.6 * f.Size
	}
	if ymax == 0 && ymin == 0 {
		ymax, ymin = 0.8*f.Size, -0.2*f.Size
	}
	if lh == 0 {
		lh = max(1.2*f.Size, ymax-ymin)
	}

	out := make([]GlyphInfo, 0, len(text))
	i := 0
	for _, r := range text {
		out = append(out, GlyphInfo{
			CharIndex:  i,
			Advance:    adv,
			YMin:       ymin,
			YMax:       ymax,
			LineHeight: lh,
			IsSpace:    unicode.IsSpace(r),
		})
		i++
	}
	return out, nil
}
