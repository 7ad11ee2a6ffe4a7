package text

import "unicode"

// BuiltinShaper shapes text using golang.org/x/image/font metrics.
// It supports Latin, Cyrillic, Greek, CJK, and other scripts that don't
// require complex text shaping (ligatures, contextual forms, etc.).
//
// The shaping is simple left-to-right positioning without ligatures,
// kerning or right-to-left reordering. Use GoTextShaper for those.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct {
	Fonts *Registry
}

// NewBuiltinShaper creates a shaper resolving fonts through reg.
func NewBuiltinShaper(reg *Registry) *BuiltinShaper {
	return &BuiltinShaper{Fonts: reg}
}

// Shape implements Shaper.
func (s *BuiltinShaper) Shape(text string, f Format) ([]GlyphInfo, error) {
	if text == "" {
		return nil, nil
	}
	face, err := s.Fonts.Face(f.Face, f.Size)
	if err != nil {
		return nil, err
	}
	lineHeight := face.Metrics().LineHeight()

	out := make([]GlyphInfo, 0, len(text))
	i := 0
	for _, r := range text {
		gid, advance, ink := face.Glyph(r)
		out = append(out, GlyphInfo{
			CharIndex:  i,
			GlyphID:    gid,
			Advance:    advance,
			YMin:       -ink.MaxY,
			YMax:       -ink.MinY,
			LineHeight: lineHeight,
			IsSpace:    unicode.IsSpace(r),
			Face:       face,
		})
		i++
	}
	return out, nil
}
