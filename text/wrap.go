package text

import "strings"

// ShapeLines shapes s with shaper and splits it into lines.
//
// Hard breaks ("\n") always start a new line. With wrapWidth > 0 a line
// is also broken at the last space before it would grow wider than
// wrapWidth; a single word wider than wrapWidth keeps a line of its own.
// Spaces at a wrap point are dropped. CharIndex values refer to rune
// positions in s.
func ShapeLines(shaper Shaper, s string, f Format, wrapWidth float64) ([]*Line, error) {
	var lines []*Line
	base := 0
	for _, para := range strings.Split(s, "\n") {
		n := len([]rune(para))
		if strings.TrimSpace(para) != "" {
			glyphs, err := shaper.Shape(para, f)
			if err != nil {
				return nil, err
			}
			shifted := make([]GlyphInfo, len(glyphs))
			for i, g := range glyphs {
				g.CharIndex += base
				shifted[i] = g
			}
			lines = append(lines, wrapGlyphs(shifted, f, wrapWidth)...)
		}
		base += n + 1
	}
	return lines, nil
}

// word is a run of clusters between spaces, together with the spaces
// that precede it.
type word struct {
	lead   []GlyphInfo
	glyphs []GlyphInfo
}

func splitWords(glyphs []GlyphInfo) []word {
	var (
		words []word
		cur   word
	)
	for _, g := range glyphs {
		if g.IsSpace {
			if len(cur.glyphs) > 0 {
				words = append(words, cur)
				cur = word{}
			}
			cur.lead = append(cur.lead, g)
			continue
		}
		cur.glyphs = append(cur.glyphs, g)
	}
	if len(cur.glyphs) > 0 || len(cur.lead) > 0 {
		words = append(words, cur)
	}
	return words
}

func wrapGlyphs(glyphs []GlyphInfo, f Format, wrapWidth float64) []*Line {
	newLine := func() *Line { return NewLine(f.CharacterSpacing, f.LineSpacing) }

	if wrapWidth <= 0 {
		l := newLine()
		for _, g := range glyphs {
			l.AddGlyph(g)
		}
		return []*Line{l}
	}

	var (
		lines []*Line
		cur   []GlyphInfo
	)
	flush := func() {
		if len(cur) == 0 {
			return
		}
		l := newLine()
		for _, g := range cur {
			l.AddGlyph(g)
		}
		lines = append(lines, l)
		cur = nil
	}

	for _, w := range splitWords(glyphs) {
		if len(cur) == 0 {
			// Leading spaces of a paragraph are kept, those at a wrap are not.
			if len(lines) == 0 {
				cur = append(cur, w.lead...)
			}
			cur = append(cur, w.glyphs...)
			continue
		}
		candidate := append(append(append([]GlyphInfo(nil), cur...), w.lead...), w.glyphs...)
		if measure(candidate, f.CharacterSpacing) > wrapWidth {
			flush()
			cur = append(cur, w.glyphs...)
			continue
		}
		cur = candidate
	}
	flush()
	return lines
}

// measure returns the width a Line would report for glyphs.
func measure(glyphs []GlyphInfo, charSpacing float64) float64 {
	var w float64
	for i, g := range glyphs {
		switch {
		case i == 0:
			w = g.Advance
		case g.Advance > 0:
			w += g.Advance + charSpacing
		}
	}
	return w
}
