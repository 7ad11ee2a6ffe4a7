// Package text lays out label text for placement.
//
// Shaping is a collaborator: a Shaper turns a string and a Format into
// GlyphInfo values (advance, ascent, descent, cluster index). ShapeLines
// breaks the shaped text into Lines, and a Layout combines lines with the
// alignment settings of a label to produce the block size, per-line
// justification and the displacement of the block from its anchor.
//
// Three shapers are provided:
//
//   - FixedShaper: every glyph has the same box; for tests and previews
//   - BuiltinShaper: golang.org/x/image/font, one glyph per rune
//   - GoTextShaper: HarfBuzz shaping via go-text/typesetting
//
// Fonts are loaded into FontSources and looked up by family through a
// Registry:
//
//	reg := text.NewRegistry()
//	if _, err := reg.RegisterData(goregular.TTF); err != nil {
//		log.Fatal(err)
//	}
//	shaper := text.NewCachedShaper(text.NewGoTextShaper(reg), 1024)
//	lines, err := text.ShapeLines(shaper, "Main Street", text.DefaultFormat(), 0)
//
// All coordinates are in device pixels with Y growing downwards. Glyph
// ascent and descent keep the font convention: YMax is above the baseline
// and positive, YMin is below and usually negative.
package text
