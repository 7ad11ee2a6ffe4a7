package text

import "github.com/gogpu/maplabel/geom"

// Face represents a font face at a specific size.
// Face is a lightweight object created from a FontSource and is safe for
// concurrent use.
type Face interface {
	// Metrics returns the font metrics at this face's size.
	Metrics() Metrics

	// Advance returns the total advance width of the text in pixels.
	Advance(text string) float64

	// HasGlyph reports whether the font has a glyph for the given rune.
	HasGlyph(r rune) bool

	// Glyph returns the glyph index, advance and ink box (Y down) of r.
	Glyph(r rune) (GlyphID, float64, geom.Box)

	// Source returns the FontSource this face was created from.
	Source() *FontSource

	// Size returns the size of this face in pixels per em.
	Size() float64

	// Hinting returns the hinting mode used for metrics.
	Hinting() Hinting

	// private prevents external implementation
	private()
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

type faceConfig struct {
	hinting Hinting
}

func defaultFaceConfig() faceConfig {
	return faceConfig{hinting: HintingNone}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

// sourceFace is the internal implementation of Face.
type sourceFace struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Metrics implements Face.Metrics.
func (f *sourceFace) Metrics() Metrics {
	fm := f.source.Parsed().Metrics(f.size, f.config.hinting)
	descent := fm.Descent
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:  fm.Ascent,
		Descent: descent,
		LineGap: fm.LineGap,
	}
}

// Advance implements Face.Advance.
func (f *sourceFace) Advance(text string) float64 {
	var total float64
	for _, r := range text {
		_, adv, _ := f.Glyph(r)
		total += adv
	}
	return total
}

// HasGlyph implements Face.HasGlyph.
func (f *sourceFace) HasGlyph(r rune) bool {
	return f.source.Parsed().GlyphIndex(r) != 0
}

// Glyph implements Face.Glyph.
func (f *sourceFace) Glyph(r rune) (GlyphID, float64, geom.Box) {
	parsed := f.source.Parsed()
	gid := parsed.GlyphIndex(r)
	return GlyphID(gid),
		parsed.GlyphAdvance(gid, f.size, f.config.hinting),
		parsed.GlyphBounds(gid, f.size, f.config.hinting)
}

// Source implements Face.Source.
func (f *sourceFace) Source() *FontSource {
	return f.source
}

// Size implements Face.Size.
func (f *sourceFace) Size() float64 {
	return f.size
}

// Hinting implements Face.Hinting.
func (f *sourceFace) Hinting() Hinting {
	return f.config.hinting
}

func (f *sourceFace) private() {}
