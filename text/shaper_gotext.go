package text

import (
	"bytes"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/maplabel/geom"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// It applies kerning and ligatures and shapes right-to-left and complex
// scripts. Glyphs of a right-to-left run come out in visual order with
// descending CharIndex.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates lightweight font.Face instances per
// Shape call (font.Face is NOT safe for concurrent use). The HarfbuzzShaper
// instances are pooled via sync.Pool since they also are not concurrent-safe.
type GoTextShaper struct {
	fonts *Registry

	shaperPool sync.Pool

	// mu protects fontCache.
	mu        sync.RWMutex
	fontCache map[*FontSource]*font.Font
}

// NewGoTextShaper creates a HarfBuzz shaper resolving fonts through reg.
func NewGoTextShaper(reg *Registry) *GoTextShaper {
	return &GoTextShaper{
		fonts: reg,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape implements Shaper.
func (s *GoTextShaper) Shape(text string, f Format) ([]GlyphInfo, error) {
	if text == "" {
		return nil, nil
	}
	face, err := s.fonts.Face(f.Face, f.Size)
	if err != nil {
		return nil, err
	}
	goTextFont, err := s.getOrCreateFont(face.Source())
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	dir := di.DirectionLTR
	if BaseDirection(text) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(f.Size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	lineHeight := face.Metrics().LineHeight()
	out := make([]GlyphInfo, 0, len(output.Glyphs))
	for _, g := range output.Glyphs {
		ci := g.TextIndex()
		top := fixedToFloat(g.YBearing)
		out = append(out, GlyphInfo{
			CharIndex:  ci,
			GlyphID:    GlyphID(uint16(g.GlyphID)), //nolint:gosec // OpenType glyph ids fit in 16 bits
			Advance:    fixedToFloat(g.Advance),
			YMax:       top,
			YMin:       top + fixedToFloat(g.Height),
			Offset:     geom.Pt(fixedToFloat(g.XOffset), -fixedToFloat(g.YOffset)),
			LineHeight: lineHeight,
			IsSpace:    ci >= 0 && ci < len(runes) && unicode.IsSpace(runes[ci]),
			Face:       face,
		})
	}
	return out, nil
}

// getOrCreateFont returns a cached go-text font.Font for the given source,
// or parses the font data and caches the Font (not Face).
func (s *GoTextShaper) getOrCreateFont(source *FontSource) (*font.Font, error) {
	s.mu.RLock()
	if f, ok := s.fontCache[source]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.fontCache[source]; ok {
		return f, nil
	}

	goTextFace, err := font.ParseTTF(bytes.NewReader(source.Data()))
	if err != nil {
		return nil, fmt.Errorf("text: go-text parse %q: %w", source.Family(), err)
	}
	s.fontCache[source] = goTextFace.Font
	return goTextFace.Font, nil
}

// detectScript returns the script of the first non-space rune.
// Mixed-script labels are shaped as a single run.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
