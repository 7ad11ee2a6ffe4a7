// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/internal/cache"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/symbolizer"
	"github.com/gogpu/maplabel/text"
)

// outlineCacheSize bounds the number of glyph outlines kept by a Preview.
const outlineCacheSize = 1024

type outlineKey struct {
	source *text.FontSource
	size   float64
	gid    text.GlyphID
}

// Preview draws scenes and their placements with an anti-aliased CPU
// rasterizer. Glyphs shaped from a font are drawn as outlines; glyphs
// without a face are drawn as their ink boxes.
//
// A Preview is not safe for concurrent use.
type Preview struct {
	showBoxes bool
	boxColor  Color

	rast      *vector.Rasterizer
	extractor *text.OutlineExtractor
	outlines  *cache.Cache[outlineKey, *text.GlyphOutline]
}

// PreviewOption configures a Preview.
type PreviewOption func(*Preview)

// WithBoxes outlines the boxes every placement reserved in c.
func WithBoxes(c Color) PreviewOption {
	return func(p *Preview) {
		p.showBoxes = true
		p.boxColor = c
	}
}

// NewPreview creates a preview rasterizer.
func NewPreview(opts ...PreviewOption) *Preview {
	p := &Preview{
		extractor: text.NewOutlineExtractor(),
		outlines:  cache.New[outlineKey, *text.GlyphOutline](outlineCacheSize),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Draw clears t to the scene background, draws the geometries of every
// line and polygon symbolizer and then the placements on top.
func (p *Preview) Draw(t *PixmapTarget, s *Scene, placements []Placement) {
	p.ensureRasterizer(t.Width(), t.Height())
	t.Clear(s.Background)

	m := s.Matrix()
	for li := range s.Layers {
		layer := &s.Layers[li]
		for _, sym := range layer.Symbolizers {
			for fi := range layer.Features {
				f := transformFeature(layer.Features[fi].Feature(), m)
				p.drawGeometries(t, f, sym)
			}
		}
	}
	for i := range placements {
		p.drawPlacement(t, &placements[i])
	}
}

func (p *Preview) ensureRasterizer(w, h int) {
	if p.rast == nil {
		p.rast = vector.NewRasterizer(w, h)
		p.rast.DrawOp = draw.Over
		return
	}
	// Reset also restores draw.Over.
	p.rast.Reset(w, h)
}

func (p *Preview) fill(t *PixmapTarget, c color.Color) {
	img := t.Image()
	p.rast.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	p.rast.Reset(t.Width(), t.Height())
}

func (p *Preview) drawGeometries(t *PixmapTarget, f *symbolizer.Feature, sym Symbolizer) {
	switch s := sym.(type) {
	case *PolygonSymbolizer:
		for _, g := range f.Geometries {
			poly, ok := g.(symbolizer.Polygon)
			if !ok {
				continue
			}
			p.ring(poly.Exterior)
			for _, h := range poly.Holes {
				p.ring(h)
			}
			p.fill(t, s.Fill)
		}
	case *LineSymbolizer:
		for _, g := range f.Geometries {
			switch g := g.(type) {
			case symbolizer.LineString:
				p.stroke(g, s.StrokeWidth, false)
			case symbolizer.Polygon:
				p.stroke(g.Exterior, s.StrokeWidth, true)
				for _, h := range g.Holes {
					p.stroke(h, s.StrokeWidth, true)
				}
			}
		}
		p.fill(t, s.Stroke)
	}
}

func (p *Preview) drawPlacement(t *PixmapTarget, pl *Placement) {
	var (
		style  *TextSymbolizer
		marker *MarkerStyle
	)
	switch s := pl.Symbolizer.(type) {
	case *TextSymbolizer:
		style = s
	case *ShieldSymbolizer:
		style, marker = &s.TextSymbolizer, &s.Marker
	default:
		style = NewTextSymbolizer()
	}

	if marker != nil && pl.Marker != nil {
		p.rect(pl.Marker.Box)
		p.fill(t, marker.Fill)
	}

	if style.HaloRadius > 0 {
		r := style.HaloRadius
		// Copies are filled one by one so that overlapping counters do
		// not cancel out.
		for i := range 8 {
			a := float64(i) * math.Pi / 4
			p.glyphs(pl.GlyphPositions, geom.Pt(r*math.Cos(a), r*math.Sin(a)))
			p.fill(t, style.HaloFill)
		}
	}
	p.glyphs(pl.GlyphPositions, geom.Point{})
	p.fill(t, style.Fill)

	if p.showBoxes {
		for _, b := range pl.Boxes {
			c := b.Corners()
			p.stroke(c[:], 1, true)
		}
		p.fill(t, p.boxColor)
	}
}

// glyphs adds the glyphs of gp, shifted by d, to the rasterizer.
func (p *Preview) glyphs(gp *placement.GlyphPositions, d geom.Point) {
	for _, g := range gp.Glyphs {
		m := geom.Translate(g.Pos.X+d.X, g.Pos.Y+d.Y).
			Multiply(geom.Rotate(g.Rot)).
			Multiply(geom.Translate(g.Glyph.Offset.X, g.Glyph.Offset.Y))

		if o := p.outline(g.Glyph); o != nil {
			p.path(o.Transform(m))
			continue
		}
		if g.Glyph.Advance <= 0 || g.Glyph.IsSpace || g.Glyph.YMax <= g.Glyph.YMin {
			continue
		}
		p.ring([]geom.Point{
			m.TransformPoint(geom.Pt(0, -g.Glyph.YMax)),
			m.TransformPoint(geom.Pt(g.Glyph.Advance, -g.Glyph.YMax)),
			m.TransformPoint(geom.Pt(g.Glyph.Advance, -g.Glyph.YMin)),
			m.TransformPoint(geom.Pt(0, -g.Glyph.YMin)),
		})
	}
}

// outline returns the cached outline of g, or nil if g has no face or its
// font cannot provide outlines.
func (p *Preview) outline(g text.GlyphInfo) *text.GlyphOutline {
	if g.Face == nil {
		return nil
	}
	key := outlineKey{source: g.Face.Source(), size: g.Face.Size(), gid: g.GlyphID}
	if o, ok := p.outlines.Get(key); ok {
		return o
	}
	o, err := p.extractor.ExtractOutline(g.Face, g.GlyphID)
	if err != nil {
		maplabel.Logger().Debug("render: no glyph outline", "gid", g.GlyphID, "err", err)
		o = nil
	}
	p.outlines.Set(key, o)
	return o
}

func (p *Preview) path(o *text.GlyphOutline) {
	if o.IsEmpty() {
		return
	}
	for i, seg := range o.Segments {
		pt := seg.Points
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if i > 0 {
				p.rast.ClosePath()
			}
			p.rast.MoveTo(f32(pt[0].X), f32(pt[0].Y))
		case text.OutlineOpLineTo:
			p.rast.LineTo(f32(pt[0].X), f32(pt[0].Y))
		case text.OutlineOpQuadTo:
			p.rast.QuadTo(f32(pt[0].X), f32(pt[0].Y), f32(pt[1].X), f32(pt[1].Y))
		case text.OutlineOpCubicTo:
			p.rast.CubeTo(f32(pt[0].X), f32(pt[0].Y), f32(pt[1].X), f32(pt[1].Y),
				f32(pt[2].X), f32(pt[2].Y))
		}
	}
	p.rast.ClosePath()
}

func (p *Preview) ring(pts []geom.Point) {
	if len(pts) < 3 {
		return
	}
	p.rast.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, pt := range pts[1:] {
		p.rast.LineTo(f32(pt.X), f32(pt.Y))
	}
	p.rast.ClosePath()
}

func (p *Preview) rect(b geom.Box) {
	c := b.Corners()
	p.ring(c[:])
}

// stroke adds every segment of pts as a rectangle of the given width.
func (p *Preview) stroke(pts []geom.Point, width float64, closed bool) {
	if width <= 0 || len(pts) < 2 {
		return
	}
	hw := width / 2
	seg := func(a, b geom.Point) {
		d := b.Sub(a).Normalize()
		if d.IsZero() {
			return
		}
		n := geom.Pt(-d.Y, d.X).Mul(hw)
		// Extend by half the width so that joins are covered.
		a, b = a.Sub(d.Mul(hw)), b.Add(d.Mul(hw))
		p.ring([]geom.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	for i := 1; i < len(pts); i++ {
		seg(pts[i-1], pts[i])
	}
	if closed && pts[0] != pts[len(pts)-1] {
		seg(pts[len(pts)-1], pts[0])
	}
}

func f32(v float64) float32 { return float32(v) }
