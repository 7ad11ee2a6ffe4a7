package placement

import (
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/text"
)

// GlyphPosition is one glyph of an accepted placement.
type GlyphPosition struct {
	Glyph text.GlyphInfo

	// Pos is the baseline origin of the glyph in device space. The
	// shaper offset in Glyph.Offset is not included.
	Pos geom.Point

	// Rot is the rotation of the glyph around Pos.
	Rot geom.Rotation
}

// MarkerPosition is the accepted position of a shield marker.
type MarkerPosition struct {
	// Pos is the marker center.
	Pos geom.Point
	// Box is the marker extent reserved in the detector.
	Box geom.Box
}

// GlyphPositions is the result of one accepted placement.
type GlyphPositions struct {
	// Text is the label text, also the repeat key of the boxes.
	Text string

	Glyphs []GlyphPosition

	// BasePoint is the block center for point placements and the
	// first glyph origin for line placements.
	BasePoint geom.Point

	// Marker is set when the placement carries a marker.
	Marker *MarkerPosition

	// Boxes are the boxes the placement reserved in the detector.
	Boxes []geom.Box
}

// Bounds returns the union of the reserved boxes.
func (gp *GlyphPositions) Bounds() geom.Box {
	b := geom.EmptyBox()
	for _, box := range gp.Boxes {
		b = b.Union(box)
	}
	return b
}

func (gp *GlyphPositions) add(g text.GlyphInfo, pos geom.Point, rot geom.Rotation) {
	if len(gp.Glyphs) == 0 && gp.BasePoint.IsZero() {
		gp.BasePoint = pos
	}
	gp.Glyphs = append(gp.Glyphs, GlyphPosition{Glyph: g, Pos: pos, Rot: rot})
}

// glyphBox returns the device box of a glyph run of the given width whose
// baseline origin is at pos, rotated by rot. ymax and ymin are ink
// extents with positive values above the baseline.
func glyphBox(pos geom.Point, rot geom.Rotation, width, ymax, ymin float64, offset geom.Point) geom.Box {
	corners := [4]geom.Point{
		geom.Pt(0, -ymax),
		geom.Pt(width, -ymax),
		geom.Pt(width, -ymin),
		geom.Pt(0, -ymin),
	}
	b := geom.EmptyBox()
	for _, c := range corners {
		b = b.ExpandToInclude(pos.Add(c.Add(offset).Rotate(rot)))
	}
	return b
}

// lineExtents returns the largest ink top and the lowest ink bottom of a
// line. Glyphs without ink, such as spaces, use these to reserve space.
func lineExtents(line *text.Line) (ymax, ymin float64) {
	first := true
	for _, g := range line.Glyphs() {
		if g.Height() <= 0 {
			continue
		}
		if first {
			ymax, ymin = g.YMax, g.YMin
			first = false
			continue
		}
		ymax = max(ymax, g.YMax)
		ymin = min(ymin, g.YMin)
	}
	return ymax, ymin
}

// inkExtents returns the vertical extents used for the box of g.
func inkExtents(g text.GlyphInfo, lineMax, lineMin float64) (ymax, ymin float64) {
	if g.Height() > 0 {
		return g.YMax, g.YMin
	}
	return lineMax, lineMin
}
