package placement

import (
	"github.com/gogpu/maplabel/geom"
)

// FindPointPlacement tries to place the active variant as a horizontal
// (or oriented) block anchored at pos. It returns true when the label was
// accepted.
//
// The block center is pos plus the layout displacement. The block box is
// tested first, then every glyph box, since ink may reach beyond the line
// boxes. A label whose boxes miss the visible canvas still reserves its
// space but is not added to Placements.
func (f *Finder) FindPointPlacement(pos geom.Point) bool {
	l := f.layout
	if l == nil || l.NumLines() == 0 {
		return false
	}
	f.state = StatePointPlacement

	center := pos.Add(l.Displacement())
	bbox := l.Bounds().ReCenter(center)
	if f.collision(bbox, false) {
		return false
	}

	rot := l.Orientation()
	gp := &GlyphPositions{Text: f.props.Text, BasePoint: center}
	visible := bbox
	top := -l.Height() / 2
	for _, line := range l.Lines() {
		lineMax, lineMin := lineExtents(line)
		// Baseline that centers the ink of the line in its line box.
		baseline := top + line.Height()/2 + (lineMax+lineMin)/2
		x := l.JAlignOffset(line.Width())
		for _, g := range line.Glyphs() {
			origin := center.Add(geom.Pt(x, baseline).Rotate(rot))
			gp.Glyphs = append(gp.Glyphs, GlyphPosition{Glyph: g, Pos: origin, Rot: rot})
			if g.Advance > 0 {
				ymax, ymin := inkExtents(g, lineMax, lineMin)
				box := glyphBox(origin, rot, g.Advance, ymax, ymin, g.Offset)
				if f.collision(box, false) {
					return false
				}
				gp.Boxes = append(gp.Boxes, box)
				visible = visible.Union(box)
				x += g.Advance + line.CharSpacing()
			}
		}
		top += line.Height()
	}

	if f.marker != nil {
		anchor := center
		if f.marker.Unlock {
			anchor = pos
		}
		mpos := anchor.Add(f.marker.Displacement)
		mbox := geom.BoxAround(mpos, f.marker.Width, f.marker.Height)
		if f.collision(mbox, false) {
			return false
		}
		gp.Marker = &MarkerPosition{Pos: mpos, Box: mbox}
		gp.Boxes = append(gp.Boxes, mbox)
	}

	f.commit(gp, f.extent.Intersects(visible))
	return true
}
