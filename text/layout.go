package text

import (
	"math"

	"github.com/gogpu/maplabel/geom"
)

// Layout is a block of shaped lines together with its alignment.
//
// Width, height and cluster widths are updated by AddLine; offsets are
// derived from them on every call, so a layout never reports stale
// metrics after lines are added.
type Layout struct {
	props       LayoutProperties
	scale       float64
	orientation geom.Rotation

	halign HAlign
	valign VAlign
	jalign JAlign

	lines         []*Line
	width         float64
	height        float64
	glyphsCount   int
	clusterWidths map[int]float64
}

// NewLayout creates an empty layout. Displacement is multiplied by scale.
// Auto alignments are resolved here from the sign of the displacement.
func NewLayout(props LayoutProperties, scale float64) *Layout {
	l := &Layout{
		props:         props,
		scale:         scale,
		orientation:   geom.NewRotation(props.Orientation * math.Pi / 180),
		halign:        props.HAlign,
		valign:        props.VAlign,
		jalign:        props.JAlign,
		clusterWidths: make(map[int]float64),
	}
	l.resolveAutoAlignment()
	return l
}

func (l *Layout) resolveAutoAlignment() {
	d := l.props.Displacement()
	if l.valign == VAlignAuto {
		switch {
		case d.Y > 0:
			l.valign = VAlignBottom
		case d.Y < 0:
			l.valign = VAlignTop
		default:
			l.valign = VAlignMiddle
		}
	}
	if l.halign == HAlignAuto {
		switch {
		case d.X > 0:
			l.halign = HAlignRight
		case d.X < 0:
			l.halign = HAlignLeft
		default:
			l.halign = HAlignMiddle
		}
	}
	if l.jalign == JAlignAuto {
		switch {
		case d.X > 0:
			l.jalign = JAlignLeft
		case d.X < 0:
			l.jalign = JAlignRight
		default:
			l.jalign = JAlignMiddle
		}
	}
}

// AddLine appends a line below the existing ones.
func (l *Layout) AddLine(line *Line) {
	l.lines = append(l.lines, line)
	l.height += line.Height()
	l.width = max(l.width, line.Width())
	l.glyphsCount += line.Len()
	for _, g := range line.Glyphs() {
		l.clusterWidths[g.CharIndex] += g.Advance
	}
}

// Lines returns the lines from top to bottom.
func (l *Layout) Lines() []*Line { return l.lines }

// NumLines returns the number of lines.
func (l *Layout) NumLines() int { return len(l.lines) }

// GlyphsCount returns the number of glyphs on all lines.
func (l *Layout) GlyphsCount() int { return l.glyphsCount }

// Width returns the width of the widest line.
func (l *Layout) Width() float64 { return l.width }

// Height returns the sum of all line heights.
func (l *Layout) Height() float64 { return l.height }

// Orientation returns the rotation applied to point labels.
func (l *Layout) Orientation() geom.Rotation { return l.orientation }

// HorizontalAlignment returns the resolved horizontal alignment.
func (l *Layout) HorizontalAlignment() HAlign { return l.halign }

// VerticalAlignment returns the resolved vertical alignment.
func (l *Layout) VerticalAlignment() VAlign { return l.valign }

// JustifyAlignment returns the resolved justification.
func (l *Layout) JustifyAlignment() JAlign { return l.jalign }

// ClusterWidth returns the summed advance of all glyphs with the given
// character index. Unknown indices, including -1, have width 0.
func (l *Layout) ClusterWidth(charIndex int) float64 {
	return l.clusterWidths[charIndex]
}

// JAlignOffset returns the x offset, relative to the block center, at
// which a line of the given width starts.
func (l *Layout) JAlignOffset(lineWidth float64) float64 {
	switch l.jalign {
	case JAlignLeft:
		return -l.width / 2
	case JAlignRight:
		return l.width/2 - lineWidth
	default:
		return -lineWidth / 2
	}
}

// AlignmentOffset returns the shift of the block center caused by the
// horizontal and vertical alignment.
func (l *Layout) AlignmentOffset() geom.Point {
	var p geom.Point
	switch l.valign {
	case VAlignTop:
		p.Y = -l.height / 2
	case VAlignBottom:
		p.Y = l.height / 2
	}
	switch l.halign {
	case HAlignLeft:
		p.X = -l.width / 2
	case HAlignRight:
		p.X = l.width / 2
	}
	return p
}

// Displacement returns the offset of the block center from the anchor:
// the scaled configured displacement plus the alignment offset.
func (l *Layout) Displacement() geom.Point {
	d := l.props.Displacement().Mul(l.scale).Add(l.AlignmentOffset())
	if l.props.RotateDisplacement {
		d = d.Rotate(l.orientation)
	}
	return d
}

// Bounds returns the box covering the rotated block, centered on
// Displacement.
func (l *Layout) Bounds() geom.Box {
	c := l.Displacement()
	w, h := l.width, l.height
	if !l.orientation.IsIdentity() {
		cos, sin := math.Abs(l.orientation.Cos), math.Abs(l.orientation.Sin)
		w, h = l.width*cos+l.height*sin, l.width*sin+l.height*cos
	}
	return geom.BoxAround(c, w, h)
}

// LongestLine returns the line with the largest glyph width, or nil.
func (l *Layout) LongestLine() *Line {
	var longest *Line
	for _, line := range l.lines {
		if longest == nil || line.GlyphsWidth() > longest.GlyphsWidth() {
			longest = line
		}
	}
	return longest
}
