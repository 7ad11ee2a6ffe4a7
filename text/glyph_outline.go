package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/maplabel/geom"
)

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]geom.Point
}

// numPoints returns how many entries of Points the segment uses.
func (s OutlineSegment) numPoints() int {
	switch s.Op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline is the vector outline of a glyph in pixels, relative to
// the glyph origin on the baseline, with Y pointing down.
type GlyphOutline struct {
	Segments []OutlineSegment

	// Bounds is the bounding box of all points.
	Bounds geom.Box

	// Advance is the horizontal advance width of the glyph.
	Advance float64

	// GID is the glyph ID this outline represents.
	GID GlyphID
}

// IsEmpty returns true if the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Transform returns a copy of the outline with every point transformed
// by m.
func (o *GlyphOutline) Transform(m geom.Matrix) *GlyphOutline {
	if o == nil {
		return nil
	}
	out := &GlyphOutline{
		Segments: make([]OutlineSegment, len(o.Segments)),
		Bounds:   geom.EmptyBox(),
		Advance:  o.Advance,
		GID:      o.GID,
	}
	for i, seg := range o.Segments {
		for j := range seg.numPoints() {
			seg.Points[j] = m.TransformPoint(seg.Points[j])
			out.Bounds = out.Bounds.ExpandToInclude(seg.Points[j])
		}
		out.Segments[i] = seg
	}
	return out
}

// OutlineExtractor extracts glyph outlines from fonts.
//
// An OutlineExtractor reuses an sfnt.Buffer and is not safe for
// concurrent use.
type OutlineExtractor struct {
	buffer sfnt.Buffer
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline extracts the outline of glyph gid of face at the size of
// the face. Glyphs without ink, such as spaces, return an empty outline.
func (e *OutlineExtractor) ExtractOutline(face Face, gid GlyphID) (*GlyphOutline, error) {
	if face == nil {
		return nil, ErrUnsupportedFontType
	}
	xi, ok := face.Source().Parsed().(*ximageParsedFont)
	if !ok {
		return nil, ErrUnsupportedFontType
	}

	ppem := floatToFixed(face.Size())
	segments, err := xi.font.LoadGlyph(&e.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}

	outline := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		Bounds:   geom.EmptyBox(),
		GID:      gid,
	}
	for _, seg := range segments {
		var out OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = OutlineOpCubicTo
		}
		for j := range out.numPoints() {
			out.Points[j] = fixedPointToGeom(seg.Args[j])
			outline.Bounds = outline.Bounds.ExpandToInclude(out.Points[j])
		}
		outline.Segments = append(outline.Segments, out)
	}

	if adv, err := xi.font.GlyphAdvance(&e.buffer, sfnt.GlyphIndex(gid), ppem, 0); err == nil {
		outline.Advance = fixedToFloat(adv)
	}
	return outline, nil
}

func fixedPointToGeom(p fixed.Point26_6) geom.Point {
	return geom.Pt(fixedToFloat(p.X), fixedToFloat(p.Y))
}
