package vertexcache

import (
	"math"

	"github.com/gogpu/maplabel/geom"
)

// miterLimit bounds how far a join vertex may move away from the original
// vertex, as a multiple of the offset.
const miterLimit = 4

// Offset returns a cursor over the current sub-path shifted sideways by
// offset pixels. Positive offsets move to the left of the direction of
// travel, which is "up" for text read along the path. The returned cursor
// is positioned at the point closest to this cursor's position.
//
// Offset cursors are cached per sub-path and offset and reused on later
// calls. Offsets smaller than 0.01 return c itself.
func (c *Cache) Offset(offset float64) *Cache {
	if math.Abs(offset) < 0.01 || !c.valid() {
		return c
	}
	key := offsetKey{subpath: c.cur, offset: offset}
	oc, ok := c.offsets[key]
	if !ok {
		oc = FromSubpaths(offsetPolyline(c.Points(), offset))
		if c.offsets == nil {
			c.offsets = make(map[offsetKey]*Cache)
		}
		c.offsets[key] = oc
	}

	oc.Reset()
	if !oc.NextSubpath() {
		return c
	}
	oc.Move(oc.PositionClosestTo(c.state.current))
	return oc
}

// offsetPolyline shifts pts sideways by d. Joins use the intersection of
// the neighbouring offset segments, falling back to a bevel when the miter
// would be longer than miterLimit*|d|.
func offsetPolyline(pts []geom.Point, d float64) []geom.Point {
	if len(pts) < 2 {
		return pts
	}

	normals := make([]geom.Point, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		dir := pts[i].Sub(pts[i-1]).Normalize()
		normals = append(normals, geom.Pt(dir.Y, -dir.X))
	}

	out := make([]geom.Point, 0, len(pts)+4)
	out = append(out, pts[0].Add(normals[0].Mul(d)))
	for i := 1; i < len(pts)-1; i++ {
		n0, n1 := normals[i-1], normals[i]
		bisector := n0.Add(n1)
		cos := bisector.Length() / 2
		if cos < 1e-9 || 1/cos > miterLimit {
			out = append(out, pts[i].Add(n0.Mul(d)), pts[i].Add(n1.Mul(d)))
			continue
		}
		// The miter vertex lies on the bisector at d/cos(half angle).
		out = append(out, pts[i].Add(bisector.Normalize().Mul(d/cos)))
	}
	out = append(out, pts[len(pts)-1].Add(normals[len(normals)-1].Mul(d)))
	return out
}
