// Package symbolizer turns map features into label candidates and drives a
// placement.Finder over them.
//
// A TextHelper labels one feature with text; a ShieldHelper adds a marker
// that must fit together with the text. Both try every candidate with the
// first text variant, then retry the candidates that failed with the next
// variant, until all candidates are placed or the variants run out.
package symbolizer

import (
	"github.com/gogpu/maplabel/geom"
)

// Geometry is a Point, LineString or Polygon in device coordinates.
type Geometry interface {
	// Bounds returns the bounding box of all vertices.
	Bounds() geom.Box
	// Transform returns the geometry with every vertex transformed by m.
	Transform(m geom.Matrix) Geometry

	isGeometry()
}

// Point is a single position.
type Point struct {
	geom.Point
}

// LineString is an open polyline.
type LineString []geom.Point

// Polygon is an exterior ring with optional holes. Rings may or may not
// repeat their first vertex at the end.
type Polygon struct {
	Exterior []geom.Point
	Holes    [][]geom.Point
}

func (Point) isGeometry()      {}
func (LineString) isGeometry() {}
func (Polygon) isGeometry()    {}

// Bounds implements Geometry.
func (p Point) Bounds() geom.Box {
	return geom.NewBox(p.X, p.Y, p.X, p.Y)
}

// Bounds implements Geometry.
func (l LineString) Bounds() geom.Box {
	return boundsOf(l)
}

// Bounds implements Geometry.
func (p Polygon) Bounds() geom.Box {
	return boundsOf(p.Exterior)
}

// Transform implements Geometry.
func (p Point) Transform(m geom.Matrix) Geometry {
	return Point{m.TransformPoint(p.Point)}
}

// Transform implements Geometry.
func (l LineString) Transform(m geom.Matrix) Geometry {
	return LineString(transformAll(m, l))
}

// Transform implements Geometry.
func (p Polygon) Transform(m geom.Matrix) Geometry {
	out := Polygon{Exterior: transformAll(m, p.Exterior)}
	for _, h := range p.Holes {
		out.Holes = append(out.Holes, transformAll(m, h))
	}
	return out
}

// Path returns the line as a path with a single sub-path.
func (l LineString) Path() *geom.Path {
	return geom.PathFromPoints(l...)
}

// Path returns the exterior ring as a closed path.
func (p Polygon) Path() *geom.Path {
	path := geom.PathFromPoints(p.Exterior...)
	path.Close()
	return path
}

// Vertices returns the exterior ring without a repeated closing vertex.
func (p Polygon) Vertices() []geom.Point {
	ring := p.Exterior
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	return ring
}

func boundsOf(pts []geom.Point) geom.Box {
	b := geom.EmptyBox()
	for _, p := range pts {
		b = b.ExpandToInclude(p)
	}
	return b
}

func transformAll(m geom.Matrix, pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// Feature is one map object: its geometries and attributes. Multi-part
// geometries are stored as several entries of Geometries.
type Feature struct {
	ID         int64
	Attributes map[string]string
	Geometries []Geometry
}

// Attr returns the attribute key, or "" if it is not set.
func (f *Feature) Attr(key string) string {
	return f.Attributes[key]
}
