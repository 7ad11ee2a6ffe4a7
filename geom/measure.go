package geom

import (
	"math"
	"slices"
)

// PolylineLength returns the arc length of pts.
func PolylineLength(pts []Point) float64 {
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i].Distance(pts[i-1])
	}
	return l
}

// MiddlePoint returns the point halfway along pts by arc length.
func MiddlePoint(pts []Point) (Point, bool) {
	switch len(pts) {
	case 0:
		return Point{}, false
	case 1:
		return pts[0], true
	}
	half := PolylineLength(pts) / 2
	var walked float64
	for i := 1; i < len(pts); i++ {
		seg := pts[i].Distance(pts[i-1])
		if walked+seg >= half && seg > 0 {
			return pts[i-1].Lerp(pts[i], (half-walked)/seg), true
		}
		walked += seg
	}
	return pts[len(pts)-1], true
}

// Centroid returns the area centroid of a polygon ring. Degenerate rings
// (zero area) fall back to the average of their vertices.
func Centroid(ring []Point) (Point, bool) {
	if len(ring) == 0 {
		return Point{}, false
	}
	var a, cx, cy float64
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		a += cross
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	if math.Abs(a) < 1e-12 {
		return VertexAverage(ring), true
	}
	a *= 0.5
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}, true
}

// VertexAverage returns the mean of pts.
func VertexAverage(pts []Point) Point {
	var s Point
	for _, p := range pts {
		s = s.Add(p)
	}
	if len(pts) == 0 {
		return s
	}
	return s.Mul(1 / float64(len(pts)))
}

// RingArea returns the unsigned area of a ring.
func RingArea(ring []Point) float64 {
	var a float64
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(a) / 2
}

// InteriorPoint returns a point guaranteed to lie inside the polygon given
// by its exterior ring and holes. A horizontal scan line through the
// centroid is intersected with all rings; the midpoint of the widest
// inside interval wins.
func InteriorPoint(exterior []Point, holes ...[]Point) (Point, bool) {
	c, ok := Centroid(exterior)
	if !ok {
		return Point{}, false
	}
	y := c.Y

	var xs []float64
	scan := func(ring []Point) {
		n := len(ring)
		for i := 0; i < n; i++ {
			p, q := ring[i], ring[(i+1)%n]
			if (p.Y > y) == (q.Y > y) {
				continue
			}
			xs = append(xs, p.X+(y-p.Y)*(q.X-p.X)/(q.Y-p.Y))
		}
	}
	scan(exterior)
	for _, h := range holes {
		scan(h)
	}
	if len(xs) < 2 {
		return c, true
	}
	slices.Sort(xs)

	best, bestWidth := c, -1.0
	for i := 0; i+1 < len(xs); i += 2 {
		if w := xs[i+1] - xs[i]; w > bestWidth {
			bestWidth = w
			best = Point{X: (xs[i] + xs[i+1]) / 2, Y: y}
		}
	}
	return best, true
}
