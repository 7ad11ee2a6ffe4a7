// Package vertexcache provides a cursor that walks a polyline by arc length.
//
// Line labels are laid out glyph by glyph along a path. The cursor keeps the
// current segment and the distance into it, so every step only looks at the
// segments it actually crosses. Speculative walks are wrapped in
// SaveState/RestoreState:
//
//	st := c.SaveState()
//	if !tryPlace(c) {
//		c.RestoreState(st)
//	}
//
// A Cache is not safe for concurrent use.
package vertexcache

import (
	"fmt"
	"math"

	"github.com/gogpu/maplabel/geom"
)

// segment ends at pos. The first segment of every sub-path has length 0
// and marks the starting point.
type segment struct {
	pos    geom.Point
	length float64
}

type subpath struct {
	segments []segment
	length   float64
}

func (s *subpath) add(p geom.Point, length float64) {
	if length == 0 && len(s.segments) > 0 {
		return
	}
	s.segments = append(s.segments, segment{pos: p, length: length})
	s.length += length
}

// State is a snapshot of the cursor.
type State struct {
	subpath           int
	segment           int
	position          float64
	positionInSegment float64
	current           geom.Point
	segmentStart      geom.Point
}

// Position returns the device position recorded in the snapshot.
func (s State) Position() geom.Point {
	return s.current
}

// Cache is an arc-length cursor over the sub-paths of a path.
type Cache struct {
	subpaths []subpath

	// -1 before the first NextSubpath.
	cur   int
	state State

	offsets map[offsetKey]*Cache
}

type offsetKey struct {
	subpath int
	offset  float64
}

// New builds a cursor over every sub-path of p. Consecutive duplicate
// vertices are dropped. The cursor is not positioned until NextSubpath.
func New(p *geom.Path) *Cache {
	return FromSubpaths(p.Subpaths()...)
}

// FromSubpaths builds a cursor over the given vertex lists.
func FromSubpaths(lines ...[]geom.Point) *Cache {
	c := &Cache{cur: -1}
	for _, pts := range lines {
		if len(pts) == 0 {
			continue
		}
		var sp subpath
		sp.add(pts[0], 0)
		for i := 1; i < len(pts); i++ {
			sp.add(pts[i], pts[i].Distance(pts[i-1]))
		}
		c.subpaths = append(c.subpaths, sp)
	}
	return c
}

// Reset moves the cursor back before the first sub-path.
func (c *Cache) Reset() {
	c.cur = -1
	c.state = State{}
}

// NextSubpath advances to the next sub-path with a non-zero length and
// rewinds to its start. It returns false once all sub-paths are used.
func (c *Cache) NextSubpath() bool {
	for {
		c.cur++
		if c.cur >= len(c.subpaths) {
			c.cur = len(c.subpaths)
			return false
		}
		if c.subpaths[c.cur].length > 0 {
			c.RewindSubpath()
			return true
		}
	}
}

// RewindSubpath moves the cursor to the start of the current sub-path.
func (c *Cache) RewindSubpath() {
	if !c.valid() {
		return
	}
	start := c.subpaths[c.cur].segments[0].pos
	c.state = State{
		subpath:      c.cur,
		current:      start,
		segmentStart: start,
	}
}

func (c *Cache) valid() bool {
	return c.cur >= 0 && c.cur < len(c.subpaths)
}

func (c *Cache) segments() []segment {
	return c.subpaths[c.cur].segments
}

// Length returns the arc length of the current sub-path.
func (c *Cache) Length() float64 {
	if !c.valid() {
		return 0
	}
	return c.subpaths[c.cur].length
}

// CurrentPosition returns the device position of the cursor.
func (c *Cache) CurrentPosition() geom.Point {
	return c.state.current
}

// LinearPosition returns the arc length from the sub-path start to the cursor.
func (c *Cache) LinearPosition() float64 {
	return c.state.position
}

// SaveState returns a snapshot of the cursor.
func (c *Cache) SaveState() State {
	return c.state
}

// RestoreState rolls the cursor back to s.
func (c *Cache) RestoreState(s State) {
	c.cur = s.subpath
	c.state = s
}

// Angle returns the direction of the path at the cursor in radians, measured
// as atan2(dy, dx) in device space.
//
// If width stays inside the current segment the segment direction is used.
// Otherwise the angle of the chord from the cursor to the point width
// further along the path is returned; this smooths over vertices.
// A negative width looks backwards and the result points backwards too.
func (c *Cache) Angle(width float64) float64 {
	if !c.valid() {
		return 0
	}
	seg := c.segments()[c.state.segment]
	tmp := width + c.state.positionInSegment
	if tmp >= 0 && tmp <= seg.length {
		a := c.segmentAngle()
		if width < 0 {
			a += math.Pi
		}
		return a
	}

	saved := c.SaveState()
	c.move(width)
	end := c.state.current
	c.RestoreState(saved)

	d := end.Sub(saved.current)
	if d.IsZero() {
		a := c.segmentAngle()
		if width < 0 {
			a += math.Pi
		}
		return a
	}
	return math.Atan2(d.Y, d.X)
}

// segmentAngle is the direction of the current segment. The zero-length
// starting segment takes the direction of the segment after it.
func (c *Cache) segmentAngle() float64 {
	segs := c.segments()
	i := c.state.segment
	from, to := c.state.segmentStart, segs[i].pos
	if segs[i].length == 0 && i+1 < len(segs) {
		from, to = segs[i].pos, segs[i+1].pos
	}
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Move walks length along the path, backwards when negative. It returns
// false, leaving the cursor untouched, if that would leave the sub-path.
func (c *Cache) Move(length float64) bool {
	if !c.valid() {
		return false
	}
	saved := c.SaveState()
	if !c.move(length) {
		c.RestoreState(saved)
		return false
	}
	return true
}

// move walks length along the path. On failure the cursor is left at the
// sub-path boundary it ran into.
func (c *Cache) move(length float64) bool {
	segs := c.segments()
	s := &c.state

	s.position += length
	length += s.positionInSegment
	for length > segs[s.segment].length {
		length -= segs[s.segment].length
		if !c.nextSegment() {
			c.clampToEnd()
			return false
		}
	}
	for length < 0 {
		if !c.previousSegment() {
			c.clampToStart()
			return false
		}
		length += segs[s.segment].length
	}

	s.positionInSegment = length
	s.current = c.pointInSegment(length)
	return true
}

func (c *Cache) pointInSegment(at float64) geom.Point {
	seg := c.segments()[c.state.segment]
	if seg.length == 0 {
		return seg.pos
	}
	return c.state.segmentStart.Lerp(seg.pos, at/seg.length)
}

func (c *Cache) nextSegment() bool {
	segs := c.segments()
	if c.state.segment+1 >= len(segs) {
		return false
	}
	c.state.segmentStart = segs[c.state.segment].pos
	c.state.segment++
	return true
}

func (c *Cache) previousSegment() bool {
	segs := c.segments()
	if c.state.segment == 0 {
		return false
	}
	c.state.segment--
	if c.state.segment == 0 {
		c.state.segmentStart = segs[0].pos
	} else {
		c.state.segmentStart = segs[c.state.segment-1].pos
	}
	return true
}

func (c *Cache) clampToEnd() {
	segs := c.segments()
	last := len(segs) - 1
	c.state.segment = last
	if last > 0 {
		c.state.segmentStart = segs[last-1].pos
	}
	c.state.positionInSegment = segs[last].length
	c.state.position = c.subpaths[c.cur].length
	c.state.current = segs[last].pos
}

func (c *Cache) clampToStart() {
	c.RewindSubpath()
}

// MoveToDistance moves the cursor so that the straight-line distance from
// the old to the new position equals |distance|, walking forwards for a
// positive distance and backwards otherwise. Around corners this is
// shorter than the same arc length, which keeps glyphs evenly spaced.
// On failure the cursor is left untouched.
func (c *Cache) MoveToDistance(distance float64) bool {
	if !c.valid() {
		return false
	}
	saved := c.SaveState()
	if !c.moveToDistance(distance) {
		c.RestoreState(saved)
		return false
	}
	return true
}

func (c *Cache) moveToDistance(distance float64) bool {
	segs := c.segments()
	s := &c.state

	inSegment := s.positionInSegment + distance
	if inSegment >= 0 && inSegment <= segs[s.segment].length {
		s.position += distance
		s.positionInSegment = inSegment
		s.current = c.pointInSegment(inSegment)
		return true
	}

	radius := math.Abs(distance)
	center := s.current
	var inner, outer geom.Point

	s.position -= s.positionInSegment
	if distance > 0 {
		for {
			s.position += segs[s.segment].length
			if !c.nextSegment() {
				return false
			}
			if center.Distance(segs[s.segment].pos) >= radius {
				break
			}
		}
		inner, outer = s.segmentStart, segs[s.segment].pos
	} else {
		for {
			if !c.previousSegment() {
				return false
			}
			s.position -= segs[s.segment].length
			if center.Distance(s.segmentStart) >= radius {
				break
			}
		}
		inner, outer = segs[s.segment].pos, s.segmentStart
	}

	if p, ok := lineCircleIntersection(center, radius, inner, outer); ok {
		s.current = p
	} else {
		s.current = outer
	}
	s.positionInSegment = s.current.Distance(s.segmentStart)
	s.position += s.positionInSegment
	return true
}

// lineCircleIntersection returns the point where the segment from inner
// (inside the circle) to outer (outside) crosses the circle.
func lineCircleIntersection(center geom.Point, radius float64, inner, outer geom.Point) (geom.Point, bool) {
	d := outer.Sub(inner)
	f := inner.Sub(center)
	a := d.Dot(d)
	b := 2 * d.Dot(f)
	cc := f.Dot(f) - radius*radius
	det := b*b - 4*a*cc
	if a <= 1e-7 || det < 0 {
		return geom.Point{}, false
	}
	t := (-b + math.Sqrt(det)) / (2 * a)
	return inner.Add(d.Mul(t)), true
}

// Forward walks length along the path. It reports whether the cursor is
// still on the sub-path.
func (c *Cache) Forward(length float64) (bool, error) {
	if length < 0 {
		return false, fmt.Errorf("forward %g: %w", length, ErrNegativeLength)
	}
	return c.Move(length), nil
}

// Backward walks length back along the path.
func (c *Cache) Backward(length float64) (bool, error) {
	if length < 0 {
		return false, fmt.Errorf("backward %g: %w", length, ErrNegativeLength)
	}
	return c.Move(-length), nil
}

// PositionClosestTo returns the arc length on the current sub-path of the
// point closest to target.
func (c *Cache) PositionClosestTo(target geom.Point) float64 {
	if !c.valid() {
		return 0
	}
	segs := c.segments()
	best := 0.0
	bestDist := segs[0].pos.Distance(target)
	walked := 0.0
	for i := 1; i < len(segs); i++ {
		a, b := segs[i-1].pos, segs[i].pos
		t := closestOnSegment(a, b, target)
		if dist := a.Lerp(b, t).Distance(target); dist < bestDist {
			bestDist = dist
			best = walked + segs[i].length*t
		}
		walked += segs[i].length
	}
	return best
}

func closestOnSegment(a, b, p geom.Point) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 == 0 {
		return 0
	}
	return max(0, min(1, p.Sub(a).Dot(d)/l2))
}

// Points returns the vertices of the current sub-path.
func (c *Cache) Points() []geom.Point {
	if !c.valid() {
		return nil
	}
	segs := c.segments()
	pts := make([]geom.Point, len(segs))
	for i, s := range segs {
		pts[i] = s.pos
	}
	return pts
}
