package geom

import "math"

// Box is an axis-aligned bounding box in device coordinates.
//
// A valid box has MinX <= MaxX and MinY <= MaxY. Zero-size boxes are valid.
// The box returned by EmptyBox is inverted (Min > Max) and acts as the
// identity for ExpandToInclude and Union.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBox returns the box spanned by two corners given in any order.
func NewBox(x0, y0, x1, y1 float64) Box {
	return Box{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// BoxAround returns a box of the given size centered on c.
func BoxAround(c Point, width, height float64) Box {
	return Box{
		MinX: c.X - width/2,
		MinY: c.Y - height/2,
		MaxX: c.X + width/2,
		MaxY: c.Y + height/2,
	}
}

// EmptyBox returns an inverted box that contains nothing.
func EmptyBox() Box {
	return Box{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

// Valid reports whether Min <= Max on both axes.
func (b Box) Valid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.MinX >= b.MaxX || b.MinY >= b.MaxY
}

// Width returns the width of the box.
func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the height of the box.
func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Area returns the area of the box, 0 for invalid boxes.
func (b Box) Area() float64 {
	if !b.Valid() {
		return 0
	}
	return b.Width() * b.Height()
}

// Center returns the center point of the box.
func (b Box) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Corners returns the four corners in clockwise order starting at Min.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
}

// Intersects reports whether b and o share at least one point.
// Touching edges count as intersecting.
func (b Box) Intersects(o Box) bool {
	return !(o.MinX > b.MaxX || o.MaxX < b.MinX ||
		o.MinY > b.MaxY || o.MaxY < b.MinY)
}

// Contains reports whether o lies entirely inside b.
func (b Box) Contains(o Box) bool {
	return o.MinX >= b.MinX && o.MaxX <= b.MaxX &&
		o.MinY >= b.MinY && o.MaxY <= b.MaxY
}

// ContainsPoint reports whether p lies inside b or on its border.
func (b Box) ContainsPoint(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Expand returns b grown by d on every side. Negative d shrinks the box.
func (b Box) Expand(d float64) Box {
	return Box{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// ExpandToInclude returns the smallest box containing b and p.
func (b Box) ExpandToInclude(p Point) Box {
	return Box{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Union returns the smallest box containing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Move returns b translated by d.
func (b Box) Move(d Point) Box {
	return Box{MinX: b.MinX + d.X, MinY: b.MinY + d.Y, MaxX: b.MaxX + d.X, MaxY: b.MaxY + d.Y}
}

// ReCenter returns a box of the same size as b centered on c.
func (b Box) ReCenter(c Point) Box {
	return BoxAround(c, b.Width(), b.Height())
}
