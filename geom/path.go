package geom

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new sub-path at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current sub-path back to its start.
type Close struct{}

func (Close) isPathElement() {}

// Path is a polyline made of one or more sub-paths in device space.
// Map geometries are already flattened, so only straight segments exist.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// PathFromPoints returns a path with a single open sub-path through pts.
func PathFromPoints(pts ...Point) *Path {
	p := NewPath()
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// MoveTo starts a new sub-path.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point. Without a current point it acts as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current sub-path by drawing a line to the start point.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of path elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Subpaths returns the vertices of every sub-path in order.
// Closed sub-paths repeat their first vertex at the end.
func (p *Path) Subpaths() [][]Point {
	var (
		out [][]Point
		cur []Point
	)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []Point{e.Point}
		case LineTo:
			cur = append(cur, e.Point)
		case Close:
			if len(cur) > 0 && cur[len(cur)-1] != cur[0] {
				cur = append(cur, cur[0])
			}
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Bounds returns the bounding box of all vertices.
// The result is EmptyBox() for an empty path.
func (p *Path) Bounds() Box {
	b := EmptyBox()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b = b.ExpandToInclude(e.Point)
		case LineTo:
			b = b.ExpandToInclude(e.Point)
		}
	}
	return b
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
