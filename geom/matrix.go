package geom

import "math"

// Rotation caches the sine and cosine of an angle. Glyph placement rotates
// many corner points by the same angle, so the trigonometry is done once.
type Rotation struct {
	Angle    float64
	Sin, Cos float64
}

// NewRotation returns the rotation for angle (radians, clockwise on screen
// because Y grows downwards).
func NewRotation(angle float64) Rotation {
	sin, cos := math.Sincos(angle)
	return Rotation{Angle: angle, Sin: sin, Cos: cos}
}

// Inverse returns the opposite rotation.
func (r Rotation) Inverse() Rotation {
	return Rotation{Angle: -r.Angle, Sin: -r.Sin, Cos: r.Cos}
}

// Apply rotates p around the origin.
func (r Rotation) Apply(p Point) Point {
	return p.Rotate(r)
}

// IsIdentity reports whether the rotation does nothing.
func (r Rotation) IsIdentity() bool {
	return r.Sin == 0 && r.Cos == 1
}

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix from r.
func Rotate(r Rotation) Matrix {
	return Matrix{
		A: r.Cos, B: -r.Sin,
		D: r.Sin, E: r.Cos,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformBox transforms the four corners of b and returns their bounds.
func (m Matrix) TransformBox(b Box) Box {
	out := EmptyBox()
	for _, c := range b.Corners() {
		out = out.ExpandToInclude(m.TransformPoint(c))
	}
	return out
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
