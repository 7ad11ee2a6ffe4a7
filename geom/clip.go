package geom

// Outcode constants for the Cohen-Sutherland algorithm. "Top" is the MinY
// side because Y grows downwards.
const (
	outcodeInside = 0
	outcodeLeft   = 1
	outcodeRight  = 2
	outcodeBottom = 4
	outcodeTop    = 8
)

func outcode(clip Box, p Point) int {
	code := outcodeInside
	if p.X < clip.MinX {
		code |= outcodeLeft
	} else if p.X > clip.MaxX {
		code |= outcodeRight
	}
	if p.Y < clip.MinY {
		code |= outcodeTop
	} else if p.Y > clip.MaxY {
		code |= outcodeBottom
	}
	return code
}

// ClipLine clips the segment p0-p1 to clip.
// ok is false if the segment lies entirely outside.
func ClipLine(clip Box, p0, p1 Point) (q0, q1 Point, ok bool) {
	code0 := outcode(clip, p0)
	code1 := outcode(clip, p1)

	for {
		if code0|code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return p0, p1, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p Point
		switch {
		case codeOut&outcodeTop != 0:
			t := (clip.MinY - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: clip.MinY}
		case codeOut&outcodeBottom != 0:
			t := (clip.MaxY - p0.Y) / (p1.Y - p0.Y)
			p = Point{X: p0.X + t*(p1.X-p0.X), Y: clip.MaxY}
		case codeOut&outcodeRight != 0:
			t := (clip.MaxX - p0.X) / (p1.X - p0.X)
			p = Point{X: clip.MaxX, Y: p0.Y + t*(p1.Y-p0.Y)}
		case codeOut&outcodeLeft != 0:
			t := (clip.MinX - p0.X) / (p1.X - p0.X)
			p = Point{X: clip.MinX, Y: p0.Y + t*(p1.Y-p0.Y)}
		}

		if codeOut == code0 {
			p0 = p
			code0 = outcode(clip, p0)
		} else {
			p1 = p
			code1 = outcode(clip, p1)
		}
	}
}

// ClipPolyline clips an open polyline to clip. Every time the line leaves
// the clip box the current piece ends, so the result may hold several
// polylines. Pieces with fewer than two vertices are dropped.
func ClipPolyline(clip Box, pts []Point) [][]Point {
	if len(pts) < 2 {
		return nil
	}

	var (
		out [][]Point
		cur []Point
	)
	flush := func() {
		if len(cur) >= 2 {
			out = append(out, cur)
		}
		cur = nil
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		q0, q1, ok := ClipLine(clip, a, b)
		if !ok {
			flush()
			continue
		}
		if len(cur) == 0 || cur[len(cur)-1] != q0 {
			flush()
			cur = append(cur, q0)
		}
		cur = append(cur, q1)
		if q1 != b {
			// left the box through this segment
			flush()
		}
	}
	flush()
	return out
}

// ClipPath clips every sub-path of p and returns the pieces as a new path.
func ClipPath(clip Box, p *Path) *Path {
	result := NewPath()
	for _, sub := range p.Subpaths() {
		for _, piece := range ClipPolyline(clip, sub) {
			for i, pt := range piece {
				if i == 0 {
					result.MoveTo(pt.X, pt.Y)
				} else {
					result.LineTo(pt.X, pt.Y)
				}
			}
		}
	}
	return result
}
