package placement

import (
	"math"

	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/text"
	"github.com/gogpu/maplabel/vertexcache"
)

// minPathLength is the length below which a sub-path counts as a point.
const minPathLength = 0.001

// FindLinePlacements places the active variant repeatedly along every
// sub-path of path, Spacing apart. Around each regular position the label
// may move within the position tolerance to avoid collisions.
//
// With points set, point labels are placed at the positions along the
// path instead of text following the path; sub-paths of (nearly) zero
// length then get a single point label.
func (f *Finder) FindLinePlacements(path *geom.Path, points bool) bool {
	l := f.layout
	if l == nil || l.NumLines() == 0 || path == nil {
		return false
	}

	pp := vertexcache.New(path)
	success := false
	for pp.NextSubpath() {
		length := pp.Length()
		if points && length <= minPathLength {
			success = f.FindPointPlacement(pp.CurrentPosition()) || success
			continue
		}
		if !points && (length < f.props.MinimumPathLength*f.scale || length <= minPathLength || length < l.Width()) {
			continue
		}

		width := l.Width()
		if points {
			width = 0
		}
		spacing := f.Spacing(length, width)

		switch l.HorizontalAlignment() {
		case text.HAlignLeft:
		case text.HAlignRight:
			pp.Move(length)
		default:
			pp.Move(spacing / 2)
		}

		for {
			tol := newToleranceIterator(f.props.LabelPositionTolerance*f.scale, spacing)
			for tol.Next() {
				st := pp.SaveState()
				ok := pp.Move(tol.Get())
				if ok {
					if points {
						ok = f.FindPointPlacement(pp.CurrentPosition())
					} else {
						ok = f.SingleLinePlacement(pp, f.props.Upright)
					}
				}
				pp.RestoreState(st)
				if ok {
					success = true
					break
				}
			}
			if ok, _ := pp.Forward(spacing); !ok {
				break
			}
		}
	}
	return success
}

// SingleLinePlacement tries to place the active variant along the path
// of pp, centered at its current position. The cursor is left where it
// was. It returns true when the label was accepted.
func (f *Finder) SingleLinePlacement(pp *vertexcache.Cache, upright Upright) bool {
	l := f.layout
	if l == nil || l.NumLines() == 0 {
		return false
	}
	f.state = StateLinePlacement

	begin := pp.SaveState()
	defer pp.RestoreState(begin)

	gp, ok := f.layoutAlongPath(pp, upright)
	if !ok {
		return false
	}
	f.commit(gp, true)
	return true
}

// simplifyUpright resolves the automatic modes into Left or Right for a
// path whose direction at the label position is angle.
func simplifyUpright(u Upright, angle float64) Upright {
	angle = geom.NormalizeAngle(angle)
	switch u {
	case UprightAuto:
		if math.Abs(angle) > math.Pi/2 {
			return UprightLeft
		}
		return UprightRight
	case UprightAutoDown:
		if math.Abs(angle) < math.Pi/2 {
			return UprightLeft
		}
		return UprightRight
	case UprightLeftOnly:
		return UprightLeft
	case UprightRightOnly:
		return UprightRight
	default:
		return u
	}
}

func opposite(u Upright) Upright {
	if u == UprightLeft {
		return UprightRight
	}
	return UprightLeft
}

// layoutAlongPath computes glyph positions and boxes for the label along
// pp. Nothing is reserved.
func (f *Finder) layoutAlongPath(pp *vertexcache.Cache, upright Upright) (*GlyphPositions, bool) {
	l := f.layout
	begin := pp.SaveState()

	dir := simplifyUpright(upright, pp.Angle(0))
	sign := 1.0
	if dir == UprightLeft {
		sign = -1
	}

	maxDelta := f.props.MaxCharAngleDelta * math.Pi / 180
	alignOffset := l.AlignmentOffset()
	disp := l.Displacement()

	adjust := l.HorizontalAlignment() == text.HAlignAdjust
	var adjustSpacing float64
	if adjust {
		if longest := l.LongestLine(); longest != nil && longest.SpaceCount() > 0 {
			adjustSpacing = (pp.Length() - longest.GlyphsWidth()) / float64(longest.SpaceCount())
		}
	}

	gp := &GlyphPositions{Text: f.props.Text}
	upsideDown := 0
	glyphCount := l.GlyphsCount()
	top := 0.0

	for _, line := range l.Lines() {
		lh := line.Height()
		// Distance of the line center above the path, in text-up direction.
		up := l.Height()/2 - top - lh/2 - disp.Y
		top += lh

		off := pp.Offset(sign * up)
		offState := off.SaveState()

		lineWidth := line.Width()
		spacing := line.CharSpacing()
		if adjust {
			spacing = adjustSpacing
			lineWidth = line.GlyphsWidth() + float64(line.SpaceCount())*adjustSpacing
		}
		if !off.Move(sign*l.JAlignOffset(lineWidth) - alignOffset.X) {
			off.RestoreState(offState)
			return nil, false
		}

		lineMax, lineMin := lineExtents(line)
		shift := (lineMax + lineMin) / 2

		var (
			current       = -1
			lastSpacing   float64
			angle         float64
			lastAngle     float64
			haveLastAngle bool
			rot           geom.Rotation
			clusterOffset geom.Point
		)
		for _, g := range line.Glyphs() {
			firstOfCluster := g.CharIndex != current
			if firstOfCluster {
				step := l.ClusterWidth(current) + lastSpacing
				if !off.MoveToDistance(sign * step) {
					off.RestoreState(offState)
					return nil, false
				}
				current = g.CharIndex
				lastSpacing = spacing

				angle = geom.NormalizeAngle(off.Angle(sign * l.ClusterWidth(current)))
				if maxDelta > 0 && haveLastAngle &&
					math.Abs(geom.NormalizeAngle(angle-lastAngle)) > maxDelta {
					off.RestoreState(offState)
					return nil, false
				}
				lastAngle, haveLastAngle = angle, true
				rot = geom.NewRotation(angle)
				clusterOffset = geom.Point{}
			}
			if math.Abs(angle) > math.Pi/2 {
				upsideDown++
			}

			down := geom.Pt(-rot.Sin, rot.Cos)
			origin := off.CurrentPosition().Add(clusterOffset).Add(down.Mul(shift))
			gp.add(g, origin, rot)
			clusterOffset = clusterOffset.Add(geom.Pt(rot.Cos, rot.Sin).Mul(g.Advance))

			if firstOfCluster {
				ymax, ymin := inkExtents(g, lineMax, lineMin)
				box := glyphBox(origin, rot, l.ClusterWidth(current), ymax, ymin, g.Offset)
				if f.collision(box, true) {
					off.RestoreState(offState)
					return nil, false
				}
				gp.Boxes = append(gp.Boxes, box)
			}
		}
		off.RestoreState(offState)
	}

	switch upright {
	case UprightAuto:
		if upsideDown > glyphCount/2 {
			pp.RestoreState(begin)
			return f.layoutAlongPath(pp, opposite(dir))
		}
	case UprightAutoDown:
		if glyphCount-upsideDown > glyphCount/2 {
			pp.RestoreState(begin)
			return f.layoutAlongPath(pp, opposite(dir))
		}
	case UprightLeftOnly, UprightRightOnly:
		if upsideDown > glyphCount/2 {
			return nil, false
		}
	}
	return gp, true
}
