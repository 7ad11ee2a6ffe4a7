package symbolizer

import (
	"fmt"
	"slices"

	maplabel "github.com/gogpu/maplabel"
	"github.com/gogpu/maplabel/collision"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/placement"
	"github.com/gogpu/maplabel/text"
)

// Step is the outcome of one Advance call.
type Step int

const (
	// StepPlaced means a candidate was placed.
	StepPlaced Step = iota
	// StepRejected means a candidate failed with the current variant and
	// stays pending for the next one.
	StepRejected
	// StepDone means there is nothing left to try.
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepPlaced:
		return "placed"
	case StepRejected:
		return "rejected"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Option configures a helper.
type Option func(*options)

type options struct {
	scale   float64
	clip    geom.Box
	clipSet bool
}

// WithScaleFactor multiplies all configured lengths by s.
func WithScaleFactor(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithClipBox sets the box line geometries are clipped to when the
// properties ask for clipping. It defaults to the detector extent.
func WithClipBox(b geom.Box) Option {
	return func(o *options) {
		o.clip = b
		o.clipSet = true
	}
}

// candidate is a point or a path still waiting for a placement.
type candidate struct {
	point geom.Point
	path  *geom.Path
}

// Helper drives a placement.Finder over the candidates of one feature.
type Helper struct {
	feature *Feature
	finder  *placement.Finder

	pending []candidate
	next    int
	started bool

	// points places point labels along paths instead of text on paths.
	points bool
}

// NewTextHelper prepares text labels for f. The first variant decides how
// candidates are derived from the geometries; all variants share them.
// extent is the visible canvas, d the detector shared by the pass.
func NewTextHelper(f *Feature, variants []placement.Properties, d *collision.Detector,
	extent geom.Box, shaper text.Shaper, opts ...Option) (*Helper, error) {
	return newHelper(f, variants, d, extent, shaper, nil, opts)
}

// NewShieldHelper prepares shields for f: text together with marker m.
// With line placement the shields are placed as points along the lines.
func NewShieldHelper(f *Feature, variants []placement.Properties, d *collision.Detector,
	extent geom.Box, shaper text.Shaper, m placement.Marker, opts ...Option) (*Helper, error) {
	return newHelper(f, variants, d, extent, shaper, &m, opts)
}

func newHelper(f *Feature, variants []placement.Properties, d *collision.Detector,
	extent geom.Box, shaper text.Shaper, marker *placement.Marker, opts []Option) (*Helper, error) {
	o := options{scale: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.clipSet {
		o.clip = d.Extent()
	}
	if f == nil || len(f.Geometries) == 0 {
		return nil, ErrNoGeometry
	}

	base := placement.DefaultProperties()
	if len(variants) > 0 {
		base = variants[0]
	}

	fopts := []placement.FinderOption{placement.WithScaleFactor(o.scale)}
	if marker != nil {
		fopts = append(fopts, placement.WithMarker(*marker))
	}
	h := &Helper{
		feature: f,
		finder:  placement.NewFinder(d, extent, shaper, variants, fopts...),
		points:  marker != nil,
	}

	geoms := selectGeometries(f.Geometries, base, o.scale)
	var err error
	switch base.Placement {
	case placement.Point, placement.Interior, placement.Vertex:
		h.pending, err = pointCandidates(geoms, base.Placement)
	case placement.Line:
		h.pending = lineCandidates(geoms, base.Clip, o.clip)
	default:
		err = fmt.Errorf("%w: %d", placement.ErrUnknownPlacement, int(base.Placement))
	}
	if err != nil {
		return nil, err
	}
	if base.Placement != placement.Line {
		h.points = false
	}
	return h, nil
}

// selectGeometries drops polygons narrower than the minimum path length
// and, with largest-bbox-only, every polygon but the largest.
func selectGeometries(geoms []Geometry, p placement.Properties, scale float64) []Geometry {
	minWidth := p.MinimumPathLength * scale
	out := make([]Geometry, 0, len(geoms))
	polygons := 0
	for _, g := range geoms {
		if poly, ok := g.(Polygon); ok {
			if minWidth > 0 && poly.Bounds().Width() < minWidth {
				continue
			}
			polygons++
		}
		out = append(out, g)
	}
	if !p.LargestBBoxOnly || polygons < 2 {
		return out
	}

	largest, area := -1, 0.0
	for i, g := range out {
		if poly, ok := g.(Polygon); ok {
			if a := poly.Bounds().Area(); largest < 0 || a > area {
				largest, area = i, a
			}
		}
	}
	kept := out[:0]
	for i, g := range out {
		if _, ok := g.(Polygon); ok && i != largest {
			continue
		}
		kept = append(kept, g)
	}
	return kept
}

// pointCandidates derives anchor points from geoms.
func pointCandidates(geoms []Geometry, how placement.Placement) ([]candidate, error) {
	var out []candidate
	add := func(p geom.Point) { out = append(out, candidate{point: p}) }
	for _, g := range geoms {
		switch g := g.(type) {
		case Point:
			add(g.Point)
		case LineString:
			if how == placement.Vertex {
				for _, p := range g {
					add(p)
				}
				continue
			}
			if p, ok := geom.MiddlePoint(g); ok {
				add(p)
			}
		case Polygon:
			switch how {
			case placement.Vertex:
				for _, p := range g.Vertices() {
					add(p)
				}
			case placement.Interior:
				if p, ok := geom.InteriorPoint(g.Exterior, g.Holes...); ok {
					add(p)
				}
			default:
				if p, ok := geom.Centroid(g.Vertices()); ok {
					add(p)
				}
			}
		default:
			return nil, fmt.Errorf("symbolizer: unsupported geometry %T", g)
		}
	}
	return out, nil
}

// lineCandidates derives paths from geoms. Points and degenerate lines
// become point candidates.
func lineCandidates(geoms []Geometry, clip bool, clipBox geom.Box) []candidate {
	var out []candidate
	for _, g := range geoms {
		var path *geom.Path
		switch g := g.(type) {
		case Point:
			out = append(out, candidate{point: g.Point})
			continue
		case LineString:
			if len(g) == 0 {
				continue
			}
			if geom.PolylineLength(g) == 0 {
				out = append(out, candidate{point: g[0]})
				continue
			}
			path = g.Path()
		case Polygon:
			if len(g.Exterior) < 2 {
				continue
			}
			path = g.Path()
		default:
			continue
		}
		if clip {
			path = geom.ClipPath(clipBox, path)
			if path.Empty() {
				continue
			}
		}
		out = append(out, candidate{path: path})
	}
	return out
}

// Finder returns the finder driven by the helper.
func (h *Helper) Finder() *placement.Finder { return h.finder }

// Pending returns the number of candidates without a placement.
func (h *Helper) Pending() int { return len(h.pending) }

// Advance tries the next candidate. A candidate that fails stays pending
// and is tried again with the next text variant once every pending
// candidate has had its attempt. Configuration errors end the helper.
func (h *Helper) Advance() (Step, error) {
	if !h.started {
		h.started = true
		if len(h.pending) == 0 {
			return StepDone, nil
		}
		if ok, err := h.finder.NextPosition(); !ok || err != nil {
			return StepDone, err
		}
	}
	for {
		if len(h.pending) == 0 {
			return StepDone, nil
		}
		if h.next >= len(h.pending) {
			ok, err := h.finder.NextPosition()
			if err != nil {
				return StepDone, err
			}
			if !ok {
				maplabel.Logger().Debug("symbolizer: variants exhausted",
					"feature", h.feature.ID, "pending", len(h.pending))
				return StepDone, nil
			}
			h.next = 0
			continue
		}

		c := h.pending[h.next]
		if h.try(c) {
			h.pending = slices.Delete(h.pending, h.next, h.next+1)
			return StepPlaced, nil
		}
		h.next++
		return StepRejected, nil
	}
}

func (h *Helper) try(c candidate) bool {
	if c.path == nil {
		return h.finder.FindPointPlacement(c.point)
	}
	return h.finder.FindLinePlacements(c.path, h.points)
}

// Get advances until nothing is left and returns all placements.
func (h *Helper) Get() ([]*placement.GlyphPositions, error) {
	for {
		step, err := h.Advance()
		if err != nil {
			return h.finder.Placements(), err
		}
		if step == StepDone {
			return h.finder.Placements(), nil
		}
	}
}
