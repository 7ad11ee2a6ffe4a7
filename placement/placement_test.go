package placement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/maplabel/collision"
	"github.com/gogpu/maplabel/geom"
	"github.com/gogpu/maplabel/text"
	"github.com/gogpu/maplabel/vertexcache"
)

const eps = 1e-6

// fixed10 gives every character a 10px advance, 9px ascent, 3px descent
// and 12px line height.
var fixed10 = text.FixedShaper{Advance: 10, YMax: 9, YMin: -3, LineHeight: 12}

var canvas = geom.NewBox(0, 0, 100, 100)

func label(s string) Properties {
	p := DefaultProperties()
	p.Text = s
	return p
}

func started(t *testing.T, d *collision.Detector, extent geom.Box, p Properties, opts ...FinderOption) *Finder {
	t.Helper()
	f := NewFinder(d, extent, fixed10, []Properties{p}, opts...)
	ok, err := f.NextPosition()
	require.NoError(t, err)
	require.True(t, ok)
	return f
}

func TestFindPointPlacement_Positions(t *testing.T) {
	d := collision.NewDetector(canvas)
	f := started(t, d, canvas, label("AB"))

	require.True(t, f.FindPointPlacement(geom.Pt(50, 50)))
	assert.Equal(t, StateDoneSuccess, f.State())
	require.Len(t, f.Placements(), 1)

	gp := f.Placements()[0]
	assert.Equal(t, "AB", gp.Text)
	assert.Equal(t, geom.Pt(50, 50), gp.BasePoint)
	require.Len(t, gp.Glyphs, 2)
	assert.InDelta(t, 40, gp.Glyphs[0].Pos.X, eps)
	assert.InDelta(t, 53, gp.Glyphs[0].Pos.Y, eps)
	assert.InDelta(t, 50, gp.Glyphs[1].Pos.X, eps)
	assert.InDelta(t, 53, gp.Glyphs[1].Pos.Y, eps)

	b := gp.Bounds()
	assert.InDelta(t, 40, b.MinX, eps)
	assert.InDelta(t, 44, b.MinY, eps)
	assert.InDelta(t, 60, b.MaxX, eps)
	assert.InDelta(t, 56, b.MaxY, eps)
	assert.Equal(t, 2, d.Len())
}

func TestFindPointPlacement_SecondAttemptCollides(t *testing.T) {
	d := collision.NewDetector(canvas)
	p := label("AB")
	p.AvoidEdges = true

	assert.True(t, started(t, d, canvas, p).FindPointPlacement(geom.Pt(50, 50)))
	assert.False(t, started(t, d, canvas, p).FindPointPlacement(geom.Pt(50, 50)))
}

func TestFindPointPlacement_NoOverlap(t *testing.T) {
	d := collision.NewDetector(canvas)
	require.True(t, started(t, d, canvas, label("AB")).FindPointPlacement(geom.Pt(50, 50)))

	f := started(t, d, canvas, label("CD"))
	assert.False(t, f.FindPointPlacement(geom.Pt(55, 50)))
	assert.Empty(t, f.Placements())
	assert.Equal(t, StatePointPlacement, f.State())

	assert.True(t, f.FindPointPlacement(geom.Pt(50, 75)))
	assert.Equal(t, 4, d.Len())
}

func TestFindPointPlacement_AllowOverlap(t *testing.T) {
	d := collision.NewDetector(canvas)
	require.True(t, started(t, d, canvas, label("AB")).FindPointPlacement(geom.Pt(50, 50)))

	p := label("AB")
	p.AllowOverlap = true
	assert.True(t, started(t, d, canvas, p).FindPointPlacement(geom.Pt(50, 50)))
}

func TestFindPointPlacement_Margin(t *testing.T) {
	tests := []struct {
		name    string
		margin  float64
		minDist float64
		want    bool
	}{
		{"no margin", 0, 0, true},
		{"small margin", 2, 0, true},
		{"margin covers gap", 5, 0, false},
		{"minimum distance as margin", 0, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := collision.NewDetector(canvas)
			require.True(t, started(t, d, canvas, label("AB")).FindPointPlacement(geom.Pt(50, 50)))

			// Three pixels below the first label.
			p := label("CD")
			p.Margin = tt.margin
			p.MinimumDistance = tt.minDist
			assert.Equal(t, tt.want, started(t, d, canvas, p).FindPointPlacement(geom.Pt(50, 65)))
		})
	}
}

func TestFindPointPlacement_RepeatDistance(t *testing.T) {
	wide := geom.NewBox(0, 0, 200, 100)
	tests := []struct {
		name   string
		text   string
		repeat float64
		want   bool
	}{
		{"same text within distance", "AB", 40, false},
		{"same text beyond distance", "AB", 20, true},
		{"other text", "CD", 40, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := collision.NewDetector(wide)
			require.True(t, started(t, d, wide, label("AB")).FindPointPlacement(geom.Pt(50, 50)))

			// 30 pixels between the two blocks.
			p := label(tt.text)
			p.RepeatDistance = tt.repeat
			assert.Equal(t, tt.want, started(t, d, wide, p).FindPointPlacement(geom.Pt(100, 50)))
		})
	}
}

func TestFindPointPlacement_Edges(t *testing.T) {
	d := collision.NewDetector(canvas)

	p := label("AB")
	p.AvoidEdges = true
	assert.False(t, started(t, d, canvas, p).FindPointPlacement(geom.Pt(5, 50)))

	p = label("AB")
	p.MinimumPadding = 10
	assert.False(t, started(t, d, canvas, p).FindPointPlacement(geom.Pt(15, 50)))
	assert.True(t, started(t, d, canvas, p).FindPointPlacement(geom.Pt(50, 50)))

	f := started(t, d, canvas, label("EF"))
	assert.True(t, f.FindPointPlacement(geom.Pt(5, 80)))
	assert.Len(t, f.Placements(), 1)
}

func TestFindPointPlacement_OutsideCanvasReserves(t *testing.T) {
	d := collision.NewDetector(canvas.Expand(50))
	f := started(t, d, canvas, label("AB"))

	require.True(t, f.FindPointPlacement(geom.Pt(125, 50)))
	assert.Empty(t, f.Placements())
	assert.Equal(t, StateDoneSuccess, f.State())
	assert.Equal(t, 2, d.Len())

	// Completely outside the detector too.
	assert.False(t, f.FindPointPlacement(geom.Pt(400, 50)))
}

func TestFindPointPlacement_GlyphBoxesTallerThanLine(t *testing.T) {
	// A 6px line box around 12px of ink.
	p := label("AB")
	p.Format.LineSpacing = -6

	d := collision.NewDetector(canvas)
	f := started(t, d, canvas, p)
	require.True(t, f.FindPointPlacement(geom.Pt(50, 50)))
	require.Len(t, f.Placements(), 1)
	assert.InDelta(t, 44, f.Placements()[0].Bounds().MinY, eps)

	// The line boxes are 10px apart but the glyph boxes overlap.
	f = started(t, d, canvas, p)
	assert.False(t, f.FindPointPlacement(geom.Pt(50, 60)))
	assert.Equal(t, 2, d.Len())

	for l := range d.Boxes() {
		assert.InDelta(t, 56, l.Box.MaxY, eps)
	}
}

func TestFindPointPlacement_AvoidEdgesUsesGlyphBoxes(t *testing.T) {
	p := label("AB")
	p.Format.LineSpacing = -6
	p.AvoidEdges = true

	// The line box 1..7 fits, the ink -2..10 does not.
	f := started(t, collision.NewDetector(canvas), canvas, p)
	assert.False(t, f.FindPointPlacement(geom.Pt(50, 4)))

	p.AvoidEdges = false
	p.MinimumPadding = 1
	f = started(t, collision.NewDetector(canvas), canvas, p)
	assert.False(t, f.FindPointPlacement(geom.Pt(50, 4)))
}

func TestFindPointPlacement_Orientation(t *testing.T) {
	d := collision.NewDetector(canvas)
	p := label("AB")
	p.Layout.Orientation = 90
	f := started(t, d, canvas, p)

	require.True(t, f.FindPointPlacement(geom.Pt(50, 50)))
	gp := f.Placements()[0]
	assert.InDelta(t, math.Pi/2, gp.Glyphs[0].Rot.Angle, eps)
	assert.InDelta(t, 47, gp.Glyphs[0].Pos.X, eps)
	assert.InDelta(t, 40, gp.Glyphs[0].Pos.Y, eps)
	assert.InDelta(t, 47, gp.Glyphs[1].Pos.X, eps)
	assert.InDelta(t, 50, gp.Glyphs[1].Pos.Y, eps)

	b := gp.Bounds()
	assert.InDelta(t, 12, b.Width(), eps)
	assert.InDelta(t, 20, b.Height(), eps)
}

func TestFindPointPlacement_Displacement(t *testing.T) {
	d := collision.NewDetector(canvas)
	p := label("AB")
	p.Layout.DY = -10
	f := started(t, d, canvas, p)

	require.True(t, f.FindPointPlacement(geom.Pt(50, 50)))
	// Auto alignment puts the block above the anchor, then it moves up 10.
	b := f.Placements()[0].Bounds()
	assert.InDelta(t, 28, b.MinY, eps)
	assert.InDelta(t, 40, b.MaxY, eps)
}

func TestFindPointPlacement_Marker(t *testing.T) {
	d := collision.NewDetector(canvas)
	f := started(t, d, canvas, label("AB"))
	f.SetMarker(&Marker{Width: 8, Height: 8})

	require.True(t, f.FindPointPlacement(geom.Pt(50, 50)))
	gp := f.Placements()[0]
	require.NotNil(t, gp.Marker)
	assert.Equal(t, geom.Pt(50, 50), gp.Marker.Pos)
	assert.Equal(t, geom.BoxAround(geom.Pt(50, 50), 8, 8), gp.Marker.Box)
	assert.Len(t, gp.Boxes, 3)

	// The marker alone blocks a later label.
	other := started(t, d, canvas, label("X"))
	assert.False(t, other.FindPointPlacement(geom.Pt(50, 50)))
}

func TestFindPointPlacement_MarkerUnlock(t *testing.T) {
	d := collision.NewDetector(canvas)
	p := label("AB")
	p.Layout.DY = 20
	m := Marker{Width: 4, Height: 4, Unlock: true}
	f := started(t, d, canvas, p, WithMarker(m))

	require.True(t, f.FindPointPlacement(geom.Pt(50, 30)))
	assert.Equal(t, geom.Pt(50, 30), f.Placements()[0].Marker.Pos)
}

func TestFinder_NextPosition(t *testing.T) {
	d := collision.NewDetector(canvas)
	f := NewFinder(d, canvas, fixed10, []Properties{label("long name"), label("ln")})
	assert.Equal(t, StateNotStarted, f.State())

	ok, err := f.NextPosition()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, StateTryingNextTextVariant, f.State())
	assert.InDelta(t, 90, f.Layout().Width(), eps)

	ok, err = f.NextPosition()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ln", f.Properties().Text)

	for range 2 {
		ok, err = f.NextPosition()
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, StateDoneFailure, f.State())
	}
}

func TestFinder_NoVariants(t *testing.T) {
	f := NewFinder(collision.NewDetector(canvas), canvas, fixed10, nil)
	ok, err := f.NextPosition()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, f.FindPointPlacement(geom.Pt(1, 1)))
}

func TestFinder_ScaleFactor(t *testing.T) {
	d := collision.NewDetector(geom.NewBox(0, 0, 400, 400))
	p := label("AB")
	p.Format.Size = 10
	f := NewFinder(d, d.Extent(), text.FixedShaper{}, []Properties{p}, WithScaleFactor(2))
	_, err := f.NextPosition()
	require.NoError(t, err)

	// 0.6em advance at 20px.
	assert.InDelta(t, 24, f.Layout().Width(), eps)
	assert.InDelta(t, 2.0, f.ScaleFactor(), eps)
}

func TestFinder_Spacing(t *testing.T) {
	tests := []struct {
		name    string
		spacing float64
		length  float64
		width   float64
		want    float64
	}{
		{"no spacing", 0, 100, 20, 100},
		{"two labels", 30, 100, 20, 50},
		{"three labels", 10, 100, 20, 100.0 / 3},
		{"three narrow labels", 20, 100, 10, 100.0 / 3},
		{"path too short", 200, 100, 20, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := label("AB")
			p.Spacing = tt.spacing
			f := started(t, collision.NewDetector(canvas), canvas, p)
			assert.InDelta(t, tt.want, f.Spacing(tt.length, tt.width), eps)
		})
	}
}

func TestToleranceIterator(t *testing.T) {
	collect := func(it *toleranceIterator) []float64 {
		var out []float64
		for it.Next() {
			out = append(out, it.Get())
		}
		return out
	}

	assert.Equal(t, []float64{0, -1, 1, -2, 2, -3, 3}, collect(newToleranceIterator(3, 0)))

	got := collect(newToleranceIterator(0, 10))
	assert.Len(t, got, 11, "half the spacing with one pixel steps")

	// The step grows with the tolerance, so any tolerance takes at most
	// 201 probes.
	for _, tol := range []float64{500, 1e6} {
		got = collect(newToleranceIterator(tol, 0))
		assert.Len(t, got, 201)
		assert.InDelta(t, tol, got[len(got)-1], tol*1e-9)
	}
}

func horizontal(x0, x1 float64) *geom.Path {
	return geom.PathFromPoints(geom.Pt(x0, 50), geom.Pt(x1, 50))
}

func TestFindLinePlacements_DirectionIndependent(t *testing.T) {
	wide := geom.NewBox(0, 0, 200, 100)
	for _, path := range []*geom.Path{horizontal(10, 190), horizontal(190, 10)} {
		d := collision.NewDetector(wide)
		f := started(t, d, wide, label("AB"))
		require.True(t, f.FindLinePlacements(path, false))
		require.Len(t, f.Placements(), 1)

		gp := f.Placements()[0]
		require.Len(t, gp.Glyphs, 2)
		for i, x := range []float64{90, 100} {
			assert.InDelta(t, x, gp.Glyphs[i].Pos.X, eps)
			assert.InDelta(t, 53, gp.Glyphs[i].Pos.Y, eps)
			assert.InDelta(t, 0, gp.Glyphs[i].Rot.Sin, eps)
			assert.InDelta(t, 1, gp.Glyphs[i].Rot.Cos, eps)
		}
	}
}

func TestSingleLinePlacement_Upright(t *testing.T) {
	wide := geom.NewBox(0, 0, 200, 100)
	tests := []struct {
		name       string
		path       *geom.Path
		upright    Upright
		want       bool
		upsideDown bool
	}{
		{"right only forward", horizontal(10, 190), UprightRightOnly, true, false},
		{"right only reversed", horizontal(190, 10), UprightRightOnly, false, false},
		{"left only forward", horizontal(10, 190), UprightLeftOnly, false, false},
		{"forced right reversed", horizontal(190, 10), UprightRight, true, true},
		{"auto down forward", horizontal(10, 190), UprightAutoDown, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := started(t, collision.NewDetector(wide), wide, label("AB"))
			pp := vertexcache.New(tt.path)
			require.True(t, pp.NextSubpath())
			require.True(t, pp.Move(90))
			before := pp.SaveState()

			assert.Equal(t, tt.want, f.SingleLinePlacement(pp, tt.upright))
			assert.Equal(t, before, pp.SaveState())
			if !tt.want {
				assert.Empty(t, f.Placements())
				return
			}
			rot := f.Placements()[0].Glyphs[0].Rot
			assert.Equal(t, tt.upsideDown, rot.Cos < 0)
		})
	}
}

func TestSingleLinePlacement_MaxCharAngleDelta(t *testing.T) {
	wide := geom.NewBox(0, 0, 200, 100)
	// Sharp turn at (100,50).
	path := geom.PathFromPoints(geom.Pt(0, 50), geom.Pt(100, 50), geom.Pt(0, 55))

	tests := []struct {
		name  string
		delta float64
		want  bool
	}{
		{"default limit", 22.5, false},
		{"disabled", 0, true},
		{"half turn", 180, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := label("ABCDE")
			p.MaxCharAngleDelta = tt.delta
			f := started(t, collision.NewDetector(wide), wide, p)

			pp := vertexcache.New(path)
			require.True(t, pp.NextSubpath())
			require.True(t, pp.Move(80))
			assert.Equal(t, tt.want, f.SingleLinePlacement(pp, UprightAuto))
		})
	}
}

func TestFindLinePlacements_Spacing(t *testing.T) {
	wide := geom.NewBox(0, 0, 400, 100)

	p := label("AB")
	p.Spacing = 30
	f := started(t, collision.NewDetector(wide), wide, p)
	require.True(t, f.FindLinePlacements(horizontal(0, 300), false))
	require.Len(t, f.Placements(), 6)
	for i, gp := range f.Placements() {
		assert.InDelta(t, 15+50*float64(i), gp.Glyphs[0].Pos.X, eps)
	}
}

func TestFindLinePlacements_RepeatDistance(t *testing.T) {
	wide := geom.NewBox(0, 0, 400, 100)

	p := label("AB")
	p.Spacing = 30
	p.RepeatDistance = 60
	f := started(t, collision.NewDetector(wide), wide, p)
	require.True(t, f.FindLinePlacements(horizontal(0, 300), false))

	want := []float64{15, 115, 215}
	require.Len(t, f.Placements(), len(want))
	for i, gp := range f.Placements() {
		assert.InDelta(t, want[i], gp.Glyphs[0].Pos.X, eps)
	}
}

func TestFindLinePlacements_SkipsShortPaths(t *testing.T) {
	wide := geom.NewBox(0, 0, 400, 100)

	f := started(t, collision.NewDetector(wide), wide, label("ABCDE"))
	assert.False(t, f.FindLinePlacements(horizontal(0, 40), false))

	p := label("AB")
	p.MinimumPathLength = 100
	f = started(t, collision.NewDetector(wide), wide, p)
	assert.False(t, f.FindLinePlacements(horizontal(0, 80), false))
	assert.True(t, f.FindLinePlacements(horizontal(0, 120), false))
}

func TestFindLinePlacements_Points(t *testing.T) {
	wide := geom.NewBox(0, 0, 400, 100)
	f := started(t, collision.NewDetector(wide), wide, label("AB"))

	require.True(t, f.FindLinePlacements(horizontal(0, 300), true))
	require.Len(t, f.Placements(), 1)
	base := f.Placements()[0].BasePoint
	assert.InDelta(t, 150, base.X, eps)
	assert.InDelta(t, 50, base.Y, eps)
}

func TestSimpleVariants(t *testing.T) {
	base := label("AB")
	base.Layout.DX, base.Layout.DY = 5, -3
	base.Layout.HAlign = text.HAlignLeft

	vs := SimpleVariants(base, []Direction{North, East}, []float64{8})
	require.Len(t, vs, 4)

	want := []struct{ dx, dy, size float64 }{
		{0, -3, 10}, {5, 0, 10}, {0, -3, 8}, {5, 0, 8},
	}
	for i, w := range want {
		assert.InDelta(t, w.dx, vs[i].Layout.DX, eps, "variant %d", i)
		assert.InDelta(t, w.dy, vs[i].Layout.DY, eps, "variant %d", i)
		assert.InDelta(t, w.size, vs[i].Format.Size, eps, "variant %d", i)
		assert.Equal(t, text.HAlignAuto, vs[i].Layout.HAlign)
	}

	exact := SimpleVariants(base, []Direction{Exact}, nil)
	require.Len(t, exact, 1)
	assert.Equal(t, base, exact[0])
}

func TestParseSimple(t *testing.T) {
	base := label("AB")
	base.Layout.DX, base.Layout.DY = 4, 4

	vs, err := ParseSimple(base, "N, SW ,X,12")
	require.NoError(t, err)
	require.Len(t, vs, 6)
	assert.InDelta(t, -4, vs[1].Layout.DX, eps)
	assert.InDelta(t, 4, vs[1].Layout.DY, eps)
	assert.InDelta(t, 12, vs[5].Format.Size, eps)

	_, err = ParseSimple(base, "N,Q")
	assert.ErrorIs(t, err, ErrUnknownDirection)
	_, err = ParseSimple(base, "12,N")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestEnumsUnmarshalText(t *testing.T) {
	var p Placement
	require.NoError(t, p.UnmarshalText([]byte("Interior")))
	assert.Equal(t, Interior, p)
	assert.Equal(t, "interior", p.String())
	assert.ErrorIs(t, p.UnmarshalText([]byte("area")), ErrUnknownPlacement)

	var u Upright
	require.NoError(t, u.UnmarshalText([]byte("left_only")))
	assert.Equal(t, UprightLeftOnly, u)
	assert.Equal(t, "left-only", u.String())
	assert.ErrorIs(t, u.UnmarshalText([]byte("sideways")), ErrUnknownUpright)

	assert.Equal(t, "DoneFailure", StateDoneFailure.String())
	assert.Equal(t, "NE", NorthEast.String())
}
