package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_Intersects(t *testing.T) {
	base := NewBox(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Box
		want bool
	}{
		{"disjoint", NewBox(20, 20, 30, 30), false},
		{"touching edge", NewBox(10, 0, 20, 10), true},
		{"overlap", NewBox(5, 5, 15, 15), true},
		{"contained", NewBox(2, 2, 3, 3), true},
		{"left of", NewBox(-10, 0, -0.1, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Intersects(tt.o))
			assert.Equal(t, tt.want, tt.o.Intersects(base))
		})
	}
}

func TestBox_ContainsAndExpand(t *testing.T) {
	b := NewBox(10, 10, 0, 0)
	assert.Equal(t, Box{0, 0, 10, 10}, b)
	assert.True(t, b.Contains(NewBox(1, 1, 9, 9)))
	assert.False(t, b.Contains(NewBox(1, 1, 11, 9)))
	assert.Equal(t, Box{-2, -2, 12, 12}, b.Expand(2))
	assert.Equal(t, Pt(5, 5), b.Center())
	assert.Equal(t, Box{15, 15, 25, 25}, b.ReCenter(Pt(20, 20)))
	assert.Equal(t, Box{1, 2, 11, 12}, b.Move(Pt(1, 2)))
}

func TestEmptyBox_IsUnionIdentity(t *testing.T) {
	b := EmptyBox()
	assert.False(t, b.Valid())
	b = b.ExpandToInclude(Pt(3, 4))
	assert.Equal(t, Box{3, 4, 3, 4}, b)
	assert.Equal(t, NewBox(0, 0, 1, 1), EmptyBox().Union(NewBox(0, 0, 1, 1)))
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, -math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{2 * math.Pi, 0},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NormalizeAngle(tt.in), 1e-9, "NormalizeAngle(%v)", tt.in)
	}
}

func TestPoint_Rotate(t *testing.T) {
	p := Pt(1, 0).Rotate(NewRotation(math.Pi / 2))
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	m := Translate(10, 0).Multiply(Rotate(NewRotation(math.Pi)))
	q := m.TransformPoint(Pt(1, 0))
	assert.InDelta(t, 9, q.X, 1e-12)
	assert.InDelta(t, 0, q.Y, 1e-12)
}

func TestPath_Subpaths(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	p.MoveTo(20, 20)
	p.LineTo(30, 20)

	subs := p.Subpaths()
	require.Len(t, subs, 2)
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}}, subs[0])
	assert.Equal(t, []Point{{20, 20}, {30, 20}}, subs[1])
	assert.Equal(t, NewBox(0, 0, 30, 20), p.Bounds())
}

func TestClipPolyline(t *testing.T) {
	clip := NewBox(0, 0, 100, 100)

	t.Run("inside", func(t *testing.T) {
		pts := []Point{{10, 10}, {50, 50}, {90, 10}}
		got := ClipPolyline(clip, pts)
		require.Len(t, got, 1)
		assert.Equal(t, pts, got[0])
	})

	t.Run("leaves and re-enters", func(t *testing.T) {
		pts := []Point{{50, 50}, {150, 50}, {150, 80}, {50, 80}}
		got := ClipPolyline(clip, pts)
		require.Len(t, got, 2)
		assert.Equal(t, []Point{{50, 50}, {100, 50}}, got[0])
		assert.Equal(t, []Point{{100, 80}, {50, 80}}, got[1])
	})

	t.Run("outside", func(t *testing.T) {
		assert.Empty(t, ClipPolyline(clip, []Point{{-10, -10}, {-5, 200}}))
	})
}

func TestMiddlePoint(t *testing.T) {
	p, ok := MiddlePoint([]Point{{0, 0}, {10, 0}, {10, 30}})
	require.True(t, ok)
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 10, p.Y, 1e-9)
}

func TestCentroidAndInteriorPoint(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	c, ok := Centroid(square)
	require.True(t, ok)
	assert.InDelta(t, 5, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)
	assert.InDelta(t, 100, RingArea(square), 1e-9)

	// U shape: the centroid falls into the notch.
	u := []Point{{0, 0}, {30, 0}, {30, 30}, {20, 30}, {20, 5}, {10, 5}, {10, 30}, {0, 30}}
	ip, ok := InteriorPoint(u)
	require.True(t, ok)
	assert.False(t, ip.X > 10 && ip.X < 20, "interior point %v lies in the notch", ip)
}
