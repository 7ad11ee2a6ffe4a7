package collision

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/maplabel/geom"
)

var canvas = geom.NewBox(0, 0, 256, 256)

func TestQuadTree_InsertQueryRoundTrip(t *testing.T) {
	q := NewQuadTree[int](canvas)
	r := rand.New(rand.NewPCG(1, 2))

	boxes := make([]geom.Box, 0, 500)
	for i := range 500 {
		x, y := r.Float64()*250, r.Float64()*250
		w, h := 0.5+r.Float64()*20, 0.5+r.Float64()*10
		b := geom.NewBox(x, y, x+w, y+h)
		boxes = append(boxes, b)
		q.Insert(b, i)
	}
	require.Equal(t, len(boxes), q.Len())

	for i, b := range boxes {
		found := false
		for got, id := range q.Query(b) {
			if id == i {
				found = true
				assert.Equal(t, b, got)
				break
			}
		}
		assert.True(t, found, "box %d %v not found by its own query", i, b)
	}
}

func TestQuadTree_OutsideExtentKeptAtRoot(t *testing.T) {
	q := NewQuadTree[string](canvas)
	outside := geom.NewBox(-50, -50, -40, -40)
	q.Insert(outside, "outside")

	var got []string
	for _, v := range q.Query(geom.NewBox(-45, -45, -44, -44)) {
		got = append(got, v)
	}
	assert.Equal(t, []string{"outside"}, got)
}

func TestQuadTree_ClearKeepsExtent(t *testing.T) {
	q := NewQuadTree[int](canvas, WithMaxDepth(3), WithRatio(0.6))
	q.Insert(geom.NewBox(1, 1, 2, 2), 1)
	q.Insert(geom.NewBox(200, 200, 201, 201), 2)
	require.Equal(t, 2, q.Len())

	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, canvas, q.Extent())
	for range q.All() {
		t.Fatal("cleared tree yielded an item")
	}
}

func TestQuadTree_StraddlingBoxStaysHigh(t *testing.T) {
	q := NewQuadTree[int](canvas)
	// Spans the whole width, so no child can hold it.
	q.Insert(geom.NewBox(0, 100, 256, 110), 1)
	assert.Len(t, q.nodes, 1)

	// Small box near the center fits the overlapping children.
	q.Insert(geom.NewBox(125, 125, 130, 130), 2)
	assert.Greater(t, len(q.nodes), 1)
}

func TestDetector_NoOverlap(t *testing.T) {
	d := NewDetector(canvas)
	r := rand.New(rand.NewPCG(7, 11))

	var accepted []geom.Box
	for range 400 {
		x, y := r.Float64()*240, r.Float64()*240
		b := geom.NewBox(x, y, x+12, y+8)
		if d.HasPlacement(b, 0) {
			d.Insert(b, "")
			accepted = append(accepted, b)
		}
	}
	require.NotEmpty(t, accepted)
	assert.Equal(t, len(accepted), d.Len())

	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			assert.False(t, accepted[i].Intersects(accepted[j]),
				"boxes %v and %v overlap", accepted[i], accepted[j])
		}
	}
}

func TestDetector_AllowOverlapBranch(t *testing.T) {
	d := NewDetector(canvas)
	b := geom.NewBox(10, 10, 20, 20)
	d.Insert(b, "")
	// Overlapping insertion is the caller's decision.
	d.Insert(b.Move(geom.Pt(2, 2)), "")
	assert.Equal(t, 2, d.Len())
	assert.False(t, d.HasPlacement(b, 0))
}

func TestDetector_Margin(t *testing.T) {
	d := NewDetector(canvas)
	d.Insert(geom.NewBox(10, 10, 20, 20), "")

	candidate := geom.NewBox(25, 10, 35, 20)
	assert.True(t, d.HasPlacement(candidate, 0))
	assert.True(t, d.HasPlacement(candidate, 4.9))
	assert.False(t, d.HasPlacement(candidate, 5))
}

func TestDetector_RepeatDistance(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		offset float64
		want   bool
	}{
		{"same key closer than repeat distance", "Main St", 30, false},
		{"same key farther than repeat distance", "Main St", 70, true},
		{"different key close by", "Side St", 30, true},
		{"empty key ignores repeat distance", "", 30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDetector(canvas)
			first := geom.NewBox(10, 100, 40, 110)
			d.Insert(first, "Main St")

			second := first.Move(geom.Pt(tt.offset+first.Width(), 0))
			assert.Equal(t, tt.want, d.HasPlacementRepeat(second, 0, tt.key, 50))
		})
	}
}

func TestDetector_RepeatNotLargerThanMargin(t *testing.T) {
	d := NewDetector(canvas)
	d.Insert(geom.NewBox(10, 10, 20, 20), "k")
	candidate := geom.NewBox(30, 10, 40, 20)
	assert.Equal(t, d.HasPlacement(candidate, 5), d.HasPlacementRepeat(candidate, 5, "k", 5))
	assert.True(t, d.HasPlacementRepeat(candidate, 5, "k", 5))
	assert.False(t, d.HasPlacementRepeat(candidate, 5, "k", 15))
}

func TestDetector_BoxesAndClear(t *testing.T) {
	d := NewDetector(canvas)
	for i := range 5 {
		x := float64(i * 30)
		d.Insert(geom.NewBox(x, 0, x+10, 10), fmt.Sprintf("k%d", i))
	}

	keys := map[string]bool{}
	for l := range d.Boxes() {
		keys[l.Key] = true
	}
	assert.Len(t, keys, 5)

	d.Clear()
	assert.Zero(t, d.Len())
	assert.True(t, d.HasPlacement(geom.NewBox(0, 0, 10, 10), 0))
	assert.Equal(t, canvas, d.Extent())
}
