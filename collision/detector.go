// Package collision tracks the boxes of labels that have already been placed
// during a render pass and answers whether a new candidate box is free.
//
// Boxes are stored in a quad-tree with overlapping child regions. A box may
// carry a repeat key (usually the label text); HasPlacementRepeat rejects
// candidates that come closer than a given distance to a box with the same
// key, which keeps identical labels from crowding a road.
//
// A Detector belongs to one render pass and is not safe for concurrent use.
package collision

import (
	"iter"

	"github.com/gogpu/maplabel/geom"
)

// Label is a box stored in the detector.
type Label struct {
	Box geom.Box
	Key string
}

// Detector is the label collision detector.
type Detector struct {
	tree *QuadTree[string]
}

// NewDetector creates an empty detector covering extent.
func NewDetector(extent geom.Box, opts ...Option) *Detector {
	return &Detector{tree: NewQuadTree[string](extent, opts...)}
}

// Insert adds box unconditionally. key may be empty.
func (d *Detector) Insert(box geom.Box, key string) {
	d.tree.Insert(box, key)
}

// HasPlacement reports whether box, grown by margin on every side, is free
// of all stored boxes.
func (d *Detector) HasPlacement(box geom.Box, margin float64) bool {
	q := box
	if margin > 0 {
		q = box.Expand(margin)
	}
	for b := range d.tree.Query(q) {
		if b.Intersects(q) {
			return false
		}
	}
	return true
}

// HasPlacementRepeat is HasPlacement that also rejects box when a stored
// box with the same non-empty key lies within repeatDistance of it.
// The distance test is a box expansion, not a true distance.
// A repeatDistance not larger than margin adds nothing to the margin test.
func (d *Detector) HasPlacementRepeat(box geom.Box, margin float64, key string, repeatDistance float64) bool {
	if key == "" || repeatDistance <= margin {
		return d.HasPlacement(box, margin)
	}

	marginBox := box
	if margin > 0 {
		marginBox = box.Expand(margin)
	}
	repeatBox := box.Expand(repeatDistance)

	for b, k := range d.tree.Query(repeatBox) {
		if b.Intersects(marginBox) {
			return false
		}
		if k == key && b.Intersects(repeatBox) {
			return false
		}
	}
	return true
}

// Extent returns the region covered by the detector.
func (d *Detector) Extent() geom.Box {
	return d.tree.Extent()
}

// Clear drops every stored box.
func (d *Detector) Clear() {
	d.tree.Clear()
}

// Len returns the number of stored boxes.
func (d *Detector) Len() int {
	return d.tree.Len()
}

// Boxes yields every stored label.
func (d *Detector) Boxes() iter.Seq[Label] {
	return func(yield func(Label) bool) {
		for b, k := range d.tree.All() {
			if !yield(Label{Box: b, Key: k}) {
				return
			}
		}
	}
}
