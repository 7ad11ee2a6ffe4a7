package collision

import (
	"iter"

	"github.com/gogpu/maplabel/geom"
)

// DefaultRatio is the size of a child region relative to its parent.
// Values above 0.5 make the four children overlap, so a small box that
// straddles the center line still fits entirely into one child.
const DefaultRatio = 0.55

// DefaultMaxDepth limits how deep boxes are pushed into the tree.
const DefaultMaxDepth = 8

// noChild marks an unallocated child slot.
const noChild = -1

// quadNode is one region of the tree. Children are indices into the
// owning tree's node arena.
type quadNode[T any] struct {
	extent   geom.Box
	children [4]int32
	items    []entry[T]
}

type entry[T any] struct {
	box  geom.Box
	item T
}

// QuadTree is a region quad-tree holding boxes with attached values.
//
// Nodes live in a single arena slice and refer to their children by index;
// nodes are never freed individually, only all at once by Clear.
//
// A QuadTree is not safe for concurrent use.
type QuadTree[T any] struct {
	nodes    []quadNode[T]
	ratio    float64
	maxDepth int
	count    int
}

// NewQuadTree creates a tree covering extent.
func NewQuadTree[T any](extent geom.Box, opts ...Option) *QuadTree[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	q := &QuadTree[T]{
		ratio:    cfg.ratio,
		maxDepth: cfg.maxDepth,
	}
	q.nodes = append(q.nodes, newQuadNode[T](extent))
	return q
}

func newQuadNode[T any](extent geom.Box) quadNode[T] {
	return quadNode[T]{
		extent:   extent,
		children: [4]int32{noChild, noChild, noChild, noChild},
	}
}

// Extent returns the region covered by the root node.
func (q *QuadTree[T]) Extent() geom.Box {
	return q.nodes[0].extent
}

// Len returns the number of stored items.
func (q *QuadTree[T]) Len() int {
	return q.count
}

// Clear removes all items and child nodes, keeping the root extent.
func (q *QuadTree[T]) Clear() {
	extent := q.nodes[0].extent
	q.nodes = q.nodes[:0]
	q.nodes = append(q.nodes, newQuadNode[T](extent))
	q.count = 0
}

// Insert stores item under box. The item descends while one child region
// fully contains box and is kept at the first node where no child does.
// Boxes outside the root extent are kept at the root.
func (q *QuadTree[T]) Insert(box geom.Box, item T) {
	idx := int32(0)
	for depth := 1; depth < q.maxDepth; depth++ {
		next := q.childContaining(idx, box)
		if next == noChild {
			break
		}
		idx = next
	}
	q.nodes[idx].items = append(q.nodes[idx].items, entry[T]{box: box, item: item})
	q.count++
}

// childContaining returns the child of node idx whose region contains box,
// allocating the child on first use, or noChild.
func (q *QuadTree[T]) childContaining(idx int32, box geom.Box) int32 {
	regions := q.split(q.nodes[idx].extent)
	for i, r := range regions {
		if !r.Contains(box) {
			continue
		}
		child := q.nodes[idx].children[i]
		if child == noChild {
			child = int32(len(q.nodes))
			q.nodes = append(q.nodes, newQuadNode[T](r))
			q.nodes[idx].children[i] = child
		}
		return child
	}
	return noChild
}

// split returns the four corner regions of extent, each scaled by ratio.
func (q *QuadTree[T]) split(extent geom.Box) [4]geom.Box {
	w := extent.Width() * q.ratio
	h := extent.Height() * q.ratio
	lox, loy := extent.MinX, extent.MinY
	hix, hiy := extent.MaxX, extent.MaxY
	return [4]geom.Box{
		{MinX: lox, MinY: loy, MaxX: lox + w, MaxY: loy + h},
		{MinX: hix - w, MinY: loy, MaxX: hix, MaxY: loy + h},
		{MinX: lox, MinY: hiy - h, MaxX: lox + w, MaxY: hiy},
		{MinX: hix - w, MinY: hiy - h, MaxX: hix, MaxY: hiy},
	}
}

// Query yields every stored item whose node region intersects box.
// The root's own items are always yielded because they may lie outside
// the root extent. Callers still test the item boxes themselves.
func (q *QuadTree[T]) Query(box geom.Box) iter.Seq2[geom.Box, T] {
	return func(yield func(geom.Box, T) bool) {
		q.query(0, box, true, yield)
	}
}

func (q *QuadTree[T]) query(idx int32, box geom.Box, root bool, yield func(geom.Box, T) bool) bool {
	n := &q.nodes[idx]
	if !root && !n.extent.Intersects(box) {
		return true
	}
	for _, e := range n.items {
		if !yield(e.box, e.item) {
			return false
		}
	}
	if !root || n.extent.Intersects(box) {
		for _, c := range n.children {
			if c == noChild {
				continue
			}
			if !q.query(c, box, false, yield) {
				return false
			}
		}
	}
	return true
}

// All yields every stored item in node order.
func (q *QuadTree[T]) All() iter.Seq2[geom.Box, T] {
	return func(yield func(geom.Box, T) bool) {
		for i := range q.nodes {
			for _, e := range q.nodes[i].items {
				if !yield(e.box, e.item) {
					return
				}
			}
		}
	}
}
