package cache

// entry is a node of the recency list. The list is circular around a
// sentinel, so unlinking never needs nil checks.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// recency orders entries from most (front) to least (back) recently used.
// It is not safe for concurrent use.
type recency[K comparable, V any] struct {
	root entry[K, V]
	n    int
}

func (r *recency[K, V]) init() {
	r.root.next = &r.root
	r.root.prev = &r.root
	r.n = 0
}

func (r *recency[K, V]) pushFront(e *entry[K, V]) {
	e.prev = &r.root
	e.next = r.root.next
	r.root.next.prev = e
	r.root.next = e
	r.n++
}

func (r *recency[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
	r.n--
}

func (r *recency[K, V]) moveToFront(e *entry[K, V]) {
	if r.root.next == e {
		return
	}
	r.unlink(e)
	r.pushFront(e)
}

// back returns the least recently used entry, or nil.
func (r *recency[K, V]) back() *entry[K, V] {
	if r.n == 0 {
		return nil
	}
	return r.root.prev
}
