package seqtrie

import (
	"iter"
	"slices"
)

// DepthFirst returns an iterator over all (path, value) pairs in pre-order:
// a stored value is yielded before any value stored below it, and children
// are visited in insertion order. The iterator can be used directly with a
// for-range loop and restarts from the root each time it is ranged over.
//
//	for path, v := range t.DepthFirst() {
//	    ...
//	}
//
// Yielded path slices are freshly allocated and safe for the caller to keep.
// Mutating the trie during iteration is undefined.
func (t *Trie[S, V]) DepthFirst() iter.Seq2[[]S, V] {
	return func(yield func([]S, V) bool) {
		t.root.walkRec(nil, yield)
	}
}

func (n *node[S, V]) walkRec(path []S, yield func([]S, V) bool) bool {
	if n.hasValue {
		if !yield(slices.Clone(path), n.value) {
			return false
		}
	}
	for _, seg := range n.order {
		if !n.children[seg].walkRec(append(path, seg), yield) {
			return false
		}
	}
	return true
}

// BreadthFirst returns an iterator over all (path, value) pairs in level
// order: every value at a shallower depth is yielded before any deeper one,
// and within a depth pairs follow the queue order, which interleaves each
// parent's children in insertion order. Same usage and caveats as DepthFirst.
func (t *Trie[S, V]) BreadthFirst() iter.Seq2[[]S, V] {
	return func(yield func([]S, V) bool) {
		type item struct {
			n    *node[S, V]
			path []S
		}
		queue := []item{{t.root, nil}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur.n.hasValue && !yield(cur.path, cur.n.value) {
				return
			}
			for _, seg := range cur.n.order {
				path := make([]S, len(cur.path)+1)
				copy(path, cur.path)
				path[len(cur.path)] = seg
				queue = append(queue, item{cur.n.children[seg], path})
			}
		}
	}
}
