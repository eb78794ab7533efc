package seqtrie

// node is the storage unit of the graph: an insertion-ordered child map plus
// an optional terminal value. hasValue distinguishes a stored zero value from
// absence; order carries the child iteration order the enumerators rely on.
type node[S comparable, V any] struct {
	children map[S]*node[S, V]
	order    []S
	value    V
	hasValue bool
}

func newNode[S comparable, V any]() *node[S, V] {
	return &node[S, V]{}
}

// attach sets the child at seg, appending to the iteration order only when
// the slot is new. Replacing an existing slot keeps its original position.
func (n *node[S, V]) attach(seg S, child *node[S, V]) {
	if n.children == nil {
		n.children = make(map[S]*node[S, V])
	}
	if _, ok := n.children[seg]; !ok {
		n.order = append(n.order, seg)
	}
	n.children[seg] = child
}

func (n *node[S, V]) set(v V) {
	n.value = v
	n.hasValue = true
}

func (n *node[S, V]) countTerminals() int {
	c := 0
	if n.hasValue {
		c = 1
	}
	for _, seg := range n.order {
		c += n.children[seg].countTerminals()
	}
	return c
}
