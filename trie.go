package seqtrie

// Trie maps ordered sequences of segments to values. A Trie is a handle over
// a node graph; handles obtained via SubTrie or Graft alias the same graph
// (see doc.go). The zero Trie is not usable, call New.
type Trie[S comparable, V any] struct {
	root *node[S, V]
}

// New returns an empty trie.
func New[S comparable, V any]() *Trie[S, V] {
	return &Trie[S, V]{root: newNode[S, V]()}
}

// descend is the single traversal primitive every operation builds on. It
// walks path from the root one segment at a time and returns the node it
// reached together with the unconsumed suffix: an empty suffix is a full
// match. With insert set, missing children are created as the walk goes, so
// the suffix is always empty on return. An empty path is the identity walk
// and returns the root at once.
func (t *Trie[S, V]) descend(path []S, insert bool) (*node[S, V], []S) {
	n := t.root
	for i, seg := range path {
		child := n.children[seg]
		if child == nil {
			if !insert {
				return n, path[i:]
			}
			child = newNode[S, V]()
			n.attach(seg, child)
		}
		n = child
	}
	return n, nil
}

// Get returns the value stored exactly at path. A path that exists only as a
// prefix of longer keys, with no value of its own, reports false just like a
// path that was never set.
func (t *Trie[S, V]) Get(path []S) (V, bool) {
	n, rest := t.descend(path, false)
	if len(rest) != 0 || !n.hasValue {
		var zero V
		return zero, false
	}
	return n.value, true
}

// Set stores v at path, overwriting any previous value there. Interior nodes
// are created as needed.
func (t *Trie[S, V]) Set(path []S, v V) {
	n, _ := t.descend(path, true)
	n.set(v)
}

// Has reports whether a value is stored exactly at path. Unlike Get it
// distinguishes a stored zero value from absence.
func (t *Trie[S, V]) Has(path []S) bool {
	n, rest := t.descend(path, false)
	return len(rest) == 0 && n.hasValue
}

// HasPrefix reports whether path exists in the graph at all, as a stored key
// or as a prefix of one. Weaker than Has: every prefix of every stored key
// satisfies it, including the empty path.
func (t *Trie[S, V]) HasPrefix(path []S) bool {
	_, rest := t.descend(path, false)
	return len(rest) == 0
}

// CountPrefix returns the number of values stored at or below path, or 0 if
// no such prefix exists.
func (t *Trie[S, V]) CountPrefix(path []S) int {
	sub, ok := t.SubTrie(path)
	if !ok {
		return 0
	}
	return sub.Count()
}

// Count returns the number of values stored in the trie. It is a full walk
// of the graph on every call; callers that need cheap sizing must keep their
// own counter.
func (t *Trie[S, V]) Count() int {
	return t.root.countTerminals()
}
