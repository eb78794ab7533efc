package seqtrie

// SubTrie returns a trie rooted at the node path reaches, or false when no
// such prefix exists. It never creates nodes. The returned handle aliases the
// reached node rather than copying it: mutation through the subtrie is
// visible through the original and vice versa, and two SubTrie calls at the
// same path return handles over the one node.
func (t *Trie[S, V]) SubTrie(path []S) (*Trie[S, V], bool) {
	n, rest := t.descend(path, false)
	if len(rest) != 0 {
		return nil, false
	}
	return &Trie[S, V]{root: n}, true
}

// Graft attaches other's root as the child at path's final segment, creating
// interior nodes for the leading segments as needed. The attachment aliases,
// it does not copy: after Graft the two tries share the subtree and mutations
// through either are visible through both.
//
// The path must name a child slot, so an empty path is refused with
// ErrEmptyPath regardless of the other arguments; the whole-root case is
// already covered by using other directly. A nil other is refused with
// ErrNilTrie.
func (t *Trie[S, V]) Graft(path []S, other *Trie[S, V]) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if other == nil || other.root == nil {
		return ErrNilTrie
	}
	parent, _ := t.descend(path[:len(path)-1], true)
	parent.attach(path[len(path)-1], other.root)
	return nil
}
