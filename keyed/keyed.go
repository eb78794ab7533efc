package keyed

import (
	"io"
	"iter"

	seqtrie "github.com/forestrie/go-seqtrie"
)

// Codec converts keys to and from segment form. Both functions must be pure,
// and Decode(Encode(k)) == k must hold for every valid k; the package trusts
// this rather than checking it (see doc.go).
type Codec[K any, S comparable] struct {
	Encode func(K) []S
	Decode func([]S) K
}

// Trie is a seqtrie keyed by K through a Codec.
type Trie[K any, S comparable, V any] struct {
	codec Codec[K, S]
	trie  *seqtrie.Trie[S, V]
}

// New returns an empty trie keyed through codec.
func New[K any, S comparable, V any](codec Codec[K, S]) *Trie[K, S, V] {
	return &Trie[K, S, V]{codec: codec, trie: seqtrie.New[S, V]()}
}

// Engine returns the underlying seqtrie handle. Mutations through it are
// visible through the wrapper, exactly as with any aliased handle.
func (t *Trie[K, S, V]) Engine() *seqtrie.Trie[S, V] {
	return t.trie
}

// Get returns the value stored exactly at key.
func (t *Trie[K, S, V]) Get(key K) (V, bool) {
	return t.trie.Get(t.codec.Encode(key))
}

// Set stores v at key, overwriting any previous value there.
func (t *Trie[K, S, V]) Set(key K, v V) {
	t.trie.Set(t.codec.Encode(key), v)
}

// Has reports whether a value is stored exactly at key.
func (t *Trie[K, S, V]) Has(key K) bool {
	return t.trie.Has(t.codec.Encode(key))
}

// HasPrefix reports whether key exists as a stored key or a prefix of one.
func (t *Trie[K, S, V]) HasPrefix(key K) bool {
	return t.trie.HasPrefix(t.codec.Encode(key))
}

// CountPrefix returns the number of values stored at or below key.
func (t *Trie[K, S, V]) CountPrefix(key K) int {
	return t.trie.CountPrefix(t.codec.Encode(key))
}

// Count returns the number of values stored in the trie.
func (t *Trie[K, S, V]) Count() int {
	return t.trie.Count()
}

// SubTrie returns a trie rooted at key, sharing the receiver's codec and
// aliasing the reached node per the engine's SubTrie semantics, or false when
// no such prefix exists.
func (t *Trie[K, S, V]) SubTrie(key K) (*Trie[K, S, V], bool) {
	sub, ok := t.trie.SubTrie(t.codec.Encode(key))
	if !ok {
		return nil, false
	}
	return &Trie[K, S, V]{codec: t.codec, trie: sub}, true
}

// Graft attaches other's root at key per the engine's Graft semantics,
// including its ErrEmptyPath and ErrNilTrie refusals.
func (t *Trie[K, S, V]) Graft(key K, other *Trie[K, S, V]) error {
	var peer *seqtrie.Trie[S, V]
	if other != nil {
		peer = other.trie
	}
	return t.trie.Graft(t.codec.Encode(key), peer)
}

// DepthFirst returns the engine's pre-order iterator with paths decoded back
// into keys.
func (t *Trie[K, S, V]) DepthFirst() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for path, v := range t.trie.DepthFirst() {
			if !yield(t.codec.Decode(path), v) {
				return
			}
		}
	}
}

// BreadthFirst returns the engine's level-order iterator with paths decoded
// back into keys.
func (t *Trie[K, S, V]) BreadthFirst() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for path, v := range t.trie.BreadthFirst() {
			if !yield(t.codec.Decode(path), v) {
				return
			}
		}
	}
}

// Fprint writes the engine's tree diagram to w; segments are shown in
// segment form, not decoded.
func (t *Trie[K, S, V]) Fprint(w io.Writer) error {
	return t.trie.Fprint(w)
}

func (t *Trie[K, S, V]) String() string {
	return t.trie.String()
}
