package seqtrie

import "errors"

var (
	ErrEmptyPath = errors.New("seqtrie: empty path")
	ErrNilTrie   = errors.New("seqtrie: nil trie")
)
