package keyed

import "strings"

// IdentityCodec passes segment slices through unchanged.
func IdentityCodec[S comparable]() Codec[[]S, S] {
	return Codec[[]S, S]{
		Encode: func(k []S) []S { return k },
		Decode: func(p []S) []S { return p },
	}
}

// SplitCodec splits string keys on sep and joins them back with it. Note the
// empty string encodes to a single empty segment, which Join inverts, so the
// round-trip law holds for it too.
func SplitCodec(sep string) Codec[string, string] {
	return Codec[string, string]{
		Encode: func(k string) []string { return strings.Split(k, sep) },
		Decode: func(p []string) string { return strings.Join(p, sep) },
	}
}

// RuneCodec splits string keys into individual runes.
func RuneCodec() Codec[string, rune] {
	return Codec[string, rune]{
		Encode: func(k string) []rune { return []rune(k) },
		Decode: func(p []rune) string { return string(p) },
	}
}

// Identity returns a trie keyed directly by segment slices.
func Identity[S comparable, V any]() *Trie[[]S, S, V] {
	return New[[]S, S, V](IdentityCodec[S]())
}

// SplitStrings returns a trie keyed by strings split on sep, e.g. path-like
// keys with sep "/".
func SplitStrings[V any](sep string) *Trie[string, string, V] {
	return New[string, string, V](SplitCodec(sep))
}

// Runes returns a trie keyed by strings one rune at a time, the classic
// character trie.
func Runes[V any]() *Trie[string, rune, V] {
	return New[string, rune, V](RuneCodec())
}
