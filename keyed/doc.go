package keyed

/*

# Typed-key adapter over seqtrie

This package presents a seqtrie keyed by an arbitrary key type instead of a
ready-made segment slice. A Trie here is nothing but a seqtrie handle plus a
Codec: a pair of pure functions converting the key type to and from segment
form. Every operation encodes its key arguments before delegating to the
engine, and the enumerators decode yielded paths back into keys; there is no
further state and no failure mode beyond the engine's own.

The codec carries one law the package trusts rather than checks:

	Decode(Encode(k)) == k

for every valid key. Verifying it at runtime would cost a Decode on every
write to catch only codecs that are simply wrong, so the burden sits with the
codec author. Decode's behavior on a segment sequence Encode never produced
is the codec's business too; the presets here all round-trip anything the
engine can hand them.

Three standard codecs are provided: the identity over segment slices, strings
split on a fixed delimiter, and strings split into runes.

Subtrie and graft keep the engine's aliasing semantics unchanged; the wrapper
returned by SubTrie shares the receiver's codec, so with the delimiter codec
a subtrie taken at "usr/local" yields keys like "bin/ruby", relative to its
own root.

*/
