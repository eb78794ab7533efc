package seqtrie

/*

# Sequence-keyed trie primitives for Forestrie

This package provides an in-memory trie mapping ordered sequences of
comparable segments to values. It is the navigation counterpart to the
on-disk structures in `urkle`: where urkle commits a fixed key shape into
preallocated storage, seqtrie is a mutable pointer graph for arbitrary
segment alphabets, intended for path tables, routing-style prefix lookups
and staged index construction.

It follows the same "functional primitives" style as the other go-merklelog
packages:

- one shared traversal primitive underneath every operation
- small, composable wrappers on top of it
- a burden of knowledge on the caller where checking would cost the hot path

## Core invariants

1. A node's children iterate in insertion order. This order is load-bearing:
   the depth-first and breadth-first enumeration guarantees are defined in
   terms of it, so children are held as a map paired with an ordered segment
   slice rather than a bare map.

2. A node with neither a value nor children never persists. Nodes are only
   created by an inserting descend, and every inserting caller immediately
   gives the final node a value (Set) or a child (Graft), so no pruning pass
   is ever needed.

3. SubTrie and Graft alias nodes, they never copy. Two Trie handles whose
   roots are the same node are interchangeable views over the same data, and
   a mutation through either is immediately visible through the other. The
   graph lives as long as any handle into it does.

## Best-effort traversal

The descend primitive walks a path segment by segment and, in read mode,
stops at the first missing child, reporting the node it reached together
with the unconsumed suffix. An empty suffix means a full match. Missing data
is therefore an ordinary (node, remainder) outcome, never an error; the only
errors in this package are misuse of Graft (see types.go).

In insert mode the same walk creates missing children as it goes and always
consumes the whole path.

## What this package does not do

- No deletion. Removal would break invariant (2) without a pruning pass and
  no current caller needs it.
- No locking. Concurrent mutation of a graph, including through aliased
  handles, is undefined; callers that share a trie across goroutines must
  bring their own synchronization.
- No persistence. Serializing a trie is a caller concern; see urkle for the
  committed, on-disk trie formats.

For tries keyed by something other than a ready-made segment slice (strings
split on a delimiter, runes, or any custom key form), see the `keyed`
subpackage.

*/
