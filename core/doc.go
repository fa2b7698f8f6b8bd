// Package core defines the graph value types shared by every layer of
// dynconn: Vertex, DirectedEdge, UndirectedEdge, and hashing helpers.
//
// The types are deliberately thin. A Vertex is an integer in [0, n) where n
// is fixed at construction of the containing data structure. An
// UndirectedEdge is an unordered pair {u, v}, normalized on construction so
// that First = min(u, v) and Second = max(u, v); equality and hashing act on
// the normalized form, which is what makes UndirectedEdge usable as a map
// key throughout the library.
//
// DirectedEdge doubles as the identifier of an Euler-tour sequence element:
// the pair (u, v) denotes one orientation of a tree edge, and the self-loop
// (v, v) anchors vertex v inside its tour (see package euler).
//
// Hashing:
//
//	HashInt64(x)        - MurmurHash3 fmix64 finalizer; quick, not identity.
//	CombineHashes(a, b) - boost-style combine with a 64-bit golden-ratio mix.
//	UndirectedEdge.Hash - CombineHashes over both normalized endpoints.
//
// Go's builtin maps hash keys natively; the explicit helpers exist for
// callers that bucket edges themselves (sharded adjacency structures,
// benchmark harnesses).
package core
