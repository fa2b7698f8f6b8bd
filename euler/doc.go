// Package euler maintains a forest of unrooted trees under edge additions
// (links) and edge deletions (cuts), with logarithmic connectivity and
// tree-size queries, using Euler-tour trees.
//
// The implementation follows the variant described in:
//
//	Robert E. Tarjan. "Dynamic trees as search trees via Euler tours,
//	applied to the network simplex algorithm." Mathematical Programming,
//	78(2), 1997.
//
// Each tree in the forest is represented by replacing every tree edge {u, v}
// with the two directed edges (u, v) and (v, u), taking a closed Euler tour
// over them, breaking the cyclic tour at an arbitrary point, and storing the
// result as a sequence.Element sequence. Linking and cutting edges then
// reduce to a bounded number of sequence splits and joins. Tarjan's variant
// additionally threads a self-loop element (v, v) for every vertex through
// its tour, giving each vertex a stable handle into the sequence.
//
// A tour over k vertices therefore holds 3k-2 elements: k self-loops plus
// 2(k-1) directed edges. SizeOfTree converts the raw tour length back to the
// vertex count as (tourLength + 2) / 3 rather than maintaining a second
// aggregate.
//
// The forest is specialized for Holm et al.'s dynamic connectivity
// algorithm (package connectivity), which is why it exposes MarkEdge,
// MarkVertex and the corresponding MarkedEdgeInTree / MarkedVertexInTree
// searches: the connectivity engine marks level-l tree edges and vertices
// carrying level-l non-tree incidences, and harvests them during
// replacement-edge searches via the sequence layer's has-marked aggregates.
//
// All sequence elements for edges are pre-allocated at construction into a
// pool of 2(n-1) elements and recycled through a free list, so AddEdge and
// DeleteEdge allocate nothing.
//
// Errors:
//
//	ErrNonPositiveVertexCount - constructor called with n <= 0.
//	ErrVertexOutOfRange       - vertex outside [0, n).
//	ErrSelfLoop               - edge endpoints coincide.
//	ErrEdgeAlreadyInForest    - AddEdge of a present edge.
//	ErrEdgeNotInForest        - DeleteEdge/MarkEdge of an absent edge.
//	ErrWouldCreateCycle       - AddEdge between already-connected vertices.
package euler
