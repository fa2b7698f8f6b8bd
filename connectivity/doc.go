// Package connectivity maintains connectivity information for an undirected
// graph on a fixed vertex set [0, n) as edges are inserted and deleted.
//
// The implementation follows the data structure described in section 2 of:
//
//	Jacob Holm, Kristian de Lichtenberg, and Mikkel Thorup.
//	"Poly-logarithmic deterministic fully-dynamic algorithms for
//	connectivity, minimum spanning tree, 2-edge, and biconnectivity."
//	Journal of the ACM, 48(4):723-760, 2001.
//
// Every edge carries a level in [0, L) with L = floor(log2 n) + 1, and the
// structure maintains one spanning forest F_l per level, where F_l spans the
// subgraph of all edges with level >= l; in particular F_0 is a spanning
// forest of the whole graph and answers connectivity and component-size
// queries directly. The forests are nested: F_0 contains F_1 contains ...
// contains F_{L-1}.
//
// Insertions and queries only touch F_0. The interesting case is deleting a
// tree edge of F_0: the structure then searches for a replacement edge that
// reconnects the two halves, walking from the edge's level downward. At each
// level it takes the smaller half, promotes that half's level-l tree edges
// to level l+1, and scans the half's level-l non-tree edges. A scanned edge
// either stays inside the half, in which case it too is promoted, or it
// reaches the other half and reconnects the forests. Every scan that does
// not find the replacement raises an edge's level, levels are bounded by L-1, and higher-level trees are
// provably at most half the size of their parents, which is what amortizes
// deletions to O(log^2 n).
//
// The per-level tree-edge and non-tree-incidence bookkeeping rides on the
// mark channels of package euler: a level-l tree edge is marked in F_l, and
// a vertex with level-l non-tree incidences is marked in F_l, so the
// replacement search finds work items in O(log n) each.
//
// The structure is single-threaded: no operation yields, and no call is
// safe to run concurrently with another on the same instance. Randomness
// (treap priorities in the underlying forests) is instance-scoped and
// seeded via WithSeed for reproducible runs.
//
// Public operations and their amortized costs:
//
//	New(n)                       O(n log n)
//	IsConnected(u, v)            O(log n)
//	HasEdge(e)                   O(1) expected
//	SizeOfConnectedComponent(v)  O(log n)
//	AddEdge(e)                   O(log^2 n) amortized
//	DeleteEdge(e)                O(log^2 n) amortized
//
// Errors:
//
//	ErrNonPositiveVertexCount - constructor called with n <= 0.
//	ErrVertexOutOfRange       - vertex outside [0, n).
//	ErrSelfLoop               - self-loop edge rejected.
//	ErrEdgeAlreadyExists      - duplicate AddEdge (multi-edges unsupported).
//	ErrEdgeNotFound           - DeleteEdge of an absent edge.
package connectivity
