// Package dynconn is an in-memory toolkit for fully dynamic connectivity on
// undirected graphs: interleaved edge insertions, edge deletions, and
// "are u and v connected?" queries, all in polylogarithmic time.
//
// 🚀 What is dynconn?
//
//	A pure-Go implementation of the Holm–de Lichtenberg–Thorup dynamic
//	connectivity structure, built from three layers:
//		• sequence/     - implicit-key treaps with augmented aggregates
//		• euler/        - Euler-tour trees: link/cut forests with mark search
//		• connectivity/ - the level-based HDT engine on top of both
//		• core/         - shared Vertex/Edge value types and hashing
//
// ✨ Why choose dynconn?
//
//   - Real deletions – no union-find rebuild tricks; DeleteEdge is first-class
//   - Predictable costs – O(log n) queries, O(log² n) amortized updates
//   - Reproducible – instance-scoped, seedable randomness, no global state
//   - No allocation churn – Euler-tour elements come from pre-sized pools
//
// Quick ASCII example:
//
//	    0───1    3───4
//	    │   │    │   │
//	    └─2─┘    └─5─┘
//
//	two triangles; adding {2,3} bridges them, deleting it splits them again.
//
// Entry point: connectivity.New(n) with AddEdge / DeleteEdge / IsConnected /
// SizeOfConnectedComponent / HasEdge. The lower layers are usable on their
// own for dynamic-forest or ordered-sequence workloads.
//
// A benchmark driver lives in cmd/connbench.
//
//	go get github.com/katalvlaran/dynconn
package dynconn
