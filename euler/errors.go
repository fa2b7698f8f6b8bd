package euler

import "errors"

var (
	// ErrNonPositiveVertexCount indicates a forest was requested with n <= 0.
	ErrNonPositiveVertexCount = errors.New("euler: number of vertices must be positive")

	// ErrVertexOutOfRange indicates a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("euler: vertex out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("euler: self-loop edges are not supported")

	// ErrEdgeAlreadyInForest indicates AddEdge of an edge already present.
	ErrEdgeAlreadyInForest = errors.New("euler: edge already in forest")

	// ErrEdgeNotInForest indicates an operation on an edge not present.
	ErrEdgeNotInForest = errors.New("euler: edge not in forest")

	// ErrWouldCreateCycle indicates AddEdge between connected vertices.
	ErrWouldCreateCycle = errors.New("euler: edge endpoints are already connected")
)
