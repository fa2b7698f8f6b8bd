package connectivity

import "errors"

var (
	// ErrNonPositiveVertexCount indicates construction with n <= 0.
	ErrNonPositiveVertexCount = errors.New("connectivity: number of vertices must be positive")

	// ErrVertexOutOfRange indicates a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("connectivity: vertex out of range")

	// ErrSelfLoop indicates an attempt to add a self-loop edge.
	ErrSelfLoop = errors.New("connectivity: self-loop edges are not supported")

	// ErrEdgeAlreadyExists indicates a duplicate AddEdge; parallel edges are
	// not supported.
	ErrEdgeAlreadyExists = errors.New("connectivity: edge already exists")

	// ErrEdgeNotFound indicates DeleteEdge of an edge not in the graph.
	ErrEdgeNotFound = errors.New("connectivity: edge not found")
)
