package connectivity

import (
	"github.com/katalvlaran/dynconn/core"
	"github.com/katalvlaran/dynconn/euler"
)

// edgeKind distinguishes spanning-forest edges from the rest of the graph.
type edgeKind uint8

const (
	// nonTreeEdge is an edge not in the spanning forest; it lives in the
	// per-level adjacency sets.
	nonTreeEdge edgeKind = iota

	// treeEdge is an edge of the spanning forest; a level-l tree edge is
	// present in forests 0..l.
	treeEdge
)

// edgeInfo records where an edge currently sits in the level hierarchy.
// An edge's level never decreases over its lifetime.
type edgeInfo struct {
	level int
	kind  edgeKind
}

// DynamicConnectivity represents an undirected graph on a fixed vertex set
// that supports efficient edge insertion, edge deletion, and connectivity
// queries. Construct instances with New; the zero value is not usable.
type DynamicConnectivity struct {
	numVertices int64

	// forests[l] is F_l, the spanning forest of the subgraph of edges with
	// level >= l. forests[0] spans the whole graph.
	forests []*euler.DynamicForest

	// adjacency[l][v] holds the vertices connected to v by level-l non-tree
	// edges.
	adjacency [][]vertexSet

	// edges holds every edge of the graph with its level and kind.
	edges map[core.UndirectedEdge]edgeInfo
}

// Option configures a DynamicConnectivity before construction.
type Option func(*config)

type config struct {
	seed int64
}

func defaultConfig() config {
	return config{seed: 0}
}

// WithSeed seeds the instance-scoped randomness behind the per-level
// forests, making runs reproducible. Each forest derives its generator
// deterministically from this seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}
